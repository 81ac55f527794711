package polish

import (
	"clementus360/response-engine/config"
	"clementus360/response-engine/types"
)

// Transformer is one independent text transformation stage.
type Transformer struct {
	Name string
	Fn   func(text string, ctx types.Context) string
}

// Pipeline runs an ordered, fixed sequence of transformers. A transformer
// that panics is logged and skipped; the previous stage's text is carried
// forward.
type Pipeline struct {
	transformers []Transformer
}

func New() *Pipeline {
	return &Pipeline{
		transformers: []Transformer{
			{Name: "pluralization", Fn: fixNumeralAgreement},
			{Name: "formality", Fn: adjustFormality},
			{Name: "flow", Fn: improveFlow},
			{Name: "clarity", Fn: improveClarity},
			{Name: "normalize", Fn: func(text string, _ types.Context) string { return Normalize(text) }},
		},
	}
}

func (p *Pipeline) Polish(resp types.Response, ctx types.Context) types.Response {
	text := resp.Text
	for _, t := range p.transformers {
		text = run(t, text, ctx)
	}
	resp.Text = text
	return resp
}

func run(t Transformer, text string, ctx types.Context) (out string) {
	out = text
	defer func() {
		if r := recover(); r != nil {
			config.Logger.Warnf("language transformer %s failed: %v", t.Name, r)
			out = text
		}
	}()
	return t.Fn(text, ctx)
}
