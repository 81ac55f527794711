package engine

import (
	"time"

	"clementus360/response-engine/catalog"
	"clementus360/response-engine/config"
	"clementus360/response-engine/polish"
	"clementus360/response-engine/types"
)

// Engine is the response-enhancement pipeline. All stages are pure over
// the call's data; the catalogs they read are immutable after New.
type Engine struct {
	Enhancer     *ContextEnhancer
	Personalizer *Personalizer
	Analyzer     *Analyzer
	Pipeline     *polish.Pipeline
	Suggester    *Suggester
}

func New(cat *catalog.Catalog) *Engine {
	return &Engine{
		Enhancer:     &ContextEnhancer{Catalog: cat, Now: time.Now},
		Personalizer: &Personalizer{Catalog: cat, Now: time.Now},
		Analyzer:     NewAnalyzer(),
		Pipeline:     polish.New(),
		Suggester:    &Suggester{Max: config.EngineConfig.MaxSuggestions},
	}
}

// Enhance pipes the base response through context enhancement,
// personalization, the emotional rewrite and language polishing, then
// derives follow-up suggestions from the final text. Any panic is caught
// here and the caller gets the base response back unchanged.
func (e *Engine) Enhance(base types.Response, ctx types.Context) (enhanced types.EnhancedResponse) {
	defer func() {
		if r := recover(); r != nil {
			config.Logger.Errorf("response enhancement failed: %v", r)
			enhanced = types.EnhancedResponse{Response: base}
		}
	}()

	resp, contextApplied := e.Enhancer.Enhance(base, ctx)
	resp, personalization := e.Personalizer.Personalize(resp, ctx)
	resp, emotional := e.Analyzer.Apply(resp, ctx)
	resp = e.Pipeline.Polish(resp, ctx)

	enhanced = types.EnhancedResponse{
		Response:               resp,
		ContextApplied:         contextApplied,
		PersonalizationApplied: personalization,
		EmotionalContext:       emotional,
		FollowUpSuggestions:    e.Suggester.Generate(resp.Text, ctx),
	}
	return enhanced
}
