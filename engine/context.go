package engine

import (
	"regexp"
	"strings"
	"time"

	"clementus360/response-engine/catalog"
	"clementus360/response-engine/types"
)

// ContextEnhancer applies matched context patterns (time of day,
// productivity, stress) to the response text.
type ContextEnhancer struct {
	Catalog *catalog.Catalog
	Now     func() time.Time
}

var greetingTokens = []string{"Dzień dobry", "Witaj", "Dobry wieczór"}

var energyWordsRe = regexp.MustCompile(`(?i)energia|siła|moc`)

// Enhance determines at most one pattern per family and composes their
// enhancements sequentially: time first, then productivity, then stress.
// Absence of a match is a silent no-op.
func (e *ContextEnhancer) Enhance(resp types.Response, ctx types.Context) (types.Response, types.ContextApplied) {
	applied := types.ContextApplied{
		Time:         e.Catalog.TimePattern(e.Now().Hour()),
		Productivity: e.Catalog.ProductivityPattern(ctx),
		Stress:       e.Catalog.StressPattern(ctx),
	}

	text := resp.Text
	for _, id := range []string{applied.Time, applied.Productivity, applied.Stress} {
		if id == "" {
			continue
		}
		if p, ok := e.Catalog.Pattern(id); ok {
			text = applyEnhancements(text, p.Enhancements)
		}
	}

	resp.Text = text
	return resp, applied
}

func applyEnhancements(text string, enhancements map[string]string) string {
	if greeting := enhancements["greeting"]; greeting != "" && !containsGreeting(text) {
		text = greeting + "! " + text
	}

	if motivation := enhancements["motivation"]; motivation != "" {
		text += " " + motivation
	}

	if energy := enhancements["energy"]; energy != "" {
		text = energyWordsRe.ReplaceAllString(text, energy)
	}

	return text
}

func containsGreeting(text string) bool {
	for _, token := range greetingTokens {
		if strings.Contains(text, token) {
			return true
		}
	}
	return false
}
