package engine

import (
	"strings"

	"clementus360/response-engine/catalog"
	"clementus360/response-engine/config"
	"clementus360/response-engine/types"
)

// Suggester produces follow-up suggestions from three ordered sources:
// contextual (response type), behavioral (user patterns) and content-based
// (keywords in the final text).
type Suggester struct {
	Max int
}

func (s *Suggester) Generate(text string, ctx types.Context) []string {
	var suggestions []string
	suggestions = append(suggestions, catalog.ContextualSuggestions(ctx.ResponseType)...)
	suggestions = append(suggestions, behavioralSuggestions(ctx.Behavior)...)
	suggestions = append(suggestions, contentSuggestions(text)...)

	suggestions = dedupe(suggestions)

	max := s.Max
	if max <= 0 {
		max = config.EngineConfig.MaxSuggestions
	}
	if len(suggestions) > max {
		suggestions = suggestions[:max]
	}
	return suggestions
}

func behavioralSuggestions(behavior types.UserBehavior) []string {
	var suggestions []string
	if behavior.FrequentlyChecksCalendar {
		suggestions = append(suggestions, "Zobacz kalendarz")
	}
	if behavior.LikesDetailedInfo {
		suggestions = append(suggestions, "Pokaż szczegóły")
	}
	if behavior.SetsReminders {
		suggestions = append(suggestions, "Ustaw przypomnienie")
	}
	return suggestions
}

func contentSuggestions(text string) []string {
	lower := strings.ToLower(text)

	var suggestions []string
	for _, cue := range catalog.ContentCues {
		for _, keyword := range cue.Keywords {
			if strings.Contains(lower, keyword) {
				suggestions = append(suggestions, cue.Suggestion)
				break
			}
		}
	}
	return suggestions
}

// dedupe removes duplicates preserving first occurrence.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}
