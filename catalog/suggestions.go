package catalog

import "clementus360/response-engine/types"

var contextualSuggestions = map[string][]string{
	types.ResponseTypeTask: {
		"Pokaż szczegóły zadania",
		"Ustaw przypomnienie",
		"Sprawdź deadline",
	},
	types.ResponseTypeClient: {
		"Zobacz historię kontaktów",
		"Zaplanuj spotkanie",
		"Sprawdź oferty",
	},
	types.ResponseTypeCalendar: {
		"Przygotuj agendę",
		"Sprawdź lokalizację",
		"Wyślij przypomnienie",
	},
	types.ResponseTypeGoal: {
		"Zobacz postęp szczegółowy",
		"Ustaw nowy cel",
		"Sprawdź kamienie milowe",
	},
}

var genericSuggestions = []string{
	"Sprawdź szczegóły",
	"Zobacz więcej",
	"Przejdź dalej",
}

// ContextualSuggestions returns the canned suggestions for a response type,
// with a generic fallback for unknown or absent types.
func ContextualSuggestions(responseType string) []string {
	if s, ok := contextualSuggestions[responseType]; ok {
		return s
	}
	return genericSuggestions
}

// ContentCue maps domain keywords in the final text to one suggestion each.
type ContentCue struct {
	Keywords   []string
	Suggestion string
}

// ContentCues is scanned in order against the lowercased enhanced text.
var ContentCues = []ContentCue{
	{Keywords: []string{"zadań", "zadanie", "zadania"}, Suggestion: "Sprawdź wszystkie zadania"},
	{Keywords: []string{"spotkań", "spotkanie", "spotkania"}, Suggestion: "Zobacz kalendarz"},
	{Keywords: []string{"%", "postęp"}, Suggestion: "Sprawdź szczegółowy postęp"},
	{Keywords: []string{"deadline", "termin"}, Suggestion: "Zobacz wszystkie terminy"},
}
