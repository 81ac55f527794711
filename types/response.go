package types

// Response is a plain, already-generated message produced by an upstream
// generator. Each enhancement stage returns a new value with Text replaced.
type Response struct {
	Text     string         `json:"text"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// ContextApplied records which context pattern fired per family. Empty
// string means no pattern matched for that family.
type ContextApplied struct {
	Time         string `json:"time,omitempty"`
	Productivity string `json:"productivity,omitempty"`
	Stress       string `json:"stress,omitempty"`
}

type PersonalizationApplied struct {
	Style          string `json:"style"`
	Name           string `json:"name,omitempty"`
	HistoryContext bool   `json:"history_context"`
}

type EnhancedResponse struct {
	Response
	ContextApplied         ContextApplied         `json:"context_applied"`
	PersonalizationApplied PersonalizationApplied `json:"personalization_applied"`
	EmotionalContext       EmotionalContext       `json:"emotional_context"`
	FollowUpSuggestions    []string               `json:"follow_up_suggestions,omitempty"`
}

type EnhanceRequest struct {
	Response Response `json:"response"`
	Context  Context  `json:"context"`
}

type EnhanceResponse struct {
	Success      bool             `json:"success"`
	Enhanced     EnhancedResponse `json:"enhanced,omitempty"`
	ErrorMessage string           `json:"error,omitempty"` // only set on failure
}
