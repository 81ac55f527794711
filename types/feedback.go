package types

// Feedback is a user's reaction to an enhanced response, used for
// preference adaptation.
type Feedback struct {
	FeedbackType string `json:"feedback_type"` // "too_formal", "too_detailed", "too_fast"
	Rating       int    `json:"rating"`        // 1-5
	Comments     string `json:"comments,omitempty"`
}

type FeedbackResponse struct {
	Success      bool              `json:"success"`
	Preferences  map[string]string `json:"preferences,omitempty"`
	ErrorMessage string            `json:"error,omitempty"` // only set on failure
}

type PreferencesResponse struct {
	Success      bool              `json:"success"`
	Preferences  map[string]string `json:"preferences,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}
