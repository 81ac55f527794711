package types

// EmotionalContext is computed fresh per enhancement call.
type EmotionalContext struct {
	PrimaryEmotion  string             `json:"primary_emotion"`
	EmotionScores   map[string]float64 `json:"emotion_scores"`
	Confidence      float64            `json:"confidence"` // 0..1
	Recommendations EmotionProfile     `json:"recommendations"`
}

// EmotionProfile is the static recommendation profile attached per emotion.
type EmotionProfile struct {
	Tone        string   `json:"tone"`
	Pace        string   `json:"pace"`
	Focus       string   `json:"focus"`
	Suggestions []string `json:"suggestions,omitempty"`
}
