package config

import (
	"time"

	"clementus360/response-engine/types"
)

// Engine configuration
var EngineConfig = types.EngineConfig{
	MaxHistoryLength:  50,
	HistoryRetention:  7 * 24 * time.Hour,
	RecentWindow:      5,
	MaxSuggestions:    3,
	MaxSentenceLength: 150,

	CalendarThreshold:   0.3,
	DetailsThreshold:    0.4,
	ReminderThreshold:   0.2,
	MotivationThreshold: 0.3,

	FastResponse:   30 * time.Second,
	MediumResponse: 120 * time.Second,
}

// Communication style constants
const (
	StyleFormal       = "formal"
	StyleCasual       = "casual"
	StyleMotivational = "motivational"
	StyleAnalytical   = "analytical"
)

// Formality and detail levels
const (
	LevelHigh   = "high"
	LevelMedium = "medium"
	LevelLow    = "low"
)
