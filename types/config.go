package types

import "time"

// EngineConfig holds the engine's tunables. See config.EngineConfig for
// the defaults.
type EngineConfig struct {
	MaxHistoryLength  int
	HistoryRetention  time.Duration
	RecentWindow      int // history entries carried into enriched context
	MaxSuggestions    int
	MaxSentenceLength int

	// Behavior pattern thresholds: fraction of history entries whose
	// serialized form contains the pattern.
	CalendarThreshold   float64
	DetailsThreshold    float64
	ReminderThreshold   float64
	MotivationThreshold float64

	// Responsiveness boundaries for mean inter-interaction latency.
	FastResponse   time.Duration
	MediumResponse time.Duration
}
