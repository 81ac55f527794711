package session

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"clementus360/response-engine/types"
)

// AnalyzeBehavior derives the behavioral feature set from the current
// history.
func (m *Manager) AnalyzeBehavior() types.UserBehavior {
	behavior := types.UserBehavior{
		TotalInteractions:    len(m.history),
		AverageSessionLength: 5 * time.Minute, // placeholder until cross-session analytics exist
		FrequentQueries:      m.frequentQueries(),
		PreferredTimeOfDay:   m.preferredTimeOfDay(),
		ResponsivenessPeriod: m.responsivenessPeriod(),
	}

	behavior.FrequentlyChecksCalendar = m.checkPattern("calendar", m.cfg.CalendarThreshold)
	behavior.LikesDetailedInfo = m.checkPattern("details", m.cfg.DetailsThreshold)
	behavior.SetsReminders = m.checkPattern("reminder", m.cfg.ReminderThreshold)
	behavior.MotivationSeeking = m.checkPattern("motivation", m.cfg.MotivationThreshold)

	return behavior
}

// checkPattern reports whether the fraction of history entries whose
// serialized form contains the pattern meets the threshold.
func (m *Manager) checkPattern(pattern string, threshold float64) bool {
	if len(m.history) == 0 {
		return false
	}

	count := 0
	for _, entry := range m.history {
		serialized, err := json.Marshal(entry)
		if err != nil {
			continue
		}
		if strings.Contains(strings.ToLower(string(serialized)), pattern) {
			count++
		}
	}

	return float64(count)/float64(len(m.history)) >= threshold
}

// frequentQueries returns the top 3 response types by frequency.
func (m *Manager) frequentQueries() []string {
	frequency := make(map[string]int)
	for _, entry := range m.history {
		if entry.Context.ResponseType != "" {
			frequency[entry.Context.ResponseType]++
		}
	}

	queries := make([]string, 0, len(frequency))
	for q := range frequency {
		queries = append(queries, q)
	}
	sort.SliceStable(queries, func(i, j int) bool {
		if frequency[queries[i]] != frequency[queries[j]] {
			return frequency[queries[i]] > frequency[queries[j]]
		}
		return queries[i] < queries[j]
	})

	if len(queries) > 3 {
		queries = queries[:3]
	}
	return queries
}

// preferredTimeOfDay returns the bucket with the most historical
// interactions: morning (<12), afternoon (<18) or evening.
func (m *Manager) preferredTimeOfDay() string {
	counts := map[string]int{"morning": 0, "afternoon": 0, "evening": 0}
	for _, entry := range m.history {
		hour := entry.Timestamp.Hour()
		switch {
		case hour < 12:
			counts["morning"]++
		case hour < 18:
			counts["afternoon"]++
		default:
			counts["evening"]++
		}
	}

	preferred := "morning"
	for _, bucket := range []string{"afternoon", "evening"} {
		if counts[bucket] > counts[preferred] {
			preferred = bucket
		}
	}
	return preferred
}

// responsivenessPeriod categorizes the mean inter-interaction latency.
func (m *Manager) responsivenessPeriod() string {
	if len(m.history) < 2 {
		return "unknown"
	}

	var total time.Duration
	for i := 1; i < len(m.history); i++ {
		total += m.history[i].Timestamp.Sub(m.history[i-1].Timestamp)
	}
	mean := total / time.Duration(len(m.history)-1)

	switch {
	case mean < m.cfg.FastResponse:
		return "fast"
	case mean < m.cfg.MediumResponse:
		return "medium"
	default:
		return "thoughtful"
	}
}
