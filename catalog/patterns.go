package catalog

import (
	"regexp"

	"clementus360/response-engine/types"
)

// Context pattern ids
const (
	TimeMorning      = "time_morning"
	TimeAfternoon    = "time_afternoon"
	TimeEvening      = "time_evening"
	HighProductivity = "high_productivity"
	LowProductivity  = "low_productivity"
	HighStress       = "high_stress"
)

// ContextPattern pairs a detection probe with a set of text enhancements.
// Catalog entries are read-only after initialization.
type ContextPattern struct {
	ID           string
	probe        *regexp.Regexp
	Enhancements map[string]string
}

// Matches reports whether the pattern's text probe fires (case-insensitive).
func (p ContextPattern) Matches(text string) bool {
	if p.probe == nil {
		return false
	}
	return p.probe.MatchString(text)
}

// Catalog holds the static context patterns and personalization rules.
type Catalog struct {
	patterns map[string]ContextPattern
	styles   map[string]StyleRule
}

// Default builds the catalog with the standard pattern and style tables.
func Default() *Catalog {
	c := &Catalog{
		patterns: make(map[string]ContextPattern),
		styles:   make(map[string]StyleRule),
	}

	// Time-based context patterns
	c.add(ContextPattern{
		ID:    TimeMorning,
		probe: regexp.MustCompile(`(?i)rano|ranek|wczesn`),
		Enhancements: map[string]string{
			"greeting":   "Dzień dobry",
			"energy":     "energii na cały dzień",
			"motivation": "Świetny start dnia!",
		},
	})
	c.add(ContextPattern{
		ID:    TimeAfternoon,
		probe: regexp.MustCompile(`(?i)południ|po\s+południ`),
		Enhancements: map[string]string{
			"greeting":   "Witaj",
			"energy":     "kontynuuj dobrą pracę",
			"motivation": "Połowa dnia za Tobą!",
		},
	})
	c.add(ContextPattern{
		ID:    TimeEvening,
		probe: regexp.MustCompile(`(?i)wieczór|późn`),
		Enhancements: map[string]string{
			"greeting":   "Dobry wieczór",
			"energy":     "dobij dzień sukcesem",
			"motivation": "Końcówka dnia!",
		},
	})

	// Productivity context patterns
	c.add(ContextPattern{
		ID:    HighProductivity,
		probe: regexp.MustCompile(`(?i)produktywn|efektywn|sukces`),
		Enhancements: map[string]string{
			"tone":          "celebratory",
			"encouragement": "Fantastyczna robota!",
			"momentum":      "Trzymaj tempo!",
		},
	})
	c.add(ContextPattern{
		ID:    LowProductivity,
		probe: regexp.MustCompile(`(?i)wolno|opóźnien|problem`),
		Enhancements: map[string]string{
			"tone":          "supportive",
			"encouragement": "Nie martw się, każdy ma gorsze dni.",
			"motivation":    "Jutro będzie lepiej!",
		},
	})

	// Stress level patterns
	c.add(ContextPattern{
		ID:    HighStress,
		probe: regexp.MustCompile(`(?i)pilne|terminy|stres|dużo`),
		Enhancements: map[string]string{
			"tone":    "calming",
			"advice":  "Weź głęboki oddech i podziel zadania na mniejsze części.",
			"support": "Poradzisz sobie!",
		},
	})

	c.setupStyles()

	return c
}

func (c *Catalog) add(p ContextPattern) {
	c.patterns[p.ID] = p
}

// Pattern looks up a context pattern by id.
func (c *Catalog) Pattern(id string) (ContextPattern, bool) {
	p, ok := c.patterns[id]
	return p, ok
}

// TimePattern selects the time-of-day pattern for an hour. Hours outside
// the three buckets (night) match nothing.
func (c *Catalog) TimePattern(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return TimeMorning
	case hour >= 12 && hour < 18:
		return TimeAfternoon
	case hour >= 18 && hour < 22:
		return TimeEvening
	default:
		return ""
	}
}

// ProductivityPattern selects at most one productivity pattern. High is
// checked before low, first match wins.
func (c *Catalog) ProductivityPattern(ctx types.Context) string {
	if ctx.Efficiency > 80 || ctx.TasksCompleted > 5 || ctx.Streak > 3 {
		return HighProductivity
	}
	if ctx.Efficiency < 30 || ctx.TasksCompleted == 0 {
		return LowProductivity
	}
	return ""
}

// StressPattern selects the stress pattern when any stress signal crosses
// its bound.
func (c *Catalog) StressPattern(ctx types.Context) string {
	if ctx.UrgentTasks > 3 || ctx.OverdueTasks > 0 || ctx.MeetingsToday > 5 {
		return HighStress
	}
	return ""
}
