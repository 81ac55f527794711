package catalog

import "clementus360/response-engine/types"

// Emotion names
const (
	EmotionStress      = "stress"
	EmotionExcitement  = "excitement"
	EmotionFrustration = "frustration"
	EmotionAchievement = "achievement"
	EmotionNeutral     = "neutral"
)

// EmotionDetector scores one emotion category from numeric indicators and
// keyword hits in recent interactions.
type EmotionDetector struct {
	Emotion    string
	Indicators []string
	Threshold  float64
	Keywords   []string
}

// Detectors returns the detector set in its fixed evaluation order. The
// order is the tie-break rule: a later emotion must score strictly higher
// to become primary.
func Detectors() []EmotionDetector {
	return []EmotionDetector{
		{
			Emotion:    EmotionStress,
			Indicators: []string{"urgentTasks", "overdueTasks", "meetingsToday", "timeLeft"},
			Threshold:  3,
			Keywords:   []string{"pilne", "termin", "deadline", "stres", "presja"},
		},
		{
			Emotion:    EmotionExcitement,
			Indicators: []string{"tasksCompleted", "goalsAchieved", "streak"},
			Threshold:  2,
			Keywords:   []string{"ukończone", "osiągnięcie", "sukces", "cel"},
		},
		{
			Emotion:    EmotionFrustration,
			Indicators: []string{"failedTasks", "missedDeadlines", "conflicts"},
			Threshold:  1,
			Keywords:   []string{"problem", "błąd", "nie udało", "frustracja"},
		},
		{
			Emotion:    EmotionAchievement,
			Indicators: []string{"completionRate", "newRecords", "milestones"},
			Threshold:  1,
			Keywords:   []string{"gratulacje", "brawo", "świetnie", "doskonale"},
		},
	}
}

var emotionProfiles = map[string]types.EmotionProfile{
	EmotionStress: {
		Tone:        "calming",
		Pace:        "slower",
		Focus:       "prioritization",
		Suggestions: []string{"Weź głęboki oddech", "Podziel zadania na mniejsze części"},
	},
	EmotionExcitement: {
		Tone:        "enthusiastic",
		Pace:        "energetic",
		Focus:       "celebration",
		Suggestions: []string{"Świętuj sukces", "Ustaw nowy cel"},
	},
	EmotionFrustration: {
		Tone:        "empathetic",
		Pace:        "patient",
		Focus:       "problem_solving",
		Suggestions: []string{"To zrozumiałe", "Spróbuj innego podejścia"},
	},
	EmotionAchievement: {
		Tone:        "celebratory",
		Pace:        "upbeat",
		Focus:       "recognition",
		Suggestions: []string{"Gratulacje!", "Czas na nowe wyzwanie"},
	},
	EmotionNeutral: {
		Tone:        "balanced",
		Pace:        "normal",
		Focus:       "information",
		Suggestions: []string{"Co chcesz sprawdzić?", "Jak mogę pomóc?"},
	},
}

// Recommendations returns the static recommendation profile for an emotion,
// falling back to the neutral profile.
func Recommendations(emotion string) types.EmotionProfile {
	if p, ok := emotionProfiles[emotion]; ok {
		return p
	}
	return emotionProfiles[EmotionNeutral]
}
