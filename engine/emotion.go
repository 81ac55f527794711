package engine

import (
	"math"
	"math/rand"
	"strings"

	"clementus360/response-engine/catalog"
	"clementus360/response-engine/types"
)

// Chooser picks an index in [0,n). The default is random; tests substitute
// a constant chooser for determinism.
type Chooser func(n int) int

// Analyzer scores emotion categories from a context snapshot and rewrites
// the response text for the primary emotion.
type Analyzer struct {
	Detectors []catalog.EmotionDetector
	Choose    Chooser
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		Detectors: catalog.Detectors(),
		Choose:    rand.Intn,
	}
}

// Analyze computes per-emotion scores and selects the primary emotion.
// Ties keep the earlier detector in the fixed evaluation order; all-zero
// scores yield neutral.
func (a *Analyzer) Analyze(ctx types.Context) types.EmotionalContext {
	scores := make(map[string]float64, len(a.Detectors))
	primary := catalog.EmotionNeutral
	var highest float64

	recent := strings.ToLower(strings.Join(ctx.RecentInteractions, " "))

	for _, d := range a.Detectors {
		score := emotionScore(ctx, recent, d)
		scores[d.Emotion] = score
		if score > highest {
			highest = score
			primary = d.Emotion
		}
	}

	return types.EmotionalContext{
		PrimaryEmotion:  primary,
		EmotionScores:   scores,
		Confidence:      math.Min(highest/5, 1),
		Recommendations: catalog.Recommendations(primary),
	}
}

func emotionScore(ctx types.Context, recent string, d catalog.EmotionDetector) float64 {
	var score float64

	for _, indicator := range d.Indicators {
		if value := ctx.Signal(indicator); value > 0 {
			score += math.Min(value/d.Threshold, 2)
		}
	}

	for _, keyword := range d.Keywords {
		if strings.Contains(recent, keyword) {
			score++
		}
	}

	return score
}

// Apply rewrites the text for the primary emotion and returns the computed
// emotional context.
func (a *Analyzer) Apply(resp types.Response, ctx types.Context) (types.Response, types.EmotionalContext) {
	emotional := a.Analyze(ctx)

	text := resp.Text
	switch emotional.PrimaryEmotion {
	case catalog.EmotionStress:
		text = a.pick(catalog.CalmingPhrases) + " " + text
	case catalog.EmotionExcitement:
		text = Enthuse(text)
	case catalog.EmotionFrustration:
		text = a.pick(catalog.EmpathyStarters) + " " + text
	case catalog.EmotionAchievement:
		text = a.pick(catalog.Celebrations) + " " + text
	default:
		text = text + " " + a.pick(catalog.Reinforcements)
	}

	resp.Text = text
	return resp, emotional
}

func (a *Analyzer) pick(pool []string) string {
	return pool[a.Choose(len(pool))]
}
