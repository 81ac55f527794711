package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clementus360/response-engine/catalog"
	"clementus360/response-engine/types"
)

func fixedAnalyzer() *Analyzer {
	a := NewAnalyzer()
	a.Choose = func(int) int { return 0 }
	return a
}

func TestAnalyzeAllZeroIsNeutral(t *testing.T) {
	emotional := fixedAnalyzer().Analyze(types.Context{})

	assert.Equal(t, catalog.EmotionNeutral, emotional.PrimaryEmotion)
	assert.Equal(t, 0.0, emotional.Confidence)
	assert.Equal(t, "balanced", emotional.Recommendations.Tone)
}

func TestAnalyzeStressBoundary(t *testing.T) {
	emotional := fixedAnalyzer().Analyze(types.Context{UrgentTasks: 4})

	assert.InDelta(t, 4.0/3.0, emotional.EmotionScores[catalog.EmotionStress], 1e-9)
	assert.Equal(t, catalog.EmotionStress, emotional.PrimaryEmotion)
	assert.InDelta(t, (4.0/3.0)/5.0, emotional.Confidence, 1e-9)
}

func TestAnalyzeIndicatorContributionIsCapped(t *testing.T) {
	// 100 urgent tasks still contribute at most 2 per indicator
	emotional := fixedAnalyzer().Analyze(types.Context{UrgentTasks: 100})
	assert.InDelta(t, 2.0, emotional.EmotionScores[catalog.EmotionStress], 1e-9)
}

func TestAnalyzeKeywordsScoreFromRecentInteractions(t *testing.T) {
	emotional := fixedAnalyzer().Analyze(types.Context{
		RecentInteractions: []string{"To jest PILNE", "zbliża się termin"},
	})

	// "pilne" and "termin" hit; "deadline", "stres", "presja" do not
	assert.InDelta(t, 2.0, emotional.EmotionScores[catalog.EmotionStress], 1e-9)
	assert.Equal(t, catalog.EmotionStress, emotional.PrimaryEmotion)
}

func TestAnalyzeTieKeepsEarlierDetector(t *testing.T) {
	// stress = 3/3 = 1.0, excitement = 2/2 = 1.0: the tie resolves to
	// stress because it is evaluated first
	emotional := fixedAnalyzer().Analyze(types.Context{UrgentTasks: 3, TasksCompleted: 2})

	assert.Equal(t, emotional.EmotionScores[catalog.EmotionStress], emotional.EmotionScores[catalog.EmotionExcitement])
	assert.Equal(t, catalog.EmotionStress, emotional.PrimaryEmotion)
}

func TestAnalyzeConfidenceIsCappedAtOne(t *testing.T) {
	emotional := fixedAnalyzer().Analyze(types.Context{
		UrgentTasks:        100,
		OverdueTasks:       100,
		MeetingsToday:      100,
		RecentInteractions: []string{"pilne termin deadline stres presja"},
	})

	assert.Equal(t, 1.0, emotional.Confidence)
}

func TestApplyStressPrependsCalmingPhrase(t *testing.T) {
	resp, emotional := fixedAnalyzer().Apply(types.Response{Text: "Masz dużo pracy."}, types.Context{UrgentTasks: 5})

	assert.Equal(t, catalog.EmotionStress, emotional.PrimaryEmotion)
	assert.Equal(t, catalog.CalmingPhrases[0]+" Masz dużo pracy.", resp.Text)
}

func TestApplyExcitementEnthuses(t *testing.T) {
	resp, emotional := fixedAnalyzer().Apply(types.Response{Text: "Wszystko poszło dobrze."}, types.Context{TasksCompleted: 6})

	assert.Equal(t, catalog.EmotionExcitement, emotional.PrimaryEmotion)
	assert.Equal(t, "Wszystko poszło świetnie!", resp.Text)
}

func TestApplyNeutralAppendsReinforcement(t *testing.T) {
	resp, emotional := fixedAnalyzer().Apply(types.Response{Text: "Oto plan dnia."}, types.Context{})

	assert.Equal(t, catalog.EmotionNeutral, emotional.PrimaryEmotion)
	assert.Equal(t, "Oto plan dnia. "+catalog.Reinforcements[0], resp.Text)
}

func TestApplyFrustrationAndAchievementPrepend(t *testing.T) {
	a := fixedAnalyzer()

	resp, emotional := a.Apply(types.Response{Text: "Spróbujmy ponownie."}, types.Context{FailedTasks: 2})
	assert.Equal(t, catalog.EmotionFrustration, emotional.PrimaryEmotion)
	assert.Equal(t, catalog.EmpathyStarters[0]+" Spróbujmy ponownie.", resp.Text)

	resp, emotional = a.Apply(types.Response{Text: "Cel osiągnięty."}, types.Context{Milestones: 3})
	assert.Equal(t, catalog.EmotionAchievement, emotional.PrimaryEmotion)
	assert.Equal(t, catalog.Celebrations[0]+" Cel osiągnięty.", resp.Text)
}
