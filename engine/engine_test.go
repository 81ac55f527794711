package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clementus360/response-engine/catalog"
	"clementus360/response-engine/types"
)

// fixedEngine pins the clock and the phrase chooser so enhancement is a
// pure function of its inputs.
func fixedEngine(hour int) *Engine {
	e := New(catalog.Default())
	now := func() time.Time {
		return time.Date(2025, 3, 10, hour, 0, 0, 0, time.UTC)
	}
	e.Enhancer.Now = now
	e.Personalizer.Now = now
	e.Analyzer.Choose = func(int) int { return 0 }
	return e
}

func TestEnhanceEndToEnd(t *testing.T) {
	base := types.Response{Text: "Masz 3 zadanie do zrobienia."}
	ctx := types.Context{
		Efficiency:     10,
		TasksCompleted: 0,
		UrgentTasks:    5,
		OverdueTasks:   1,
	}

	enhanced := fixedEngine(7).Enhance(base, ctx)

	assert.Equal(t, catalog.TimeMorning, enhanced.ContextApplied.Time)
	assert.Equal(t, catalog.LowProductivity, enhanced.ContextApplied.Productivity)
	assert.Equal(t, catalog.HighStress, enhanced.ContextApplied.Stress)
	assert.Equal(t, catalog.EmotionStress, enhanced.EmotionalContext.PrimaryEmotion)

	// Calming prefix, greeting, pluralization fix
	assert.Equal(t, "Spokojnie, Dzień dobry! Również Masz 3 zadania do zrobienia. Dodatkowo, Świetny start dnia! Również Jutro będzie lepiej!", enhanced.Text)

	require.NotEmpty(t, enhanced.FollowUpSuggestions)
	assert.LessOrEqual(t, len(enhanced.FollowUpSuggestions), 3)
}

func TestEnhanceIsDeterministicWithFixedHooks(t *testing.T) {
	base := types.Response{Text: "Masz 5 zadań i 2 spotkania na dziś."}
	ctx := types.Context{
		TasksCompleted:     4,
		UrgentTasks:        2,
		ResponseType:       types.ResponseTypeTask,
		RecentInteractions: []string{"pokaż szczegóły"},
		UserPreferences:    map[string]string{"preferredName": "Aniu"},
	}

	first := fixedEngine(14).Enhance(base, ctx)
	second := fixedEngine(14).Enhance(base, ctx)

	assert.Equal(t, first, second)
}

func TestEnhanceReturnsBaseOnStageFailure(t *testing.T) {
	e := fixedEngine(7)
	e.Enhancer.Now = func() time.Time { panic("clock failure") }

	base := types.Response{Text: "Masz 3 zadanie do zrobienia."}
	enhanced := e.Enhance(base, types.Context{UrgentTasks: 5})

	assert.Equal(t, base.Text, enhanced.Text)
	assert.Empty(t, enhanced.FollowUpSuggestions)
	assert.Equal(t, types.ContextApplied{}, enhanced.ContextApplied)
}

func TestEnhanceKeepsMetadata(t *testing.T) {
	base := types.Response{
		Text:     "Plan gotowy.",
		Metadata: map[string]any{"source": "planner"},
	}

	enhanced := fixedEngine(23).Enhance(base, types.Context{TasksCompleted: 2, Efficiency: 50})
	assert.Equal(t, "planner", enhanced.Metadata["source"])
}
