package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"clementus360/response-engine/catalog"
	"clementus360/response-engine/types"
)

func personalizerAt(hour int) *Personalizer {
	return &Personalizer{
		Catalog: catalog.Default(),
		Now: func() time.Time {
			return time.Date(2025, 3, 10, hour, 0, 0, 0, time.UTC)
		},
	}
}

func TestPersonalizeDefaultsToCasual(t *testing.T) {
	resp, applied := personalizerAt(10).Personalize(
		types.Response{Text: "Masz 3 zadania."},
		types.Context{},
	)

	assert.Equal(t, "casual", applied.Style)
	assert.Equal(t, "Masz 3 zadania.", resp.Text)
	assert.False(t, applied.HistoryContext)
}

func TestPersonalizeFormalStyle(t *testing.T) {
	resp, applied := personalizerAt(10).Personalize(
		types.Response{Text: "Masz 3 zadania, a ty jesteś blisko celu. Wszystko super."},
		types.Context{UserPreferences: map[string]string{"communicationStyle": "formal"}},
	)

	assert.Equal(t, "formal", applied.Style)
	assert.Contains(t, resp.Text, "ma Pan/Pani 3 zadania")
	assert.Contains(t, resp.Text, "Pan/Pani jest Pan/Pani blisko celu")
	// professional tone swaps casual vocabulary
	assert.Contains(t, resp.Text, "doskonale")
	assert.NotContains(t, resp.Text, "super")
}

func TestPersonalizeMotivationalStyleEnthuses(t *testing.T) {
	resp, _ := personalizerAt(10).Personalize(
		types.Response{Text: "Wszystko poszło dobrze."},
		types.Context{UserPreferences: map[string]string{"communicationStyle": "motivational"}},
	)

	assert.Equal(t, "Wszystko poszło świetnie!", resp.Text)
}

func TestInsertNameFirstMatchWins(t *testing.T) {
	// Greeting opener beats the possession statement
	assert.Equal(t, "Dzień dobry, Aniu! Masz 3 zadania.",
		insertName("Dzień dobry! Masz 3 zadania.", "Aniu"))

	// Possession statement as fallback
	assert.Equal(t, "Masz, Aniu 3 zadania.",
		insertName("Masz 3 zadania.", "Aniu"))

	// No insertion point: no insertion
	assert.Equal(t, "Wszystko gotowe.", insertName("Wszystko gotowe.", "Aniu"))
}

func TestPersonalizeInsertsNameOnce(t *testing.T) {
	resp, applied := personalizerAt(10).Personalize(
		types.Response{Text: "Gratulacje! Masz nowy rekord."},
		types.Context{UserPreferences: map[string]string{"preferredName": "Tomku"}},
	)

	assert.Equal(t, "Tomku", applied.Name)
	assert.Equal(t, "Gratulacje, Tomku! Masz nowy rekord.", resp.Text)
}

func TestPersonalizeReferencesMostRecentAchievement(t *testing.T) {
	resp, applied := personalizerAt(15).Personalize(
		types.Response{Text: "Plan gotowy."},
		types.Context{UserHistory: types.UserHistory{
			RecentAchievements: []string{"Raport kwartalny", "Stary projekt"},
		}},
	)

	assert.True(t, applied.HistoryContext)
	assert.Contains(t, resp.Text, `Pamiętam, że niedawno ukończyłeś "Raport kwartalny".`)
	assert.NotContains(t, resp.Text, "Stary projekt")
}

func TestPersonalizeMorningCallout(t *testing.T) {
	history := types.UserHistory{PreferredTimeOfDay: "morning"}

	resp, _ := personalizerAt(9).Personalize(types.Response{Text: "Plan gotowy."}, types.Context{UserHistory: history})
	assert.Contains(t, resp.Text, "Jak zwykle, zaczynasz dzień wcześnie!")

	// No callout in the afternoon
	resp, _ = personalizerAt(14).Personalize(types.Response{Text: "Plan gotowy."}, types.Context{UserHistory: history})
	assert.NotContains(t, resp.Text, "Jak zwykle")
}
