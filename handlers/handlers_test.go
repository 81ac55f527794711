package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clementus360/response-engine/catalog"
	"clementus360/response-engine/engine"
	"clementus360/response-engine/storage"
	"clementus360/response-engine/types"
)

func newTestServer() *Server {
	return NewServer(engine.New(catalog.Default()), storage.NewMemory())
}

func bearerToken(t *testing.T, sub string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": sub})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return "Bearer " + signed
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any, auth string) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestEnhanceRequiresAuth(t *testing.T) {
	s := newTestServer()

	body := types.EnhanceRequest{Response: types.Response{Text: "Masz 3 zadania."}}
	rec := postJSON(t, s.EnhanceHandler, "/enhance", body, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.NotEmpty(t, resp["error"])
}

func TestEnhanceRejectsGarbageToken(t *testing.T) {
	s := newTestServer()

	body := types.EnhanceRequest{Response: types.Response{Text: "Masz 3 zadania."}}
	rec := postJSON(t, s.EnhanceHandler, "/enhance", body, "Bearer not-a-jwt")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEnhanceRejectsMissingText(t *testing.T) {
	s := newTestServer()

	body := types.EnhanceRequest{Context: types.Context{TasksCompleted: 1}}
	rec := postJSON(t, s.EnhanceHandler, "/enhance", body, bearerToken(t, "user-1"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEnhanceRejectsInvalidJSON(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/enhance", bytes.NewReader([]byte("{")))
	req.Header.Set("Authorization", bearerToken(t, "user-1"))
	rec := httptest.NewRecorder()
	s.EnhanceHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEnhanceHappyPath(t *testing.T) {
	s := newTestServer()

	body := types.EnhanceRequest{
		Response: types.Response{Text: "Masz 3 zadanie do zrobienia."},
		Context: types.Context{
			UrgentTasks:  5,
			OverdueTasks: 1,
			ResponseType: types.ResponseTypeTask,
		},
	}
	rec := postJSON(t, s.EnhanceHandler, "/enhance", body, bearerToken(t, "user-1"))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.EnhanceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Enhanced.Text)
	// Numeral agreement fix survives the full handler path
	assert.Contains(t, resp.Enhanced.Text, "3 zadania")
	assert.Equal(t, catalog.EmotionStress, resp.Enhanced.EmotionalContext.PrimaryEmotion)
	assert.NotEmpty(t, resp.Enhanced.FollowUpSuggestions)
	assert.LessOrEqual(t, len(resp.Enhanced.FollowUpSuggestions), 3)
}

func TestEnhanceAppliesDurablePreferences(t *testing.T) {
	s := newTestServer()
	auth := bearerToken(t, "user-1")

	// A low rating on formality persists and shapes the next enhancement
	feedback := types.Feedback{FeedbackType: "too_fast", Rating: 1, Comments: "proszę formalnie"}
	rec := postJSON(t, s.FeedbackHandler, "/feedback", feedback, auth)
	require.Equal(t, http.StatusOK, rec.Code)

	body := types.EnhanceRequest{Response: types.Response{Text: "Zrób przegląd planu."}}
	rec = postJSON(t, s.EnhanceHandler, "/enhance", body, auth)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.EnhanceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	// formalityLevel=high rewrites the imperative
	assert.Contains(t, resp.Enhanced.Text, "wykonać przegląd")
	assert.NotContains(t, resp.Enhanced.Text, "Zrób")
}

func TestEnhanceCallerPreferencesWin(t *testing.T) {
	s := newTestServer()
	auth := bearerToken(t, "user-1")

	body := types.EnhanceRequest{
		Response: types.Response{Text: "Wszystko poszło dobrze."},
		Context: types.Context{
			UserPreferences: map[string]string{"communicationStyle": "motivational"},
		},
	}
	rec := postJSON(t, s.EnhanceHandler, "/enhance", body, auth)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.EnhanceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "motivational", resp.Enhanced.PersonalizationApplied.Style)
}

func TestUpdateContextHandler(t *testing.T) {
	s := newTestServer()
	auth := bearerToken(t, "user-1")

	body := types.ContextUpdateRequest{
		Context: types.Context{ResponseType: types.ResponseTypeCalendar},
		Data:    map[string]any{"query": "kalendarz na dziś"},
	}

	rec := postJSON(t, s.UpdateContextHandler, "/context/update", body, auth)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.ContextUpdateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Context.InteractionCount)

	rec = postJSON(t, s.UpdateContextHandler, "/context/update", body, auth)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Context.InteractionCount)
	assert.Len(t, resp.Context.ConversationHistory, 2)
}

func TestFeedbackAdaptsPreferences(t *testing.T) {
	s := newTestServer()
	auth := bearerToken(t, "user-2")

	feedback := types.Feedback{FeedbackType: "too_detailed", Rating: 2}
	rec := postJSON(t, s.FeedbackHandler, "/feedback", feedback, auth)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.FeedbackResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "low", resp.Preferences["detailLevel"])
}

func TestGetPreferencesReturnsDefaults(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/preferences", nil)
	req.Header.Set("Authorization", bearerToken(t, "user-3"))
	rec := httptest.NewRecorder()
	s.GetPreferencesHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.PreferencesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "casual", resp.Preferences["communicationStyle"])
	assert.Equal(t, "medium", resp.Preferences["formalityLevel"])
}

func TestImportPreferencesFiltersKeys(t *testing.T) {
	s := newTestServer()
	auth := bearerToken(t, "user-1")

	incoming := map[string]string{
		"preferredName": "Tomku",
		"theme":         "dark",
	}
	rec := postJSON(t, s.ImportPreferencesHandler, "/preferences", incoming, auth)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.PreferencesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Tomku", resp.Preferences["preferredName"])
	assert.NotContains(t, resp.Preferences, "theme")
}

func TestUserStateIsPerUser(t *testing.T) {
	s := newTestServer()

	feedback := types.Feedback{FeedbackType: "too_detailed", Rating: 1}
	rec := postJSON(t, s.FeedbackHandler, "/feedback", feedback, bearerToken(t, "user-a"))
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/preferences", nil)
	req.Header.Set("Authorization", bearerToken(t, "user-b"))
	rec2 := httptest.NewRecorder()
	s.GetPreferencesHandler(rec2, req)

	var resp types.PreferencesResponse
	require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &resp))
	assert.Equal(t, "medium", resp.Preferences["detailLevel"])
}
