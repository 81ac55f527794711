package handlers

import (
	"encoding/json"
	"net/http"

	"clementus360/response-engine/config"
	"clementus360/response-engine/types"
)

func (s *Server) FeedbackHandler(w http.ResponseWriter, r *http.Request) {
	var feedback types.Feedback
	if err := json.NewDecoder(r.Body).Decode(&feedback); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	userID, err := UserFromRequest(r)
	if err != nil {
		config.Logger.Warn("Unauthorized feedback: ", err)
		writeError(w, err.Error(), http.StatusUnauthorized)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(userID)

	st.preferences.UpdateFromFeedback(feedback)

	writeJSON(w, http.StatusOK, types.FeedbackResponse{
		Success:     true,
		Preferences: st.preferences.Export(),
	})
}

func (s *Server) GetPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := UserFromRequest(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusUnauthorized)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(userID)

	writeJSON(w, http.StatusOK, types.PreferencesResponse{
		Success:     true,
		Preferences: st.preferences.Export(),
	})
}

func (s *Server) ImportPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	var incoming map[string]string
	if err := json.NewDecoder(r.Body).Decode(&incoming); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	userID, err := UserFromRequest(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusUnauthorized)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(userID)

	st.preferences.Import(incoming)

	writeJSON(w, http.StatusOK, types.PreferencesResponse{
		Success:     true,
		Preferences: st.preferences.Export(),
	})
}
