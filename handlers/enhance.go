package handlers

import (
	"encoding/json"
	"net/http"

	"clementus360/response-engine/config"
	"clementus360/response-engine/types"
)

func (s *Server) EnhanceHandler(w http.ResponseWriter, r *http.Request) {
	var req types.EnhanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.Response.Text == "" {
		writeError(w, "Missing response text", http.StatusBadRequest)
		return
	}

	userID, err := UserFromRequest(r)
	if err != nil {
		config.Logger.Warn("Unauthorized enhance request: ", err)
		writeError(w, err.Error(), http.StatusUnauthorized)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(userID)

	// Durable preferences feed the snapshot; caller-supplied values win.
	merged := st.preferences.Export()
	for k, v := range req.Context.UserPreferences {
		merged[k] = v
	}
	req.Context.UserPreferences = merged

	enriched := st.manager.UpdateContext(req.Context, map[string]any{
		"response_type": req.Context.ResponseType,
		"text_length":   len(req.Response.Text),
	})

	enhanced := s.Engine.Enhance(req.Response, enriched.Context)

	writeJSON(w, http.StatusOK, types.EnhanceResponse{
		Success:  true,
		Enhanced: enhanced,
	})
}

func (s *Server) UpdateContextHandler(w http.ResponseWriter, r *http.Request) {
	var req types.ContextUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	userID, err := UserFromRequest(r)
	if err != nil {
		config.Logger.Warn("Unauthorized context update: ", err)
		writeError(w, err.Error(), http.StatusUnauthorized)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(userID)

	enriched := st.manager.UpdateContext(req.Context, req.Data)

	writeJSON(w, http.StatusOK, types.ContextUpdateResponse{
		Success: true,
		Context: enriched,
	})
}
