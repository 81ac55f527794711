package handlers

import (
	"sync"

	"clementus360/response-engine/engine"
	"clementus360/response-engine/prefs"
	"clementus360/response-engine/session"
	"clementus360/response-engine/storage"
)

// Server exposes the enhancement engine to the surrounding application.
// Engine state is not internally locked, so access to a user's manager and
// preference store is serialized here.
type Server struct {
	Engine *engine.Engine
	Store  storage.Store

	mu    sync.Mutex
	users map[string]*userState
}

type userState struct {
	manager     *session.Manager
	preferences *prefs.Store
}

func NewServer(eng *engine.Engine, store storage.Store) *Server {
	return &Server{
		Engine: eng,
		Store:  store,
		users:  make(map[string]*userState),
	}
}

// state returns the per-user manager/preferences pair, creating and
// loading it on first use. Callers must hold s.mu.
func (s *Server) state(userID string) *userState {
	if st, ok := s.users[userID]; ok {
		return st
	}

	st := &userState{
		manager:     session.NewManager(s.Store, userID),
		preferences: prefs.New(s.Store, userID),
	}
	st.preferences.Load()
	s.users[userID] = st
	return st
}
