package types

// Persisted state blobs. The storage backend round-trips these without
// interpreting them.

// PreferencesState is the durable form of the user preference map.
type PreferencesState struct {
	Preferences [][2]string `json:"preferences"`
	LastUpdated int64       `json:"lastUpdated"` // epoch ms
}

// ContextManagerState is the durable form of the context manager's
// session preferences and rolling history.
type ContextManagerState struct {
	UserPreferences [][2]string    `json:"userPreferences"`
	History         []HistoryEntry `json:"history,omitempty"`
	LastSaved       int64          `json:"lastSaved"` // epoch ms
}
