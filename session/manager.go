package session

import (
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"clementus360/response-engine/config"
	"clementus360/response-engine/storage"
	"clementus360/response-engine/types"
)

// Manager owns the rolling conversation history and per-session
// preferences for one user. Not safe for concurrent callers; a single
// active conversation per instance is assumed.
type Manager struct {
	cfg    types.EngineConfig
	store  storage.Store
	userID string

	history          []types.HistoryEntry
	prefs            map[string]string
	sessionStart     time.Time
	lastInteraction  time.Time
	interactionCount int

	Now func() time.Time
}

func NewManager(store storage.Store, userID string) *Manager {
	m := &Manager{
		cfg:    config.EngineConfig,
		store:  store,
		userID: userID,
		prefs:  make(map[string]string),
		Now:    time.Now,
	}
	m.sessionStart = m.Now()
	m.loadState()
	return m
}

// UpdateContext records the interaction, trims history to the configured
// bound and returns the context enriched with historical data. State is
// persisted after every update.
func (m *Manager) UpdateContext(ctx types.Context, data map[string]any) types.EnrichedContext {
	now := m.Now()

	m.history = append(m.history, types.HistoryEntry{
		ID:        uuid.NewString(),
		Timestamp: now,
		Context:   ctx,
		Data:      data,
	})
	if len(m.history) > m.cfg.MaxHistoryLength {
		m.history = m.history[len(m.history)-m.cfg.MaxHistoryLength:]
	}

	m.interactionCount++
	m.lastInteraction = now

	enriched := types.EnrichedContext{Context: ctx}
	enriched.Behavior = m.AnalyzeBehavior()
	enriched.UserPreferences = m.mergedPreferences(ctx.UserPreferences)
	enriched.ConversationHistory = m.RecentHistory(m.cfg.RecentWindow)
	enriched.SessionLength = now.Sub(m.sessionStart)
	enriched.InteractionCount = m.interactionCount

	m.saveState()

	return enriched
}

// RecentHistory returns up to n most recent entries, newest last.
func (m *Manager) RecentHistory(n int) []types.HistoryEntry {
	if len(m.history) <= n {
		return append([]types.HistoryEntry(nil), m.history...)
	}
	return append([]types.HistoryEntry(nil), m.history[len(m.history)-n:]...)
}

func (m *Manager) SessionLength() time.Duration {
	return m.Now().Sub(m.sessionStart)
}

// Cleanup purges history entries older than the retention window and
// persists the trimmed state.
func (m *Manager) Cleanup() {
	cutoff := m.Now().Add(-m.cfg.HistoryRetention)

	kept := m.history[:0]
	for _, entry := range m.history {
		if entry.Timestamp.After(cutoff) {
			kept = append(kept, entry)
		}
	}
	m.history = kept

	m.saveState()
}

// SetPreference stores a session-scoped preference override.
func (m *Manager) SetPreference(key, value string) {
	m.prefs[key] = value
	m.saveState()
}

// Preference reads a session preference with a fallback.
func (m *Manager) Preference(key, fallback string) string {
	if v, ok := m.prefs[key]; ok {
		return v
	}
	return fallback
}

// mergedPreferences overlays the caller's snapshot preferences on the
// session-scoped ones; the snapshot wins.
func (m *Manager) mergedPreferences(snapshot map[string]string) map[string]string {
	merged := make(map[string]string, len(m.prefs)+len(snapshot))
	for k, v := range m.prefs {
		merged[k] = v
	}
	for k, v := range snapshot {
		merged[k] = v
	}
	return merged
}

func (m *Manager) loadState() {
	blob, err := m.store.Load(m.userID, storage.SlotContextManager)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			config.Logger.Warnf("failed to load context manager state: %v", err)
		}
		return
	}

	var state types.ContextManagerState
	if err := json.Unmarshal(blob, &state); err != nil {
		config.Logger.Warnf("malformed context manager state, starting empty: %v", err)
		return
	}

	for _, kv := range state.UserPreferences {
		m.prefs[kv[0]] = kv[1]
	}
	m.history = state.History
}

func (m *Manager) saveState() {
	state := types.ContextManagerState{
		History:   m.history,
		LastSaved: m.Now().UnixMilli(),
	}

	keys := make([]string, 0, len(m.prefs))
	for k := range m.prefs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		state.UserPreferences = append(state.UserPreferences, [2]string{k, m.prefs[k]})
	}

	blob, err := json.Marshal(state)
	if err != nil {
		config.Logger.Warnf("failed to encode context manager state: %v", err)
		return
	}
	if err := m.store.Save(m.userID, storage.SlotContextManager, blob); err != nil {
		config.Logger.Warnf("failed to save context manager state: %v", err)
	}
}
