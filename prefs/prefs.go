package prefs

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"clementus360/response-engine/config"
	"clementus360/response-engine/storage"
	"clementus360/response-engine/types"
)

// Defaults seed the preference store. Import accepts only these keys.
var Defaults = map[string]string{
	"communicationStyle": config.StyleCasual,
	"formalityLevel":     config.LevelMedium,
	"preferredName":      "",
	"voiceSpeed":         "normal",
	"detailLevel":        config.LevelMedium,
	"motivationLevel":    config.LevelMedium,
	"languageVariant":    "standard",
}

// Store is the durable key-value preference store for one user. Entries
// are materialized from defaults on first access and adapted one notch at
// a time from feedback.
type Store struct {
	store  storage.Store
	userID string
	prefs  map[string]string

	Now func() time.Time
}

func New(store storage.Store, userID string) *Store {
	return &Store{
		store:  store,
		userID: userID,
		prefs:  make(map[string]string),
		Now:    time.Now,
	}
}

// Load restores persisted preferences and materializes defaults for any
// missing keys. Malformed or missing state falls back to defaults.
func (s *Store) Load() {
	s.prefs = make(map[string]string, len(Defaults))

	blob, err := s.store.Load(s.userID, storage.SlotPreferences)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			config.Logger.Warnf("failed to load user preferences: %v", err)
		}
	} else {
		var state types.PreferencesState
		if err := json.Unmarshal(blob, &state); err != nil {
			config.Logger.Warnf("malformed user preferences, using defaults: %v", err)
		} else {
			for _, kv := range state.Preferences {
				s.prefs[kv[0]] = kv[1]
			}
		}
	}

	for key, value := range Defaults {
		if _, ok := s.prefs[key]; !ok {
			s.prefs[key] = value
		}
	}
}

// Get returns the stored preference, falling back to its default.
func (s *Store) Get(key string) string {
	if v, ok := s.prefs[key]; ok {
		return v
	}
	return Defaults[key]
}

func (s *Store) Set(key, value string) {
	s.prefs[key] = value
	s.save()
}

// UpdateFromFeedback adapts preferences from explicit feedback, one notch
// at a time, and from a fixed set of free-text comment cues.
func (s *Store) UpdateFromFeedback(feedback types.Feedback) {
	if feedback.Rating < 3 {
		switch feedback.FeedbackType {
		case "too_formal":
			s.stepDown("formalityLevel")
		case "too_detailed":
			s.stepDown("detailLevel")
		case "too_fast":
			s.Set("voiceSpeed", "slow")
		}
	}

	if feedback.Comments != "" {
		comments := strings.ToLower(feedback.Comments)
		if strings.Contains(comments, "wolniej") {
			s.Set("voiceSpeed", "slow")
		}
		if strings.Contains(comments, "krótko") {
			s.Set("detailLevel", config.LevelLow)
		}
		if strings.Contains(comments, "formal") {
			s.Set("formalityLevel", config.LevelHigh)
		}
	}
}

// stepDown lowers a level preference by one step, flooring at low.
func (s *Store) stepDown(key string) {
	switch s.Get(key) {
	case config.LevelHigh:
		s.Set(key, config.LevelMedium)
	case config.LevelMedium:
		s.Set(key, config.LevelLow)
	}
}

// Export returns a copy of the full preference map.
func (s *Store) Export() map[string]string {
	out := make(map[string]string, len(Defaults))
	for key := range Defaults {
		out[key] = s.Get(key)
	}
	return out
}

// Import applies the given preferences, ignoring keys absent from the
// defaults table.
func (s *Store) Import(preferences map[string]string) {
	for key, value := range preferences {
		if _, ok := Defaults[key]; ok {
			s.prefs[key] = value
		}
	}
	s.save()
}

// Reset restores every preference to its default.
func (s *Store) Reset() {
	s.prefs = make(map[string]string, len(Defaults))
	for key, value := range Defaults {
		s.prefs[key] = value
	}
	s.save()
}

func (s *Store) save() {
	state := types.PreferencesState{LastUpdated: s.Now().UnixMilli()}

	keys := make([]string, 0, len(s.prefs))
	for k := range s.prefs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		state.Preferences = append(state.Preferences, [2]string{k, s.prefs[k]})
	}

	blob, err := json.Marshal(state)
	if err != nil {
		config.Logger.Errorf("failed to encode user preferences: %v", err)
		return
	}
	if err := s.store.Save(s.userID, storage.SlotPreferences, blob); err != nil {
		config.Logger.Errorf("failed to save user preferences: %v", err)
	}
}
