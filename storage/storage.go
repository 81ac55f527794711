package storage

import "errors"

// Named state slots persisted per user.
const (
	SlotPreferences    = "preferences"
	SlotContextManager = "context-manager-state"
)

// ErrNotFound is returned when a user has no stored blob for a slot.
var ErrNotFound = errors.New("storage: no stored state")

// Store is the persistence capability used by the engine's stateful
// components. Implementations round-trip opaque blobs keyed by user and
// slot; they never interpret the contents.
type Store interface {
	Load(userID, slot string) ([]byte, error)
	Save(userID, slot string, blob []byte) error
}
