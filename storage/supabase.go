package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/supabase-community/supabase-go"
)

const stateTable = "voice_engine_state"

type stateRow struct {
	UserID    string          `json:"user_id"`
	Slot      string          `json:"slot"`
	Blob      json.RawMessage `json:"blob"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SupabaseStore persists state blobs in a Supabase table keyed by
// (user_id, slot).
type SupabaseStore struct {
	client *supabase.Client
}

func NewSupabase() (*SupabaseStore, error) {
	apiURL := os.Getenv("SUPABASE_URL")
	apiKey := os.Getenv("SUPABASE_KEY")

	if apiURL == "" || apiKey == "" {
		return nil, fmt.Errorf("SUPABASE_URL or SUPABASE_KEY is missing")
	}

	client, err := supabase.NewClient(apiURL, apiKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to create Supabase client: %w", err)
	}

	return &SupabaseStore{client: client}, nil
}

func (s *SupabaseStore) Load(userID, slot string) ([]byte, error) {
	resp, _, err := s.client.From(stateTable).
		Select("*", "", false).
		Eq("user_id", userID).
		Eq("slot", slot).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s state: %w", slot, err)
	}

	var rows []stateRow
	if err := json.Unmarshal(resp, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s state: %w", slot, err)
	}

	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	return rows[0].Blob, nil
}

func (s *SupabaseStore) Save(userID, slot string, blob []byte) error {
	row := stateRow{
		UserID:    userID,
		Slot:      slot,
		Blob:      blob,
		UpdatedAt: time.Now(),
	}

	_, _, err := s.client.From(stateTable).
		Upsert(row, "user_id,slot", "", "").
		Execute()

	if err != nil {
		return fmt.Errorf("failed to save %s state: %w", slot, err)
	}

	return nil
}
