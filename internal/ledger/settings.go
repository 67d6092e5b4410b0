package ledger

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/andriawan/dompet/internal/model"
)

// Settings returns the current user settings.
func (s *Store) Settings() model.Settings {
	return s.settings
}

// SetSettings replaces the user settings and persists them.
func (s *Store) SetSettings(ctx context.Context, settings model.Settings) error {
	s.settings = settings

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := s.kv.Set(ctx, settingsKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist settings: %w", err)
	}
	return nil
}
