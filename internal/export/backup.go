package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/andriawan/dompet/internal/common"
	"github.com/andriawan/dompet/internal/model"
)

// Backup is the JSON backup payload. Restore accepts the same shape.
type Backup struct {
	Transactions []model.Transaction `json:"transactions"`
	Settings     *model.Settings     `json:"settings,omitempty"`
	BackupDate   string              `json:"backupDate,omitempty"`
}

// WriteBackup writes the full state as indented JSON.
func WriteBackup(w io.Writer, txns []model.Transaction, settings model.Settings) error {
	backup := Backup{
		Transactions: txns,
		Settings:     &settings,
		BackupDate:   time.Now().UTC().Format(time.RFC3339),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	return nil
}

// ParseBackup decodes a backup payload. A payload that is not JSON, or
// that lacks a transactions field, is rejected; a present-but-empty
// transactions array is valid.
func ParseBackup(data []byte) (Backup, error) {
	var probe struct {
		Transactions json.RawMessage `json:"transactions"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return Backup{}, fmt.Errorf("%w: %v", common.ErrRestorePayload, err)
	}
	if probe.Transactions == nil {
		return Backup{}, fmt.Errorf("%w: missing transactions field", common.ErrRestorePayload)
	}

	var backup Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		return Backup{}, fmt.Errorf("%w: %v", common.ErrRestorePayload, err)
	}
	return backup, nil
}
