package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/andriawan/dompet/internal/common"
	"github.com/andriawan/dompet/internal/config"
	"github.com/andriawan/dompet/internal/ledger"
	"github.com/andriawan/dompet/internal/model"
	"github.com/andriawan/dompet/internal/storage"
)

// openStore opens the configured database and loads the ledger. The
// returned cleanup must be called when the command is done.
func openStore(ctx context.Context) (*ledger.Store, func(), error) {
	dbPath := config.ExpandPath(viper.GetString("database.path"))

	kv, err := storage.NewSQLiteKV(dbPath)
	if err != nil {
		common.LogError(err, "failed to open database", common.Fields{"path": dbPath})
		return nil, nil, common.NewUserError("Tidak bisa membuka database", err)
	}

	store := ledger.NewStore(kv)
	if err := store.Load(ctx); err != nil {
		_ = kv.Close()
		return nil, nil, err
	}

	return store, func() { _ = kv.Close() }, nil
}

// today returns the current date in the transaction date format.
func today() string {
	return time.Now().Format(model.DateLayout)
}

// nowClock returns the current HH:MM clock time.
func nowClock() string {
	return time.Now().Format("15:04")
}

// shortID abbreviates a uuid for display. Restored backups may carry
// shorter ids; those are shown as-is.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// parseType maps a flag value onto a transaction type.
func parseType(value string) (model.TransactionType, error) {
	t := model.TransactionType(value)
	if !t.Valid() {
		return "", fmt.Errorf("invalid type %q (want income or expense)", value)
	}
	return t, nil
}
