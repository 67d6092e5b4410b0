package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andriawan/dompet/internal/cli"
	"github.com/andriawan/dompet/internal/common"
	"github.com/andriawan/dompet/internal/export"
)

func init() {
	backupCmd := &cobra.Command{
		Use:   "backup [file]",
		Short: "Write a JSON backup of transactions and settings",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBackup,
	}

	restoreCmd := &cobra.Command{
		Use:   "restore <file>",
		Short: "Restore transactions and settings from a JSON backup",
		Long: `Restore from a backup file. The current transaction collection is
replaced; settings from the backup are merged over the current ones.`,
		Args: cobra.ExactArgs(1),
		RunE: runRestore,
	}

	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
}

func runBackup(cmd *cobra.Command, args []string) error {
	output := fmt.Sprintf("backup_keuangan_%s.json", today())
	if len(args) == 1 {
		output = args[0]
	}

	ctx := cmd.Context()
	store, cleanup, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", output, err)
	}
	defer func() { _ = f.Close() }()

	if err := export.WriteBackup(f, store.All(), store.Settings()); err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Backup berhasil dibuat: %s", output)))
	return nil
}

func runRestore(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	backup, err := export.ParseBackup(data)
	if err != nil {
		return common.NewUserError("File backup tidak valid", err)
	}

	ctx := cmd.Context()
	store, cleanup, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := store.ReplaceAll(ctx, backup.Transactions); err != nil {
		return err
	}
	if backup.Settings != nil {
		merged := store.Settings().Merge(*backup.Settings)
		if err := store.SetSettings(ctx, merged); err != nil {
			return err
		}
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Data berhasil dipulihkan: %d transaksi", len(backup.Transactions))))
	return nil
}
