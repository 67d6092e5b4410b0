package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andriawan/dompet/internal/cli"
)

func init() {
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all transactions",
		Long: `Delete every stored transaction. This cannot be undone; pass --force
to confirm.`,
		RunE: runClear,
	}

	clearCmd.Flags().BoolP("force", "f", false, "confirm deleting all data")

	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, _ []string) error {
	force, _ := cmd.Flags().GetBool("force")
	if !force {
		return fmt.Errorf("refusing to delete all data without --force")
	}

	ctx := cmd.Context()
	store, cleanup, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	count := store.Count()
	if err := store.ReplaceAll(ctx, nil); err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Semua data dihapus (%d transaksi)", count)))
	return nil
}
