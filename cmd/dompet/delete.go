package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andriawan/dompet/internal/cli"
)

func init() {
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Long: `Delete a transaction by id. Deleting an id that does not exist is a
no-op, not an error.`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	store, cleanup, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := store.Remove(ctx, args[0]); err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Transaksi %s dihapus", args[0])))
	return nil
}
