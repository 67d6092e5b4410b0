package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/andriawan/dompet/internal/cli"
	"github.com/andriawan/dompet/internal/common"
	"github.com/andriawan/dompet/internal/importer"
)

func init() {
	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import transactions from a CSV or spreadsheet file",
		Long: `Import transactions from a CSV, XLS or XLSX file. The first row is
treated as a header and skipped; rows that cannot be normalized into a
valid transaction are dropped silently.

Examples:
  # Append imported transactions to the existing data
  dompet import ~/Downloads/transaksi.csv

  # Replace all existing data with the file contents
  dompet import --mode replace transaksi.xlsx

  # Only preview what would be imported
  dompet import --dry-run transaksi.csv`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	importCmd.Flags().String("mode", "merge", "commit mode (merge, replace)")
	importCmd.Flags().BoolP("dry-run", "d", false, "preview without saving")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	modeValue, _ := cmd.Flags().GetString("mode")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	mode := importer.CommitMode(modeValue)
	if mode != importer.CommitMerge && mode != importer.CommitReplace {
		return fmt.Errorf("unknown commit mode %q (want merge or replace)", modeValue)
	}

	filename := args[0]
	pipeline := importer.NewPipeline()
	if err := pipeline.Select(filename); err != nil {
		return err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		pipeline.Cancel()
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}

	var bar *progressbar.ProgressBar
	pipeline.Progress = func(done, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetDescription("Normalizing rows"),
				progressbar.OptionClearOnFinish(),
			)
		}
		_ = bar.Set(done)
	}

	if err := pipeline.Parse(data); err != nil {
		return err
	}

	preview, total := pipeline.Preview()
	fmt.Println(cli.FormatTitle(fmt.Sprintf("%d transaksi akan diimport", total)))
	if rejected := pipeline.Rejected(); rejected > 0 {
		fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("%d baris dilewati", rejected)))
	}
	for _, txn := range preview {
		fmt.Printf("%-12s %-24s %s\n",
			cli.FormatDate(txn.Date),
			truncate(txn.Description, 24),
			cli.FormatSigned(txn.Type, txn.Amount))
	}
	if total > len(preview) {
		fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("...dan %d transaksi lainnya", total-len(preview))))
	}

	if dryRun {
		pipeline.Cancel()
		fmt.Println(cli.SubtleStyle.Render("Dry run — tidak ada data disimpan"))
		return nil
	}

	ctx := cmd.Context()
	store, cleanup, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	committed, err := pipeline.Commit(ctx, store, mode)
	if err != nil {
		return err
	}
	common.LogInfo("import committed", common.Fields{
		"file":     filepath.Base(filename),
		"mode":     string(mode),
		"count":    committed,
		"rejected": pipeline.Rejected(),
	})

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("%d transaksi berhasil diimport dari %s (%s)",
		committed, filepath.Base(filename), mode)))
	return nil
}
