package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andriawan/dompet/internal/cli"
	"github.com/andriawan/dompet/internal/export"
	"github.com/andriawan/dompet/internal/model"
)

func init() {
	exportCmd := &cobra.Command{
		Use:   "export <csv|xls|json>",
		Short: "Export transactions to a file",
		Long: `Export the transaction collection.

Formats:
  csv   UTF-8 CSV with byte order marker
  xls   SpreadsheetML workbook
  json  full backup including settings`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"csv", "xls", "json"},
		RunE:      runExport,
	}

	exportCmd.Flags().StringP("output", "o", "", "output file (default: keuangan_<today>.<format>)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format := args[0]
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = fmt.Sprintf("keuangan_%s.%s", today(), format)
	}

	ctx := cmd.Context()
	store, cleanup, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	txns := store.All()
	if len(txns) == 0 {
		return fmt.Errorf("tidak ada data untuk diekspor")
	}
	model.SortNewestFirst(txns)

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", output, err)
	}
	defer func() { _ = f.Close() }()

	switch format {
	case "csv":
		err = export.WriteCSV(f, txns)
	case "xls":
		err = export.WriteSpreadsheetML(f, txns)
	case "json":
		err = export.WriteBackup(f, txns, store.Settings())
	default:
		return fmt.Errorf("unknown format %q (want csv, xls or json)", format)
	}
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Data berhasil diekspor ke %s", output)))
	return nil
}
