package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andriawan/dompet/internal/cli"
	"github.com/andriawan/dompet/internal/model"
)

func init() {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change user settings",
		RunE:  runSettingsShow,
	}

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings",
		Long: `Change one or more settings.

Examples:
  dompet settings set --name Andri
  dompet settings set --target 250000
  dompet settings set --theme dark
  dompet settings set --hide-balance`,
		RunE: runSettingsSet,
	}

	setCmd.Flags().String("name", "", "display name")
	setCmd.Flags().Int64("target", -1, "daily income target in rupiah")
	setCmd.Flags().String("theme", "", "theme (light, dark)")
	setCmd.Flags().Bool("hide-balance", false, "mask the balance on the dashboard")
	setCmd.Flags().Bool("show-balance", false, "show the balance on the dashboard")

	settingsCmd.AddCommand(setCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	store, cleanup, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	settings := store.Settings()
	theme := "Terang"
	if settings.Theme == model.ThemeDark {
		theme = "Gelap"
	}
	balance := "tampil"
	if settings.BalanceHidden {
		balance = "disembunyikan"
	}

	fmt.Println(cli.FormatTitle("Pengaturan"))
	fmt.Printf("Nama           %s\n", settings.Name)
	fmt.Printf("Target harian  %s\n", cli.FormatIDR(settings.DailyTarget))
	fmt.Printf("Tema           %s\n", theme)
	fmt.Printf("Saldo          %s\n", balance)
	return nil
}

func runSettingsSet(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	store, cleanup, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	settings := store.Settings()

	if cmd.Flags().Changed("name") {
		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			return fmt.Errorf("name cannot be empty")
		}
		settings.Name = name
	}
	if cmd.Flags().Changed("target") {
		target, _ := cmd.Flags().GetInt64("target")
		if target < 0 {
			return fmt.Errorf("target cannot be negative")
		}
		settings.DailyTarget = target
	}
	if cmd.Flags().Changed("theme") {
		theme, _ := cmd.Flags().GetString("theme")
		if theme != model.ThemeLight && theme != model.ThemeDark {
			return fmt.Errorf("invalid theme %q (want light or dark)", theme)
		}
		settings.Theme = theme
	}
	if hide, _ := cmd.Flags().GetBool("hide-balance"); hide {
		settings.BalanceHidden = true
	}
	if show, _ := cmd.Flags().GetBool("show-balance"); show {
		settings.BalanceHidden = false
	}

	if err := store.SetSettings(ctx, settings); err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess("Pengaturan disimpan"))
	return nil
}
