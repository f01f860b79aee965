package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unly/emufog/internal/config"
	"github.com/unly/emufog/internal/ui"
)

var validateFiles []string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate your emufog.yml configuration",
	Long: `Check that the configuration is complete and well-formed and that
the given input files exist.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringSliceVarP(&validateFiles, "file", "f", nil, "input files to check")
}

func runValidate(cmd *cobra.Command, args []string) error {
	fmt.Println(ui.Bold("Validating configuration..."))

	passed := 0
	failed := 0

	cfg, err := config.Load()
	if err != nil {
		ui.ValidationErr("config", err.Error(), "run 'emufog init' to create a config file")
		failed++
	} else {
		ui.ValidationOK("config", "configuration valid")
		passed++

		ui.ValidationOK("device types", fmt.Sprintf("%d configured", len(cfg.DeviceNodeTypes)))
		ui.ValidationOK("fog types", fmt.Sprintf("%d configured", len(cfg.FogNodeTypes)))
		passed += 2
	}

	for _, f := range validateFiles {
		if _, err := os.Stat(f); err != nil {
			ui.ValidationErr("file", fmt.Sprintf("not found: %s", f), "check the path")
			failed++
		} else {
			ui.ValidationOK("file", f)
			passed++
		}
	}

	fmt.Println()
	if failed == 0 {
		ui.Success(fmt.Sprintf("%d checks passed, 0 errors", passed))
		return nil
	}
	fmt.Printf("%d checks passed, %d errors\n", passed, failed)
	return fmt.Errorf("%w: %d validation errors", config.ErrInvalid, failed)
}
