package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unly/emufog/internal/ui"
	"github.com/unly/emufog/internal/wizard"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an emufog.yml config file interactively",
	Long: `Scan the working directory for topology input files and generate a
config file through an interactive wizard.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := "emufog.yml"

	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("%s already exists.\n", configPath)
		fmt.Print("Overwrite? [y/N] ")
		var answer string
		_, _ = fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	fmt.Println(ui.Bold("Scanning working directory..."))
	detection := wizard.Detect("")

	answers, err := wizard.Run(detection)
	if err != nil {
		return fmt.Errorf("wizard: %w", err)
	}

	content, err := wizard.GenerateConfig(*answers)
	if err != nil {
		return fmt.Errorf("generating config: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	ui.Success(fmt.Sprintf("Created %s", configPath))
	fmt.Println()
	next := "emufog transform -t " + answers.InputType
	for _, f := range answers.InputFiles {
		next += " -f " + f
	}
	fmt.Printf("Next step: %s\n", ui.Bold(next))
	fmt.Printf("           %s\n", ui.Hint("or edit emufog.yml to fine-tune your config"))

	return nil
}
