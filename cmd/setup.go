package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/qbudget/qbudget/internal/config"
	"github.com/qbudget/qbudget/internal/policy"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to qbudget!")
	fmt.Println()

	// 1. Default input file
	fmt.Println("  1. Default sales forecast CSV")
	fmt.Println("     Used when --input is not given. Leave empty to always pass it.")
	if cfg.General.InputFile != "" {
		fmt.Printf("     Current: %s\n", cfg.General.InputFile)
	}
	fmt.Print("     > ")
	inputFile, _ := reader.ReadString('\n')
	inputFile = strings.TrimSpace(inputFile)
	if inputFile != "" {
		cfg.General.InputFile = inputFile
	}
	fmt.Println()

	// 2. Output directory
	fmt.Println("  2. Output directory for exported reports")
	fmt.Printf("     Current: %s\n", cfg.General.OutputDir)
	fmt.Print("     > ")
	outputDir, _ := reader.ReadString('\n')
	outputDir = strings.TrimSpace(outputDir)
	if outputDir != "" {
		cfg.General.OutputDir = outputDir
	}
	fmt.Println()

	// 3. Run history
	fmt.Println("  3. Record runs in history?")
	fmt.Println("     (1) Yes [default]")
	fmt.Println("     (2) No")
	fmt.Print("     > ")
	saveChoice, _ := reader.ReadString('\n')
	cfg.General.SaveRuns = strings.TrimSpace(saveChoice) != "2"
	fmt.Println()

	// 4. Theme
	fmt.Println("  4. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	// Seed a policy file with defaults so `qbudget policy set` has
	// something to edit.
	if !policy.Exists() && flagPolicyFile == "" {
		if err := policy.Save(policy.Default(), policy.Path()); err != nil {
			return fmt.Errorf("writing default policy: %w", err)
		}
		fmt.Println()
		fmt.Printf("  Wrote default policy to %s\n", policy.Path())
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `qbudget setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
