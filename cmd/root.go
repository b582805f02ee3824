package cmd

import (
	"fmt"
	"os"

	"github.com/qbudget/qbudget/internal/config"
	"github.com/qbudget/qbudget/internal/engine"
	"github.com/qbudget/qbudget/internal/input"
	"github.com/qbudget/qbudget/internal/model"
	"github.com/qbudget/qbudget/internal/policy"
	"github.com/qbudget/qbudget/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagInput      string
	flagPolicyFile string
	flagOutputDir  string
	flagQuiet      bool
	flagNoSave     bool
)

// appCfg holds the loaded application preferences; flag values override it.
var appCfg config.Config

var rootCmd = &cobra.Command{
	Use:   "qbudget",
	Short: "Quarterly master budget CLI",
	Long:  "Compute a quarterly master budget from a sales forecast: cash budget, income statement, and balance sheet.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	appCfg, _ = config.Load()

	rootCmd.PersistentFlags().StringVarP(&flagInput, "input", "i", appCfg.General.InputFile, "Sales forecast CSV (quarter,sales_units,unit_price)")
	rootCmd.PersistentFlags().StringVar(&flagPolicyFile, "policy-file", "", "Policy file path (default: "+policy.Path()+")")
	rootCmd.PersistentFlags().StringVarP(&flagOutputDir, "output-dir", "o", appCfg.General.OutputDir, "Directory for exported reports")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVar(&flagNoSave, "no-save", false, "Skip recording this run in history")
}

// resolveInput returns the input path from the flag or the config file.
func resolveInput() (string, error) {
	if flagInput != "" {
		return flagInput, nil
	}
	return "", fmt.Errorf("no input file: pass --input, or run `qbudget sample` to generate one")
}

func policyPath() string {
	if flagPolicyFile != "" {
		return flagPolicyFile
	}
	if appCfg.General.PolicyFile != "" {
		return appCfg.General.PolicyFile
	}
	return policy.Path()
}

// loadPeriods is the shared input loading path used by all commands.
func loadPeriods() ([]model.Period, string, error) {
	path, err := resolveInput()
	if err != nil {
		return nil, "", err
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Loading %s...\n", path)
	}

	periods, err := input.Load(path)
	if err != nil {
		return nil, "", err
	}
	return periods, path, nil
}

// runPipeline loads the forecast and policy, runs the engine, and records
// the run in history unless told not to.
func runPipeline() (*engine.Result, error) {
	periods, inputPath, err := loadPeriods()
	if err != nil {
		return nil, err
	}

	pol, err := policy.Load(policyPath())
	if err != nil {
		return nil, err
	}

	res, err := engine.Run(periods, pol)
	if err != nil {
		return nil, err
	}

	if appCfg.General.SaveRuns && !flagNoSave {
		recordRun(res, inputPath)
	}
	return res, nil
}

// recordRun logs the run. History failures are warnings, never fatal.
func recordRun(res *engine.Result, inputPath string) {
	h, err := store.Open(store.DefaultPath())
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  history unavailable: %v\n", err)
		}
		return
	}
	defer h.Close()

	if err := h.Record(res, inputPath); err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  could not record run: %v\n", err)
	}
}
