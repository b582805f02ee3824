package tui

import (
	"os"
	"strings"

	"github.com/qbudget/qbudget/internal/config"
	"github.com/qbudget/qbudget/internal/input"
	"github.com/qbudget/qbudget/internal/policy"
	"github.com/qbudget/qbudget/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// setupValues backs the first-run form.
type setupValues struct {
	InputPath      string
	GenerateSample bool
	Theme          string
}

func newSetupForm(vals *setupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, t := range theme.All {
		themeOpts[i] = huh.NewOption(t.Name, t.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Sales forecast CSV").
				Description("Columns: quarter, sales_units, unit_price. Leave empty to use sales_sample.csv.").
				Value(&vals.InputPath),
			huh.NewConfirm().
				Title("Generate a sample forecast if the file does not exist?").
				Value(&vals.GenerateSample),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),
		),
	)
}

// finishSetup applies the completed form: writes a sample file when asked,
// persists preferences, and kicks off the first pipeline run.
func (a *App) finishSetup() tea.Cmd {
	vals := a.setupVals

	path := strings.TrimSpace(vals.InputPath)
	if path == "" {
		path = "sales_sample.csv"
	}
	if _, err := os.Stat(path); err != nil && vals.GenerateSample {
		_ = input.WriteSample(path)
	}
	a.inputPath = path

	theme.SetActive(vals.Theme)

	// Persist best-effort; the session still works if the config dir is
	// unwritable.
	cfg, _ := config.Load()
	cfg.General.InputFile = path
	cfg.Appearance.Theme = vals.Theme
	_ = config.Save(cfg)

	if !policy.Exists() {
		_ = policy.Save(policy.Default(), policy.Path())
	}

	return loadCmd(a.inputPath, a.policyPath)
}
