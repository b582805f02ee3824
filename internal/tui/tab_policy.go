package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/qbudget/qbudget/internal/cli"
	"github.com/qbudget/qbudget/internal/policy"
	"github.com/qbudget/qbudget/internal/tui/components"
	"github.com/qbudget/qbudget/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// policyFields maps display labels to on-disk policy keys, in render order.
var policyFields = []struct {
	label string
	key   string
}{
	{"Collect current quarter", "sales_collection_current"},
	{"Collect next quarter", "sales_collection_next"},
	{"Pay current quarter", "purchases_payment_current"},
	{"Pay next quarter", "purchases_payment_next"},
	{"Ending inventory pct", "ending_inventory_pct"},
	{"External financing ratio", "external_financing_ratio"},
	{"Working capital turnover", "working_capital_turnover"},
	{"Beginning cash", "beginning_cash"},
	{"Cost ratio", "cost_ratio"},
}

// policyState tracks the policy tab state.
type policyState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newPolicyInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 32
	ti.Width = 20
	return ti
}

func (a App) policyStartEdit() (tea.Model, tea.Cmd) {
	a.policyTab.editing = true
	a.policyTab.saved = false

	ti := newPolicyInput()
	field := policyFields[a.policyTab.cursor]
	if v, ok := a.res.Policy.Get(field.key); ok {
		ti.SetValue(cli.FormatRatio(v))
	}
	ti.Placeholder = "0.6"

	ti.Focus()
	a.policyTab.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updatePolicyInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "enter":
		reload := a.policySave()
		a.policyTab.editing = false
		a.policyTab.saved = a.policyTab.saveErr == nil
		return a, reload
	case "esc":
		a.policyTab.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.policyTab.input, cmd = a.policyTab.input.Update(msg)
	return a, cmd
}

// policySave writes the edited value to the policy file and, on success,
// returns a command that recomputes the budget with the fresh policy.
func (a *App) policySave() tea.Cmd {
	val := strings.TrimSpace(a.policyTab.input.Value())

	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		a.policyTab.saveErr = fmt.Errorf("%q is not a number", val)
		return nil
	}

	p, err := policy.Load(a.policyPath)
	if err != nil {
		a.policyTab.saveErr = err
		return nil
	}

	field := policyFields[a.policyTab.cursor]
	p.Set(field.key, num)

	if err := policy.Save(p, a.policyPath); err != nil {
		a.policyTab.saveErr = err
		return nil
	}

	a.policyTab.saveErr = nil
	return loadCmd(a.inputPath, a.policyPath)
}

func (a App) renderPolicyTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	var formBody strings.Builder
	for i, f := range policyFields {
		value := ""
		if v, ok := a.res.Policy.Get(f.key); ok {
			if f.key == "beginning_cash" {
				value = cli.FormatMoney(v)
			} else {
				value = cli.FormatRatio(v)
			}
		}

		// Show text input if currently editing this field
		if a.policyTab.editing && i == a.policyTab.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-26s ", f.label)))
			formBody.WriteString(a.policyTab.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.policyTab.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-26s ", f.label+":"))
			val := selectedStyle.Render(value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(val)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(val)
			innerW := components.CardInnerWidth(cw)
			if padLen := innerW - usedWidth; padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-26s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(value))
		}
		formBody.WriteString("\n")
	}

	if a.policyTab.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.policyTab.saveErr)))
	} else if a.policyTab.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved. Schedules recomputed."))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Policy file: ") + valueStyle.Render(a.policyPath) + "\n")
	infoBody.WriteString(labelStyle.Render("Input file:  ") + valueStyle.Render(a.inputPath) + "\n")
	infoBody.WriteString(labelStyle.Render("Load time:   ") + valueStyle.Render(fmt.Sprintf("%.2fs", a.loadTime.Seconds())))

	var b strings.Builder
	b.WriteString(components.ContentCard("Budgeting Policy", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Files", infoBody.String(), cw))

	return b.String()
}
