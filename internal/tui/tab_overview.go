package tui

import (
	"fmt"
	"strings"

	"github.com/qbudget/qbudget/internal/cli"
	"github.com/qbudget/qbudget/internal/model"
	"github.com/qbudget/qbudget/internal/tui/components"
	"github.com/qbudget/qbudget/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	res := a.res

	if len(res.Periods) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).
			Render("  No quarters found in the input file.")
	}

	n := len(res.Periods)
	totals := model.IncomeTotals(res.Income)
	finalCash := res.CashBudget[n-1].EndingCash
	finalAssets := res.Balance[n-1].TotalAssets

	cashNote := ""
	if finalCash < 0 {
		cashNote = "shortfall"
	}

	cards := []struct{ Label, Value, Note string }{
		{"Total Revenue", cli.FormatMoney(totals.TotalRevenue), ""},
		{"Gross Profit", cli.FormatMoney(totals.GrossProfit), ""},
		{"Final Ending Cash", cli.FormatMoney(finalCash), cashNote},
		{"Total Assets", cli.FormatMoney(finalAssets), ""},
	}

	revenue := make([]float64, n)
	labels := make([]string, n)
	for i, r := range res.Revenue {
		revenue[i] = r.SalesRevenue
		labels[i] = r.Label
	}

	cash := make([]float64, n)
	for i, c := range res.CashBudget {
		cash[i] = c.EndingCash
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)

	var cashBody strings.Builder
	cashBody.WriteString(labelStyle.Render("Ending cash by quarter  "))
	cashBody.WriteString(components.Sparkline(cash, t.Accent))
	for _, c := range res.CashBudget {
		if c.EndingCash < 0 {
			cashBody.WriteString("\n")
			cashBody.WriteString(warnStyle.Render(fmt.Sprintf(
				"%s ends with a shortfall of %s", c.Label, cli.FormatMoney(-c.EndingCash))))
		}
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Quarterly Revenue",
		components.BarChart(revenue, labels, t.Accent, 8), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Cash Position", cashBody.String(), cw))

	return b.String()
}
