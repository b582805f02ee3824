package tui

import (
	"strings"

	"github.com/qbudget/qbudget/internal/cli"
	"github.com/qbudget/qbudget/internal/model"
	"github.com/qbudget/qbudget/internal/tui/components"
	"github.com/qbudget/qbudget/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderBalanceTab(cw int) string {
	t := theme.Active
	res := a.res

	if len(res.Periods) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).
			Render("  No quarters found in the input file.")
	}

	income := make([][]string, 0, len(res.Income)+1)
	for _, l := range res.Income {
		income = append(income, []string{
			l.Label,
			cli.FormatMoney(l.TotalRevenue),
			cli.FormatMoney(l.TotalCOGS),
			cli.FormatMoney(l.GrossProfit),
		})
	}
	totals := model.IncomeTotals(res.Income)
	income = append(income, []string{
		totals.Label,
		cli.FormatMoney(totals.TotalRevenue),
		cli.FormatMoney(totals.TotalCOGS),
		cli.FormatMoney(totals.GrossProfit),
	})

	balance := make([][]string, 0, len(res.Balance))
	for _, l := range res.Balance {
		balance = append(balance, []string{
			l.Label,
			cli.FormatMoney(l.Cash),
			cli.FormatMoney(l.Inventory),
			cli.FormatMoney(l.Receivables),
			cli.FormatMoney(l.TotalAssets),
			cli.FormatMoney(l.ExternalFinancing),
			cli.FormatMoney(l.Equity),
		})
	}

	var b strings.Builder
	b.WriteString(components.ContentCard("Income Statement",
		cardTable([]string{"Quarter", "Revenue", "COGS", "Gross Profit"}, income), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Balance Sheet",
		cardTable([]string{"Quarter", "Cash", "Inventory", "Receivables", "Assets", "Financing", "Equity"}, balance), cw))

	return b.String()
}
