package tui

import (
	"fmt"
	"strings"

	"github.com/qbudget/qbudget/internal/cli"
	"github.com/qbudget/qbudget/internal/tui/components"
	"github.com/qbudget/qbudget/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderSchedulesTab(cw int) string {
	t := theme.Active
	res := a.res

	if len(res.Periods) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).
			Render("  No quarters found in the input file.")
	}

	collections := make([][]string, 0, len(res.Collections))
	for _, c := range res.Collections {
		collections = append(collections, []string{
			c.Label,
			cli.FormatMoney(c.SalesRevenue),
			cli.FormatMoney(c.Collections),
		})
	}

	purchases := make([][]string, 0, len(res.Purchases))
	for _, p := range res.Purchases {
		purchases = append(purchases, []string{
			p.Label,
			cli.FormatUnits(p.SalesUnits),
			cli.FormatUnits(p.BeginningInventory),
			cli.FormatUnits(p.DesiredEndingInventory),
			cli.FormatUnits(p.PurchasesUnits),
			cli.FormatMoney(p.PurchasesCost),
		})
	}

	cash := make([][]string, 0, len(res.CashBudget))
	for _, c := range res.CashBudget {
		cash = append(cash, []string{
			c.Label,
			cli.FormatMoney(c.BeginningCash),
			cli.FormatMoney(c.Collections),
			cli.FormatMoney(c.Disbursements),
			cli.FormatMoney(c.EndingCash),
		})
	}

	var b strings.Builder
	b.WriteString(components.ContentCard("Sales and Collections",
		cardTable([]string{"Quarter", "Revenue", "Collections"}, collections), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Purchases and Inventory",
		cardTable([]string{"Quarter", "Sales", "Begin Inv", "End Inv", "Purchases", "Cost"}, purchases), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Cash Budget",
		cardTable([]string{"Quarter", "Beginning", "Collections", "Disbursed", "Ending"}, cash), cw))

	return b.String()
}

// cardTable lays out aligned columns for use inside a ContentCard. The first
// column is left-aligned, the rest right-aligned.
func cardTable(headers []string, rows [][]string) string {
	t := theme.Active

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	cellStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	var b strings.Builder
	for i, h := range headers {
		if i > 0 {
			b.WriteString(headerStyle.Render("  "))
		}
		if i == 0 {
			b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s", widths[i], h)))
		} else {
			b.WriteString(headerStyle.Render(fmt.Sprintf("%*s", widths[i], h)))
		}
	}
	for _, row := range rows {
		b.WriteString("\n")
		for i, cell := range row {
			if i > 0 {
				b.WriteString(cellStyle.Render("  "))
			}
			if i == 0 {
				b.WriteString(cellStyle.Render(fmt.Sprintf("%-*s", widths[i], cell)))
			} else {
				b.WriteString(cellStyle.Render(fmt.Sprintf("%*s", widths[i], cell)))
			}
		}
	}
	return b.String()
}
