// Package cmd implements the qbudget CLI commands.
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/qbudget/qbudget/internal/cli"
	"github.com/qbudget/qbudget/internal/policy"

	"github.com/spf13/cobra"
)

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Show the current budgeting policy",
	RunE:  runPolicyShow,
}

var policySetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one policy value and save",
	Args:  cobra.ExactArgs(2),
	RunE:  runPolicySet,
}

var policyResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default policy",
	RunE:  runPolicyReset,
}

func init() {
	policyCmd.AddCommand(policySetCmd)
	policyCmd.AddCommand(policyResetCmd)
	rootCmd.AddCommand(policyCmd)
}

func runPolicyShow(_ *cobra.Command, _ []string) error {
	path := policyPath()
	p, err := policy.Load(path)
	if err != nil {
		return err
	}

	fmt.Printf("  Policy file: %s\n", path)
	if policy.Exists() || flagPolicyFile != "" {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no policy file)")
	}
	fmt.Println()

	fmt.Println("  [Collections]")
	fmt.Printf("    Collected in quarter of sale: %s\n", cli.FormatPercent(p.CollectCurrent))
	fmt.Printf("    Collected in next quarter:    %s\n", cli.FormatPercent(p.CollectNext))
	fmt.Println()

	fmt.Println("  [Payments]")
	fmt.Printf("    Paid in quarter of purchase: %s\n", cli.FormatPercent(p.PayCurrent))
	fmt.Printf("    Paid in next quarter:        %s\n", cli.FormatPercent(p.PayNext))
	fmt.Println()

	fmt.Println("  [Inventory and Cost]")
	fmt.Printf("    Desired ending inventory: %s of next quarter's sales\n", cli.FormatPercent(p.EndingInventoryPct))
	fmt.Printf("    Cost ratio:               %s of revenue\n", cli.FormatPercent(p.CostRatio))
	fmt.Println()

	fmt.Println("  [Financing]")
	fmt.Printf("    External financing ratio: %s of assets\n", cli.FormatPercent(p.ExternalFinancingRatio))
	fmt.Printf("    Working capital turnover: %s\n", cli.FormatRatio(p.WorkingCapitalTurnover))
	fmt.Printf("    Beginning cash:           %s\n", cli.FormatMoney(p.BeginningCash))
	fmt.Println()

	fmt.Println("  Run `qbudget policy set <key> <value>` to change a value.")
	fmt.Printf("  Keys: %s\n", strings.Join(policy.Keys(), ", "))
	return nil
}

func runPolicySet(_ *cobra.Command, args []string) error {
	key := args[0]
	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("value %q is not a number", args[1])
	}

	path := policyPath()
	p, err := policy.Load(path)
	if err != nil {
		return err
	}

	if !p.Set(key, value) {
		return fmt.Errorf("unknown policy key %q (known: %s)", key, strings.Join(policy.Keys(), ", "))
	}

	if err := policy.Save(p, path); err != nil {
		return err
	}
	fmt.Printf("  Set %s = %s in %s\n", key, cli.FormatRatio(value), path)
	return nil
}

func runPolicyReset(_ *cobra.Command, _ []string) error {
	path := policyPath()
	if err := policy.Save(policy.Default(), path); err != nil {
		return err
	}
	fmt.Printf("  Restored default policy in %s\n", path)
	return nil
}
