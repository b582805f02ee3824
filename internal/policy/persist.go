package policy

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/qbudget/qbudget/internal/model"
)

// The on-disk format is a flat key -> number JSON object so the file stays
// hand-editable. Saving then loading reproduces identical values.

func (p Policy) toMap() map[string]float64 {
	return map[string]float64{
		"sales_collection_current":  p.CollectCurrent,
		"sales_collection_next":     p.CollectNext,
		"purchases_payment_current": p.PayCurrent,
		"purchases_payment_next":    p.PayNext,
		"ending_inventory_pct":      p.EndingInventoryPct,
		"external_financing_ratio":  p.ExternalFinancingRatio,
		"working_capital_turnover":  p.WorkingCapitalTurnover,
		"beginning_cash":            p.BeginningCash,
		"cost_ratio":                p.CostRatio,
	}
}

// Set assigns the field named by its on-disk key. It reports whether the
// key is known; validation is the caller's job.
func (p *Policy) Set(key string, value float64) bool {
	return p.setField(key, value)
}

// Get returns the field named by its on-disk key.
func (p Policy) Get(key string) (float64, bool) {
	v, ok := p.toMap()[key]
	return v, ok
}

// Keys lists the recognized policy keys in file order.
func Keys() []string {
	return []string{
		"sales_collection_current",
		"sales_collection_next",
		"purchases_payment_current",
		"purchases_payment_next",
		"ending_inventory_pct",
		"external_financing_ratio",
		"working_capital_turnover",
		"beginning_cash",
		"cost_ratio",
	}
}

func (p *Policy) setField(key string, value float64) bool {
	switch key {
	case "sales_collection_current":
		p.CollectCurrent = value
	case "sales_collection_next":
		p.CollectNext = value
	case "purchases_payment_current":
		p.PayCurrent = value
	case "purchases_payment_next":
		p.PayNext = value
	case "ending_inventory_pct":
		p.EndingInventoryPct = value
	case "external_financing_ratio":
		p.ExternalFinancingRatio = value
	case "working_capital_turnover":
		p.WorkingCapitalTurnover = value
	case "beginning_cash":
		p.BeginningCash = value
	case "cost_ratio":
		p.CostRatio = value
	default:
		return false
	}
	return true
}

// Dir returns the XDG-compliant config directory for qbudget.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "qbudget")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "qbudget")
}

// Path returns the default policy file location.
func Path() string {
	return filepath.Join(Dir(), "policy.json")
}

// Load reads a policy file. A missing file yields the defaults. Keys absent
// from the file keep their default value; unknown keys are rejected so a
// typo never silently becomes a no-op.
func Load(path string) (Policy, error) {
	p := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, fmt.Errorf("reading policy file: %w", err)
	}

	var raw map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return p, fmt.Errorf("parsing policy file: %w", err)
	}

	for key, value := range raw {
		if !p.setField(key, value) {
			return Default(), &model.ValidationError{Field: key, Reason: "unknown policy key"}
		}
	}

	if err := p.Validate(); err != nil {
		return Default(), err
	}
	return p, nil
}

// Save writes the policy as flat JSON, creating the directory if needed.
func Save(p Policy, path string) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating policy dir: %w", err)
	}

	data, err := json.MarshalIndent(p.toMap(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding policy: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing policy file: %w", err)
	}
	return nil
}

// Marshal encodes a policy in the same flat JSON shape as the on-disk file.
func Marshal(p Policy) ([]byte, error) {
	return json.Marshal(p.toMap())
}

// Unmarshal decodes flat JSON produced by Marshal. Unlike Load it tolerates
// unknown keys, so records written by newer versions still decode.
func Unmarshal(data []byte) (Policy, error) {
	p := Default()
	var raw map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return p, fmt.Errorf("parsing policy: %w", err)
	}
	for key, value := range raw {
		p.setField(key, value)
	}
	return p, nil
}

// Exists reports whether a policy file is present at the default path.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
