package policy

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/qbudget/qbudget/internal/model"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default policy failed validation: %v", err)
	}
}

func TestValidate_NamesTheField(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Policy)
		field  string
	}{
		{"ratio above one", func(p *Policy) { p.CollectCurrent = 1.2 }, "sales_collection_current"},
		{"negative ratio", func(p *Policy) { p.PayNext = -0.1 }, "purchases_payment_next"},
		{"inventory pct", func(p *Policy) { p.EndingInventoryPct = 2 }, "ending_inventory_pct"},
		{"negative turnover", func(p *Policy) { p.WorkingCapitalTurnover = -1 }, "working_capital_turnover"},
		{"zero cost ratio", func(p *Policy) { p.CostRatio = 0 }, "cost_ratio"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Default()
			tc.mutate(&p)

			err := p.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			var ve *model.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error type = %T, want *ValidationError", err)
			}
			if ve.Field != tc.field {
				t.Fatalf("field = %q, want %q", ve.Field, tc.field)
			}
		})
	}
}

func TestValidate_NegativeBeginningCashAllowed(t *testing.T) {
	p := Default()
	p.BeginningCash = -5000
	if err := p.Validate(); err != nil {
		t.Fatalf("negative beginning cash must be allowed: %v", err)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.json")

	p := Default()
	p.CollectCurrent = 0.7
	p.CollectNext = 0.3
	p.BeginningCash = -2500
	p.WorkingCapitalTurnover = 0

	if err := Save(p, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded != p {
		t.Fatalf("round trip changed values:\n got %+v\nwant %+v", loaded, p)
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if p != Default() {
		t.Fatalf("got %+v, want defaults", p)
	}
}

func TestLoad_MissingKeysFallBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.json")
	partial := []byte(`{"sales_collection_current": 0.8}`)
	if err := os.WriteFile(path, partial, 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.CollectCurrent != 0.8 {
		t.Fatalf("sales_collection_current = %.2f, want 0.8", p.CollectCurrent)
	}
	if p.PayCurrent != Default().PayCurrent {
		t.Fatalf("purchases_payment_current = %.2f, want default %.2f", p.PayCurrent, Default().PayCurrent)
	}
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.json")
	bogus := []byte(`{"sales_colection_current": 0.8}`)
	if err := os.WriteFile(path, bogus, 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, err := Load(path)
	var ve *model.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want *ValidationError naming the unknown key", err)
	}
	if ve.Field != "sales_colection_current" {
		t.Fatalf("field = %q, want the misspelled key", ve.Field)
	}
}

func TestLoad_RejectsOutOfRangeValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.json")
	bad := []byte(`{"external_financing_ratio": 3.5}`)
	if err := os.WriteFile(path, bad, 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for ratio above 1")
	}
}
