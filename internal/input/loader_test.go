package input

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/qbudget/qbudget/internal/model"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeCSV(t, "quarter,sales_units,unit_price\nQ1,10000,20\nQ2,12000,20\n")

	periods, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(periods) != 2 {
		t.Fatalf("got %d periods, want 2", len(periods))
	}
	if periods[0].Label != "Q1" || periods[0].SalesUnits != 10000 || periods[0].UnitPrice != 20 {
		t.Fatalf("unexpected first period: %+v", periods[0])
	}
	if periods[1].Label != "Q2" {
		t.Fatal("row order must be preserved")
	}
}

func TestLoad_MissingColumnNamed(t *testing.T) {
	path := writeCSV(t, "quarter,sales_units\nQ1,10000\n")

	_, err := Load(path)
	var ve *model.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if !strings.Contains(ve.Field, "unit_price") {
		t.Fatalf("error must name the missing column, got %q", ve.Field)
	}
}

func TestLoad_RejectsNonPositiveValues(t *testing.T) {
	cases := []struct {
		name string
		csv  string
		want string
	}{
		{"zero units", "quarter,sales_units,unit_price\nQ1,0,20\n", "sales_units"},
		{"negative price", "quarter,sales_units,unit_price\nQ1,100,-5\n", "unit_price"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeCSV(t, tc.csv))
			var ve *model.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("err = %v, want *ValidationError", err)
			}
			if ve.Field != tc.want {
				t.Fatalf("field = %q, want %q", ve.Field, tc.want)
			}
		})
	}
}

func TestLoad_RejectsNonNumericValues(t *testing.T) {
	path := writeCSV(t, "quarter,sales_units,unit_price\nQ1,lots,20\n")

	_, err := Load(path)
	var ve *model.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if ve.Field != "sales_units" {
		t.Fatalf("field = %q, want sales_units", ve.Field)
	}
}

func TestWriteSample_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.csv")
	if err := WriteSample(path); err != nil {
		t.Fatalf("WriteSample: %v", err)
	}

	periods, err := Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	want := Sample()
	if len(periods) != len(want) {
		t.Fatalf("got %d periods, want %d", len(periods), len(want))
	}
	for i := range want {
		if periods[i] != want[i] {
			t.Fatalf("period %d: got %+v, want %+v", i, periods[i], want[i])
		}
	}
}
