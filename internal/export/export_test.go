package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/qbudget/qbudget/internal/engine"
	"github.com/qbudget/qbudget/internal/input"
	"github.com/qbudget/qbudget/internal/policy"
)

func demoResult(t *testing.T) *engine.Result {
	t.Helper()
	res, err := engine.Run(input.Sample(), policy.Default())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return res
}

func TestSheets_BuildsAllThreeReports(t *testing.T) {
	sheets := Sheets(demoResult(t))

	if len(sheets) != 3 {
		t.Fatalf("got %d sheets, want 3", len(sheets))
	}
	wantNames := []string{SheetCashBudget, SheetIncomeStatement, SheetBalanceSheet}
	for i, name := range wantNames {
		if sheets[i].Name != name {
			t.Fatalf("sheet[%d] = %q, want %q", i, sheets[i].Name, name)
		}
		if len(sheets[i].Rows) != 4 {
			t.Fatalf("sheet %q has %d rows, want 4", name, len(sheets[i].Rows))
		}
		if len(sheets[i].Rows[0]) != len(sheets[i].Headers) {
			t.Fatalf("sheet %q: row width does not match header width", name)
		}
	}
}

func TestSheets_OmitsEmptyTables(t *testing.T) {
	res, err := engine.Run(nil, policy.Default())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sheets := Sheets(res); len(sheets) != 0 {
		t.Fatalf("empty result must yield no sheets, got %d", len(sheets))
	}
}

func TestWriteWorkbook(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "outputs")

	path, err := WriteWorkbook(Sheets(demoResult(t)), dir)
	if err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}
	if !strings.HasSuffix(path, ".xlsx") {
		t.Fatalf("unexpected output path %q", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("workbook file is empty")
	}
}

func TestWriteWorkbook_NothingToExport(t *testing.T) {
	if _, err := WriteWorkbook(nil, t.TempDir()); err == nil {
		t.Fatal("expected error when no sheets are given")
	}
}

func TestWriteCSV(t *testing.T) {
	sheets := Sheets(demoResult(t))
	path := filepath.Join(t.TempDir(), "cash.csv")

	if err := WriteCSV(sheets[0], path); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want header + 4 rows", len(lines))
	}
	if lines[0] != "quarter,collections,disbursements,beginning_cash,ending_cash" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
}
