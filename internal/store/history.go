// Package store provides a SQLite-backed log of past budget runs.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/qbudget/qbudget/internal/engine"
	"github.com/qbudget/qbudget/internal/model"
	"github.com/qbudget/qbudget/internal/policy"
)

// History is the run log database.
type History struct {
	db *sql.DB
}

// Run is one recorded pipeline execution with its headline figures.
type Run struct {
	ID           int64
	RunAt        time.Time
	InputPath    string
	PeriodCount  int
	Policy       policy.Policy
	TotalRevenue float64
	GrossProfit  float64
	FinalCash    float64
	FinalAssets  float64
}

// DefaultPath returns the run log location under the user cache dir.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "qbudget", "history.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "qbudget", "history.db")
}

// Open opens or creates the history database at the given path.
func Open(dbPath string) (*History, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &History{db: db}, nil
}

// Close closes the history database.
func (h *History) Close() error {
	return h.db.Close()
}

// Record stores the headline figures of a completed pipeline run.
func (h *History) Record(res *engine.Result, inputPath string) error {
	policyJSON, err := policy.Marshal(res.Policy)
	if err != nil {
		return fmt.Errorf("encoding policy: %w", err)
	}

	totals := model.IncomeTotals(res.Income)
	finalCash := 0.0
	if n := len(res.CashBudget); n > 0 {
		finalCash = res.CashBudget[n-1].EndingCash
	}
	finalAssets := 0.0
	if n := len(res.Balance); n > 0 {
		finalAssets = res.Balance[n-1].TotalAssets
	}

	_, err = h.db.Exec(`INSERT INTO runs
		(run_at, input_path, period_count, policy_json,
		 total_revenue, gross_profit, final_cash, final_assets)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), inputPath, len(res.Periods), string(policyJSON),
		totals.TotalRevenue, totals.GrossProfit, finalCash, finalAssets,
	)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (h *History) Recent(limit int) ([]Run, error) {
	rows, err := h.db.Query(`SELECT id, run_at, input_path, period_count, policy_json,
		total_revenue, gross_profit, final_cash, final_assets
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var r Run
		var runAt, policyJSON string
		if err := rows.Scan(&r.ID, &runAt, &r.InputPath, &r.PeriodCount, &policyJSON,
			&r.TotalRevenue, &r.GrossProfit, &r.FinalCash, &r.FinalAssets); err != nil {
			return nil, err
		}
		r.RunAt, _ = time.Parse(time.RFC3339, runAt)
		if p, err := policy.Unmarshal([]byte(policyJSON)); err == nil {
			r.Policy = p
		} else {
			r.Policy = policy.Default()
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Count returns the number of recorded runs.
func (h *History) Count() (int, error) {
	var n int
	err := h.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n)
	return n, err
}
