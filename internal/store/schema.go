package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    run_at           TEXT NOT NULL,
    input_path       TEXT,
    period_count     INTEGER NOT NULL,
    policy_json      TEXT NOT NULL,
    total_revenue    REAL NOT NULL,
    gross_profit     REAL NOT NULL,
    final_cash       REAL NOT NULL,
    final_assets     REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_at ON runs(run_at);
`
