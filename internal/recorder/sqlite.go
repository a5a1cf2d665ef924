package recorder

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists run history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp        INTEGER NOT NULL,
			tickers          TEXT,
			start_date       TEXT,
			end_date         TEXT,
			risk_free_rate   REAL,
			sims_per_asset   INTEGER,
			seed             INTEGER,
			optimal_weights  TEXT,
			optimal_return   REAL,
			optimal_risk     REAL,
			optimal_sharpe   REAL,
			min_var_weights  TEXT,
			min_var_return   REAL,
			min_var_risk     REAL,
			min_var_sharpe   REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS run_assets (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id         INTEGER NOT NULL,
			ticker         TEXT NOT NULL,
			annual_return  REAL,
			annual_std_dev REAL,
			FOREIGN KEY(run_id) REFERENCES runs(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_run_assets_run ON run_assets(run_id)`,
	}

	for _, stmt := range stmts {
		if _, err := r.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// RecordRun inserts one run plus its per-asset statistics.
func (r *SQLiteRecorder) RecordRun(rec *RunRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	optimalWeights, err := json.Marshal(rec.Optimal.Weights)
	if err != nil {
		return fmt.Errorf("marshal optimal weights: %w", err)
	}
	minVarWeights, err := json.Marshal(rec.MinVariance.Weights)
	if err != nil {
		return fmt.Errorf("marshal min-variance weights: %w", err)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`INSERT INTO runs (
			timestamp, tickers, start_date, end_date, risk_free_rate,
			sims_per_asset, seed,
			optimal_weights, optimal_return, optimal_risk, optimal_sharpe,
			min_var_weights, min_var_return, min_var_risk, min_var_sharpe
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Timestamp.Unix(),
		strings.Join(rec.Tickers, ","),
		rec.StartDate,
		rec.EndDate,
		rec.RiskFreeRate,
		rec.SimulationsPerAsset,
		rec.Seed,
		string(optimalWeights),
		rec.Optimal.MeanReturn,
		rec.Optimal.Risk,
		rec.Optimal.Sharpe,
		string(minVarWeights),
		rec.MinVariance.MeanReturn,
		rec.MinVariance.Risk,
		rec.MinVariance.Sharpe,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}

	for _, asset := range rec.Assets {
		if _, err := tx.Exec(
			`INSERT INTO run_assets (run_id, ticker, annual_return, annual_std_dev) VALUES (?, ?, ?, ?)`,
			runID, asset.Ticker, asset.AnnualReturn, asset.AnnualStdDev,
		); err != nil {
			return fmt.Errorf("insert run asset %s: %w", asset.Ticker, err)
		}
	}

	return tx.Commit()
}

// Close closes the underlying database.
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
