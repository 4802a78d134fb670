package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"

	"TrendScout/internal/model"
)

// SQLiteRecorder persists evaluation history to a SQLite database.
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

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS evaluations (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			symbol          TEXT NOT NULL,
			current_price   REAL,
			price_at_open   REAL,
			previous_close  REAL,
			ma50            REAL,
			ma200           REAL,
			rsi             REAL,
			bollinger_upper REAL,
			bollinger_lower REAL,
			atr             REAL,
			volume_today    INTEGER,
			volume_yesterday INTEGER,
			market_cap      REAL,
			trend           TEXT,
			squeeze_label   TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_eval_ts ON evaluations(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_eval_symbol ON evaluations(symbol)`,

		`CREATE TABLE IF NOT EXISTS squeeze_events (
			id                 INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp          INTEGER NOT NULL,
			symbol             TEXT NOT NULL,
			label              TEXT,
			short_interest_pct REAL,
			ftd_pct_of_float   REAL,
			price_change_pct   REAL,
			volume_decreasing  INTEGER,
			within_bands       INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_squeeze_ts ON squeeze_events(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// nullable maps an unavailable value to SQL NULL.
func nullable(v model.Value) interface{} {
	if !v.Valid {
		return nil
	}
	return v.Float64
}

func (r *SQLiteRecorder) RecordEvaluation(eval *model.Evaluation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var volToday, volYesterday interface{}
	if v, ok := eval.VolumeToday(); ok {
		volToday = v
	}
	if v, ok := eval.VolumeYesterday(); ok {
		volYesterday = v
	}

	ind := eval.Indicators
	_, err := r.db.Exec(`INSERT INTO evaluations
		(timestamp, symbol, current_price, price_at_open, previous_close,
		 ma50, ma200, rsi, bollinger_upper, bollinger_lower, atr,
		 volume_today, volume_yesterday, market_cap, trend, squeeze_label)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		eval.EvaluatedAt.Unix(), eval.Symbol,
		nullable(ind.CurrentPrice), nullable(ind.PriceAtOpen), nullable(ind.PreviousClose),
		nullable(ind.MA50), nullable(ind.MA200), nullable(ind.RSI),
		nullable(ind.BollingerUpper), nullable(ind.BollingerLower), nullable(ind.ATR),
		volToday, volYesterday, eval.Stats.MarketCap,
		string(eval.Trend), string(eval.Squeeze.Label),
	)
	return err
}

func (r *SQLiteRecorder) RecordSqueezeEvent(eval *model.Evaluation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := eval.Squeeze.Criteria
	_, err := r.db.Exec(`INSERT INTO squeeze_events
		(timestamp, symbol, label, short_interest_pct, ftd_pct_of_float,
		 price_change_pct, volume_decreasing, within_bands)
		VALUES (?,?,?,?,?,?,?,?)`,
		eval.EvaluatedAt.Unix(), eval.Symbol, string(eval.Squeeze.Label),
		c.ShortInterestPct, c.FTDPctOfFloat, c.PriceChangePct,
		c.DailyVolumeDecreasing, c.PriceWithinBands,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
