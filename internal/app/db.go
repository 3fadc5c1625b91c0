package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/pool-league/internal/infrastructure/repository/sqlite"
)

const dbPingTimeout = 5 * time.Second

// openStore opens one SQLite file with query tracing and, when migrate is set,
// brings its schema up to date.
func openStore(path string, store sqlite.Store, busyTimeout time.Duration, migrate bool) (*sqlx.DB, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s db dir: %w", store, err)
		}
	}

	opts := dbTraceOptions(path)
	db, err := otelsqlx.Open("sqlite", SQLiteDSN(path, busyTimeout), opts...)
	if err != nil {
		return nil, fmt.Errorf("open %s db: %w", store, err)
	}
	otelsql.ReportDBStatsMetrics(db.DB, opts...)

	ctx, cancel := context.WithTimeout(context.Background(), dbPingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s db: %w", store, err)
	}

	if migrate {
		if err := sqlite.MigrateUp(db.DB, store); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return db, nil
}
