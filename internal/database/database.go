package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// DB is the process-wide connection pool together with the dialect it speaks.
// It is opened once at startup and shared by every repository.
type DB struct {
	*sql.DB
	Dialect Dialect
}

type Options struct {
	Dialect      Dialect
	DSN          string
	Retries      int
	RetryDelay   time.Duration
	MaxOpenConns int
}

// Open connects to the store, pinging until it answers or the retries run out.
func Open(ctx context.Context, opts Options) (*DB, error) {
	if opts.Retries < 1 {
		opts.Retries = 1
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 3 * time.Second
	}

	var err error
	for i := 0; i < opts.Retries; i++ {
		var db *sql.DB
		db, err = sql.Open(opts.Dialect.DriverName(), opts.DSN)
		if err == nil {
			err = db.PingContext(ctx)
			if err == nil {
				if opts.MaxOpenConns > 0 {
					db.SetMaxOpenConns(opts.MaxOpenConns)
				}
				log.Info().Str("driver", string(opts.Dialect)).Msg("connected to database")
				return &DB{DB: db, Dialect: opts.Dialect}, nil
			}
			db.Close()
		}
		log.Warn().Err(err).Msgf("retry %d: failed to connect to database", i+1)
		if i == opts.Retries-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(opts.RetryDelay):
		}
	}
	return nil, fmt.Errorf("failed to connect to %s database after %d attempts: %w", opts.Dialect, opts.Retries, err)
}

// Rebind rewrites ? placeholders for the underlying dialect.
func (db *DB) Rebind(query string) string {
	return db.Dialect.Rebind(query)
}
