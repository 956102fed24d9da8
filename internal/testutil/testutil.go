// Package testutil provides in-memory SQLite stores for package tests.
package testutil

import (
	"context"
	"testing"

	"resume-service/internal/database"
	"resume-service/migrations"
)

// OpenDB returns an empty in-memory SQLite store with foreign keys enforced.
// The pool is pinned to one connection because every :memory: connection is
// its own database.
func OpenDB(tb testing.TB) *database.DB {
	tb.Helper()
	db, err := database.Open(context.Background(), database.Options{
		Dialect:      database.SQLite,
		DSN:          "file::memory:?_foreign_keys=on",
		Retries:      1,
		MaxOpenConns: 1,
	})
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	tb.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// DB returns an in-memory store with the resume schema created.
func DB(tb testing.TB) *database.DB {
	tb.Helper()
	db := OpenDB(tb)
	if err := migrations.AutoMigrate(context.Background(), db); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	return db
}

// Str returns a pointer to s.
func Str(s string) *string { return &s }
