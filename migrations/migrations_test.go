package migrations_test

import (
	"context"
	"testing"

	"resume-service/internal/database"
	"resume-service/internal/testutil"
	"resume-service/migrations"
)

func TestAutoMigrateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := testutil.OpenDB(t)

	for i := 0; i < 2; i++ {
		if err := migrations.AutoMigrate(ctx, db); err != nil {
			t.Fatalf("run %d: %v", i+1, err)
		}
	}

	for _, table := range migrations.Tables {
		var name string
		err := db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		if err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}
}

func TestAutoMigrateKeepsRows(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)

	if _, err := db.ExecContext(ctx, "INSERT INTO person (name, email) VALUES (?, ?)", "Ada", "ada@example.com"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := migrations.AutoMigrate(ctx, db); err != nil {
		t.Fatalf("migrate again: %v", err)
	}
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM person").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("rows lost: got=%d want=1", count)
	}
}

func TestSchemaPerDialect(t *testing.T) {
	for _, d := range []database.Dialect{database.Postgres, database.MySQL, database.SQLite} {
		queries, err := migrations.Schema(d)
		if err != nil {
			t.Fatalf("%s: %v", d, err)
		}
		if len(queries) != len(migrations.Tables) {
			t.Fatalf("%s: got=%d statements want=%d", d, len(queries), len(migrations.Tables))
		}
	}
	if _, err := migrations.Schema(database.Dialect("oracle")); err == nil {
		t.Fatalf("expected error for unknown dialect")
	}
}
