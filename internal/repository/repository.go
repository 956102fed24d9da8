// Package repository holds the raw SQL for every resume table. Each exported
// method issues a single parameterized statement against the shared pool.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"resume-service/internal/database"
)

// ErrNotFound is returned when no row matches the requested id.
var ErrNotFound = errors.New("record not found")

type rowScanner interface {
	Scan(dest ...any) error
}

func getRow[T any](ctx context.Context, db *database.DB, query string, scan func(rowScanner) (*T, error), id int64) (*T, error) {
	row, err := scan(db.QueryRowContext(ctx, db.Rebind(query), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row, nil
}

func listRows[T any](ctx context.Context, db *database.DB, query string, scan func(rowScanner) (*T, error), args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, db.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// insertRow inserts one row and reads it back. MySQL has no RETURNING, so the
// row is fetched by its LastInsertId instead.
func insertRow[T any](ctx context.Context, db *database.DB, insert, columns, selectByID string, scan func(rowScanner) (*T, error), args ...any) (*T, error) {
	if db.Dialect.SupportsReturning() {
		row, err := scan(db.QueryRowContext(ctx, db.Rebind(insert+" RETURNING "+columns), args...))
		if err != nil {
			return nil, database.Classify(err)
		}
		return row, nil
	}

	res, err := db.ExecContext(ctx, db.Rebind(insert), args...)
	if err != nil {
		return nil, database.Classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return getRow(ctx, db, selectByID, scan, id)
}

// updateRow overwrites the listed columns of row id. The id is bound last.
func updateRow[T any](ctx context.Context, db *database.DB, update, columns, selectByID string, scan func(rowScanner) (*T, error), id int64, args ...any) (*T, error) {
	args = append(args, id)
	if db.Dialect.SupportsReturning() {
		row, err := scan(db.QueryRowContext(ctx, db.Rebind(update+" RETURNING "+columns), args...))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrNotFound
			}
			return nil, database.Classify(err)
		}
		return row, nil
	}

	if _, err := db.ExecContext(ctx, db.Rebind(update), args...); err != nil {
		return nil, database.Classify(err)
	}
	return getRow(ctx, db, selectByID, scan, id)
}

func deleteRow(ctx context.Context, db *database.DB, query string, id int64) error {
	res, err := db.ExecContext(ctx, db.Rebind(query), id)
	if err != nil {
		return database.Classify(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
