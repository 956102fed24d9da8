package database

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrConstraint matches every error rejected by a schema constraint: NOT NULL,
// UNIQUE or FOREIGN KEY.
var ErrConstraint = errors.New("constraint violation")

// ConstraintError keeps the driver message intact while matching ErrConstraint.
type ConstraintError struct {
	Err error
}

func (e *ConstraintError) Error() string { return e.Err.Error() }

func (e *ConstraintError) Unwrap() error { return e.Err }

func (e *ConstraintError) Is(target error) bool { return target == ErrConstraint }

// Classify tags driver constraint failures as *ConstraintError and returns
// every other error unchanged.
func Classify(err error) error {
	if err == nil || errors.Is(err, ErrConstraint) {
		return err
	}
	if IsConstraint(err) {
		return &ConstraintError{Err: err}
	}
	return err
}

// IsConstraint inspects the driver error types of every supported dialect.
func IsConstraint(err error) bool {
	if errors.Is(err, ErrConstraint) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// class 23: integrity_constraint_violation
		return len(pgErr.Code) == 5 && pgErr.Code[:2] == "23"
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1048, // column cannot be null
			1062, // duplicate entry
			1364, // field has no default value
			1451, // parent row still referenced
			1452: // referenced parent row missing
			return true
		}
		return false
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code == sqlite3.ErrConstraint
	}
	return false
}
