package migrations

import (
	"context"
	"fmt"

	"resume-service/internal/database"
)

// Tables in creation order; children reference person.
var Tables = []string{"person", "experience", "education", "skill"}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS person (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(100) UNIQUE NOT NULL,
		phone VARCHAR(20),
		linkedin_url VARCHAR(255),
		github_url VARCHAR(255),
		summary TEXT
	);`,
	`CREATE TABLE IF NOT EXISTS experience (
		id SERIAL PRIMARY KEY,
		person_id INTEGER NOT NULL REFERENCES person(id) ON DELETE CASCADE,
		job_title VARCHAR(100) NOT NULL,
		company VARCHAR(100) NOT NULL,
		start_date DATE,
		end_date DATE,
		description TEXT
	);`,
	`CREATE TABLE IF NOT EXISTS education (
		id SERIAL PRIMARY KEY,
		person_id INTEGER NOT NULL REFERENCES person(id) ON DELETE CASCADE,
		institution VARCHAR(100) NOT NULL,
		degree VARCHAR(100) NOT NULL,
		field_of_study VARCHAR(100),
		start_date DATE,
		end_date DATE
	);`,
	`CREATE TABLE IF NOT EXISTS skill (
		id SERIAL PRIMARY KEY,
		person_id INTEGER NOT NULL REFERENCES person(id) ON DELETE CASCADE,
		skill_name VARCHAR(50) NOT NULL,
		level VARCHAR(20)
	);`,
}

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS person (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(100) NOT NULL UNIQUE,
		phone VARCHAR(20),
		linkedin_url VARCHAR(255),
		github_url VARCHAR(255),
		summary TEXT
	) ENGINE=InnoDB;`,
	`CREATE TABLE IF NOT EXISTS experience (
		id INT AUTO_INCREMENT PRIMARY KEY,
		person_id INT NOT NULL,
		job_title VARCHAR(100) NOT NULL,
		company VARCHAR(100) NOT NULL,
		start_date DATE,
		end_date DATE,
		description TEXT,
		FOREIGN KEY (person_id) REFERENCES person(id) ON DELETE CASCADE
	) ENGINE=InnoDB;`,
	`CREATE TABLE IF NOT EXISTS education (
		id INT AUTO_INCREMENT PRIMARY KEY,
		person_id INT NOT NULL,
		institution VARCHAR(100) NOT NULL,
		degree VARCHAR(100) NOT NULL,
		field_of_study VARCHAR(100),
		start_date DATE,
		end_date DATE,
		FOREIGN KEY (person_id) REFERENCES person(id) ON DELETE CASCADE
	) ENGINE=InnoDB;`,
	`CREATE TABLE IF NOT EXISTS skill (
		id INT AUTO_INCREMENT PRIMARY KEY,
		person_id INT NOT NULL,
		skill_name VARCHAR(50) NOT NULL,
		level VARCHAR(20),
		FOREIGN KEY (person_id) REFERENCES person(id) ON DELETE CASCADE
	) ENGINE=InnoDB;`,
}

// SQLite needs foreign_keys enabled on the connection (the _foreign_keys DSN
// flag) for the cascades to fire. AUTOINCREMENT keeps ids from being reused.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS person (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(100) NOT NULL UNIQUE,
		phone VARCHAR(20),
		linkedin_url VARCHAR(255),
		github_url VARCHAR(255),
		summary TEXT
	);`,
	`CREATE TABLE IF NOT EXISTS experience (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		person_id INTEGER NOT NULL REFERENCES person(id) ON DELETE CASCADE,
		job_title VARCHAR(100) NOT NULL,
		company VARCHAR(100) NOT NULL,
		start_date DATE,
		end_date DATE,
		description TEXT
	);`,
	`CREATE TABLE IF NOT EXISTS education (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		person_id INTEGER NOT NULL REFERENCES person(id) ON DELETE CASCADE,
		institution VARCHAR(100) NOT NULL,
		degree VARCHAR(100) NOT NULL,
		field_of_study VARCHAR(100),
		start_date DATE,
		end_date DATE
	);`,
	`CREATE TABLE IF NOT EXISTS skill (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		person_id INTEGER NOT NULL REFERENCES person(id) ON DELETE CASCADE,
		skill_name VARCHAR(50) NOT NULL,
		level VARCHAR(20)
	);`,
}

// Schema returns the CREATE statements for a dialect, parents first.
func Schema(dialect database.Dialect) ([]string, error) {
	switch dialect {
	case database.Postgres:
		return postgresSchema, nil
	case database.MySQL:
		return mysqlSchema, nil
	case database.SQLite:
		return sqliteSchema, nil
	}
	return nil, fmt.Errorf("no schema for dialect %q", dialect)
}

// AutoMigrate creates the resume tables if they do not exist. Running it
// against an initialized store is a no-op.
func AutoMigrate(ctx context.Context, db *database.DB) error {
	queries, err := Schema(db.Dialect)
	if err != nil {
		return err
	}
	for i, query := range queries {
		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create table %s: %w", Tables[i], err)
		}
	}
	return nil
}
