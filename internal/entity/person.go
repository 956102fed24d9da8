package entity

// Person is the root of a resume. Text columns are pointers so that a field
// missing from a request body is written as NULL.
type Person struct {
	ID          int64   `json:"id"`
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	LinkedinURL *string `json:"linkedin_url"`
	GithubURL   *string `json:"github_url"`
	Summary     *string `json:"summary"`
}

/*
Postgres table:

CREATE TABLE person (
	id SERIAL PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	email VARCHAR(100) UNIQUE NOT NULL,
	phone VARCHAR(20),
	linkedin_url VARCHAR(255),
	github_url VARCHAR(255),
	summary TEXT
);
*/
