package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/marcelsud/booklend/library"
)

/*
PostgreSQL member store.

- seq keeps insertion order, so SelectAll returns members the way they were registered
- id is the member id chosen by the user, unique
- queries go through sqlx so rows scan straight into memberRow
*/

type Repository struct {
	DB *sqlx.DB
}

type memberRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// NewRepository opens a repository with the default pool (25, 5, 5 min)
func NewRepository(connectionString string) (*Repository, error) {
	return NewRepositoryWithPoolConfig(connectionString, 25, 5, 5)
}

// NewRepositoryWithPoolConfig opens a repository with a custom pool.
// maxOpenConns: 0 means unlimited
// maxLifeMinutes: how long a connection may be reused
func NewRepositoryWithPoolConfig(connectionString string, maxOpenConns, maxIdleConns, maxLifeMinutes int) (*Repository, error) {
	db, err := sqlx.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
	}
	if maxIdleConns > 0 {
		db.SetMaxIdleConns(maxIdleConns)
	}
	if maxLifeMinutes > 0 {
		db.SetConnMaxLifetime(time.Duration(maxLifeMinutes) * time.Minute)
	}

	return &Repository{
		DB: db,
	}, nil
}

// NewRepositoryFromDB wraps an already open connection (tests, shared pools)
func NewRepositoryFromDB(db *sql.DB) *Repository {
	return &Repository{DB: sqlx.NewDb(db, "postgres")}
}

// SelectAll returns every member in registration order
func (r *Repository) SelectAll(ctx context.Context) ([]library.Member, error) {
	var rows []memberRow
	if err := r.DB.SelectContext(ctx, &rows, "SELECT id, name FROM members ORDER BY seq"); err != nil {
		return nil, fmt.Errorf("selecting members: %w", err)
	}

	members := make([]library.Member, 0, len(rows))
	for _, row := range rows {
		members = append(members, library.NewMember(row.ID, row.Name))
	}
	return members, nil
}

// Insert appends a member
func (r *Repository) Insert(ctx context.Context, m library.Member) error {
	_, err := r.DB.ExecContext(ctx, "INSERT INTO members (id, name) VALUES ($1, $2)", m.ID, m.Name)
	if err != nil {
		return fmt.Errorf("inserting member: %w", err)
	}
	return nil
}

func (r *Repository) Close(ctx context.Context) error {
	if r.DB != nil {
		return r.DB.Close()
	}
	return nil
}

// CreateTable creates the members table if it is missing
func (r *Repository) CreateTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS members (
			seq BIGSERIAL PRIMARY KEY,
			id BIGINT NOT NULL UNIQUE,
			name TEXT NOT NULL
		)
	`

	if _, err := r.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("creating table: %w", err)
	}
	return nil
}

// DropTable removes the members table (tests)
func (r *Repository) DropTable(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, "DROP TABLE IF EXISTS members CASCADE"); err != nil {
		return fmt.Errorf("dropping table: %w", err)
	}
	return nil
}
