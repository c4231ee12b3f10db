package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/glebarez/go-sqlite" // pure Go SQLite driver, registers "sqlite"
	"github.com/marcelsud/booklend/library"
)

type Repository struct {
	DB *sql.DB
}

// NewRepository opens (or creates) the database file at path and makes sure the table exists
func NewRepository(ctx context.Context, path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	// one writer at a time
	db.SetMaxOpenConns(1)
	r := &Repository{DB: db}
	if err := r.CreateTable(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *Repository) SelectAll(ctx context.Context) ([]library.Member, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id, name FROM members ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("selecting members: %w", err)
	}
	defer rows.Close()

	var members []library.Member
	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scanning member: %w", err)
		}
		members = append(members, library.NewMember(id, name))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating members: %w", err)
	}
	return members, nil
}

func (r *Repository) Insert(ctx context.Context, m library.Member) error {
	stmt, err := r.DB.PrepareContext(ctx, `
		insert into members (id, name)
		values(?,?)`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	_, err = stmt.ExecContext(ctx, m.ID, m.Name)
	if err != nil {
		stmt.Close()
		return fmt.Errorf("executing statement: %w", err)
	}
	if err := stmt.Close(); err != nil {
		return fmt.Errorf("closing statement: %w", err)
	}
	return nil
}

func (r *Repository) CreateTable(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS members (
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  id INTEGER NOT NULL UNIQUE,
  name TEXT NOT NULL
);`
	if _, err := r.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("creating table: %w", err)
	}
	return nil
}

func (r *Repository) Close(ctx context.Context) error {
	if err := r.DB.Close(); err != nil {
		return fmt.Errorf("closing repository: %w", err)
	}
	return nil
}
