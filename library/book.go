package library

import (
	"errors"
	"fmt"
	"strings"
)

/* Book is data: value semantics, no tags.
 * The catalog owns every Book; members only keep the ID.
 */
type Book struct {
	ID     int64
	Title  string
	Author string
	Stock  int
}

// IsAvailable reports whether at least one copy is on the shelf
func (b Book) IsAvailable() bool {
	return b.Stock > 0
}

// UpdateStock adds delta to the stock. Callers check availability before taking a copy.
func (b *Book) UpdateStock(delta int) {
	b.Stock += delta
}

// Validate checks the fields a catalog entry must satisfy
func (b Book) Validate() error {
	if b.ID < 0 {
		return fmt.Errorf("book id cannot be negative (got %d)", b.ID)
	}
	if strings.TrimSpace(b.Title) == "" {
		return errors.New("title cannot be empty")
	}
	if b.Stock < 0 {
		return fmt.Errorf("stock cannot be negative for %q (got %d)", b.Title, b.Stock)
	}
	return nil
}

func (b Book) String() string {
	return fmt.Sprintf("ID: %d, %s, %s, Stock: %d", b.ID, b.Title, b.Author, b.Stock)
}
