package seed

import (
	"fmt"
	"os"

	"github.com/marcelsud/booklend/library"
	"gopkg.in/yaml.v3"
)

/* Loader reads the starting catalog from a YAML file.
 * The catalog constructor takes the result explicitly; nothing here is a hidden default.
 */

// Config represents the structure of the seed file
type Config struct {
	Books []BookConfig `yaml:"books"`
}

// BookConfig is one catalog entry. ID may be omitted: it is then max+1 in file order.
type BookConfig struct {
	ID     int64  `yaml:"id"`
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Stock  int    `yaml:"stock"`
}

type Loader struct {
	books []library.Book
}

func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and validates the seed file, replacing anything loaded before
func (l *Loader) Load(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading seed file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("parsing seed YAML: %w", err)
	}

	var highest int64
	for _, bc := range config.Books {
		highest = max(highest, bc.ID)
	}

	books := make([]library.Book, 0, len(config.Books))
	seen := make(map[int64]bool, len(config.Books))
	for i, bc := range config.Books {
		id := bc.ID
		if id == 0 {
			highest++
			id = highest
		}
		b := library.Book{
			ID:     id,
			Title:  bc.Title,
			Author: bc.Author,
			Stock:  bc.Stock,
		}
		if err := b.Validate(); err != nil {
			return fmt.Errorf("validating book #%d: %w", i+1, err)
		}
		if seen[b.ID] {
			return fmt.Errorf("validating book #%d: duplicate id %d", i+1, b.ID)
		}
		seen[b.ID] = true
		books = append(books, b)
	}

	l.books = books
	return nil
}

// Books returns a copy of the loaded catalog in file order
func (l *Loader) Books() []library.Book {
	return append([]library.Book(nil), l.books...)
}

// Books loads path, or returns the default seed when path is empty
func Books(path string) ([]library.Book, error) {
	if path == "" {
		return library.DefaultSeed(), nil
	}
	l := NewLoader()
	if err := l.Load(path); err != nil {
		return nil, err
	}
	return l.Books(), nil
}
