package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/marcelsud/booklend/library"
	"github.com/rs/zerolog"
)

/*
Flat text member store.

One "<id>,<name>" record per line, append-only. Every call opens, uses and closes the
file on its own; nothing is held between calls, so only one process may write at a time.
*/

type Repository struct {
	path string
	log  zerolog.Logger
}

type Option func(*Repository)

func WithLogger(l zerolog.Logger) Option {
	return func(r *Repository) { r.log = l }
}

// NewRepository points the store at path, creating an empty file if none exists
func NewRepository(path string, opts ...Option) (*Repository, error) {
	r := &Repository{
		path: path,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("creating member store: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("closing member store: %w", err)
	}
	return r, nil
}

// SelectAll reads every record in file order, whatever its length. Malformed lines are skipped with a warning.
func (r *Repository) SelectAll(ctx context.Context) ([]library.Member, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("opening member store: %w", err)
	}
	defer f.Close()

	var members []library.Member
	reader := bufio.NewReader(f)
	lineNo := 0
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("reading member store: %w", readErr)
		}
		if line != "" {
			lineNo++
		}
		if strings.TrimSpace(line) != "" {
			m, err := library.ParseRecord(line)
			if err != nil {
				r.log.Warn().
					Err(err).
					Str("path", r.path).
					Int("line", lineNo).
					Msg("skipping malformed member record")
			} else {
				members = append(members, m)
			}
		}
		if readErr != nil {
			break
		}
	}
	return members, nil
}

// Insert appends one record and closes the file again.
// A last line left without its newline is terminated first.
func (r *Repository) Insert(ctx context.Context, m library.Member) error {
	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("opening member store: %w", err)
	}
	record := library.FormatRecord(m) + "\n"
	terminated, err := endsWithNewline(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("checking member store: %w", err)
	}
	if !terminated {
		record = "\n" + record
	}
	if _, err := f.WriteString(record); err != nil {
		f.Close()
		return fmt.Errorf("writing member record: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing member store: %w", err)
	}
	return nil
}

// endsWithNewline reports whether f is empty or its last byte is '\n'
func endsWithNewline(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return true, nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return false, err
	}
	return last[0] == '\n', nil
}

// Close is a no-op: no handle outlives a call
func (r *Repository) Close(ctx context.Context) error {
	return nil
}

// Path returns the file backing the store
func (r *Repository) Path() string {
	return r.path
}
