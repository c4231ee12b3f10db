package library

import (
	"bytes"
	"context"
	"fmt"
)

/* Kind classifies the result of a lending operation.
 * Declines are values, not errors: the caller always gets a message to show.
 */
type Kind int

const (
	Succeeded Kind = iota + 1
	Unavailable
	NotBorrowed
	InvalidID
	DuplicateID
	InvalidInput
	NoBooks
	NoMatches
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case Succeeded:
		return "succeeded"
	case Unavailable:
		return "unavailable"
	case NotBorrowed:
		return "not_borrowed"
	case InvalidID:
		return "invalid_id"
	case DuplicateID:
		return "duplicate_id"
	case InvalidInput:
		return "invalid_input"
	case NoBooks:
		return "no_books"
	case NoMatches:
		return "no_matches"
	}
	return "unknown"
}

// Validate checks if the kind is one of the known values
func (k Kind) Validate() error {
	if k < Succeeded || k > NoMatches {
		return fmt.Errorf("invalid outcome kind: %d", k)
	}
	return nil
}

func (k Kind) MarshalJSON() ([]byte, error) {
	buffer := bytes.NewBufferString(`"`)
	buffer.WriteString(k.String())
	buffer.WriteString(`"`)
	return buffer.Bytes(), nil
}

// Outcome is what every lending operation hands back to the shell
type Outcome struct {
	Kind    Kind
	Message string
	// BookID is set when a book was created
	BookID int64
}

// OK reports whether the operation went through
func (o Outcome) OK() bool {
	return o.Kind == Succeeded
}

func (o Outcome) String() string {
	return o.Message
}

func succeeded(format string, args ...any) Outcome {
	return Outcome{Kind: Succeeded, Message: fmt.Sprintf(format, args...)}
}

func declined(kind Kind, format string, args ...any) Outcome {
	return Outcome{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Listing is a snapshot of catalog entries plus the outcome of producing it.
// An empty listing carries NoBooks or NoMatches instead of an empty render.
type Listing struct {
	Outcome
	Books []Book
}

// OutcomeRecorder receives every outcome the service produces, keyed by operation name
type OutcomeRecorder interface {
	RecordOutcome(ctx context.Context, operation string, outcome Outcome)
}
