package metrics

import (
	"context"
	"time"
)

// Metrics represents the current state of the catalog.
type Metrics struct {
	// Books is the number of catalog entries
	Books int64 `json:"books"`

	// Stock is the sum of copies on the shelf across all entries
	Stock int64 `json:"stock"`

	// Members is the number of registered members
	Members int64 `json:"members"`

	// ActiveLoans is the number of copies currently held by members
	ActiveLoans int64 `json:"active_loans"`

	// Timestamp when metrics were collected
	Timestamp time.Time `json:"timestamp"`
}

// Collector defines the interface for collecting metrics from the catalog.
type Collector interface {
	// Collect gathers current metrics from the system
	Collect(ctx context.Context) (Metrics, error)
}
