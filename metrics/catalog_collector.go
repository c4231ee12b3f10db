package metrics

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/marcelsud/booklend/library"
)

// ErrNoCatalog is returned by Collect before a catalog is attached
var ErrNoCatalog = errors.New("no catalog attached")

// CatalogCollector implements the Collector interface on top of the lending use case
type CatalogCollector struct {
	mu      sync.RWMutex
	catalog library.UseCase
	now     func() time.Time
}

func NewCatalogCollector(catalog library.UseCase) *CatalogCollector {
	return &CatalogCollector{
		catalog: catalog,
		now:     time.Now,
	}
}

// Attach sets the catalog to read from. Safe to call while gauges are being scraped.
func (c *CatalogCollector) Attach(catalog library.UseCase) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.catalog = catalog
}

// Collect snapshots the catalog counters
func (c *CatalogCollector) Collect(ctx context.Context) (Metrics, error) {
	c.mu.RLock()
	catalog := c.catalog
	c.mu.RUnlock()
	if catalog == nil {
		return Metrics{}, ErrNoCatalog
	}
	st := catalog.Stats(ctx)
	return Metrics{
		Books:       int64(st.Books),
		Stock:       int64(st.Stock),
		Members:     int64(st.Members),
		ActiveLoans: int64(st.Loans),
		Timestamp:   c.now(),
	}, nil
}
