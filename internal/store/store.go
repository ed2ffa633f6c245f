package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pbaille/blueprint/internal/domain"
	"github.com/pbaille/blueprint/internal/structures"
)

// ErrNotFound is returned when no row matches an id or prefix
var ErrNotFound = errors.New("not found")

// Writer inserts the two linked rows of a reading. Each insert assigns a
// fresh id and creation time and returns the id.
type Writer interface {
	InsertChart(ctx context.Context, chart *domain.Chart) (string, error)
	InsertInsights(ctx context.Context, insights *domain.Insights) (string, error)
}

// Reader loads stored readings
type Reader interface {
	GetChart(ctx context.Context, id string) (*domain.Chart, error)
	GetInsightsByChart(ctx context.Context, chartID string) (*domain.Insights, error)
	GetReading(ctx context.Context, chartID string) (*domain.Reading, error)
	FindChartID(ctx context.Context, prefix string) (string, error)
	ListCharts(ctx context.Context, limit, offset int) ([]domain.Chart, error)
	SearchCharts(ctx context.Context, query string) ([]domain.Chart, error)
	AllReadings(ctx context.Context) ([]domain.Reading, error)
}

// Store is a record store whose writes run inside a transaction
type Store interface {
	Reader
	RunInTx(ctx context.Context, fn func(w Writer) error) error
	Close() error
}

// Open picks the backend from the store config
func Open(conf *structures.Config) (Store, error) {
	switch conf.Store.Driver {
	case "sqlite3", "":
		if dir := filepath.Dir(conf.Store.DSN); dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("create db dir: %w", err)
			}
		}
		return NewSQLite(conf.Store.DSN)
	case "postgres":
		return NewPostgres(conf.Store.DSN)
	default:
		return nil, fmt.Errorf("unknown store driver %q", conf.Store.Driver)
	}
}
