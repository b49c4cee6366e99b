package ports

import (
	"context"

	"github.com/eastsky4dk/youtubeQurator/internal/core/domain"
)

// CatalogPort is the upstream video catalog contract: a search call returning
// ordered stubs plus a forward-only cursor, and a single batched detail call
// keyed by the identifiers the search returned.
type CatalogPort interface {
	Search(ctx context.Context, filters domain.SearchFilters, cursor string, pageSize int64) (domain.StubPage, error)
	Details(ctx context.Context, ids []string) (map[string]domain.ItemStats, error)
}
