package usecases

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/eastsky4dk/youtubeQurator/internal/core/domain"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Error(string, error) {}
func (nopLogger) Warning(string) {}
func (nopLogger) Close() {}

// fakeCatalog scripts the two upstream calls and counts invocations.
type fakeCatalog struct {
	mu            sync.Mutex
	searchCalls   int
	detailCalls   int
	lastDetailIDs []string
	searchFn      func(filters domain.SearchFilters, cursor string) (domain.StubPage, error)
	detailFn      func(ids []string) (map[string]domain.ItemStats, error)
}

func (f *fakeCatalog) Search(_ context.Context, filters domain.SearchFilters, cursor string, _ int64) (domain.StubPage, error) {
	f.mu.Lock()
	f.searchCalls++
	f.mu.Unlock()
	return f.searchFn(filters, cursor)
}

func (f *fakeCatalog) Details(_ context.Context, ids []string) (map[string]domain.ItemStats, error) {
	f.mu.Lock()
	f.detailCalls++
	f.lastDetailIDs = ids
	f.mu.Unlock()
	if f.detailFn == nil {
		return map[string]domain.ItemStats{}, nil
	}
	return f.detailFn(ids)
}

func makeStubs(n int) []domain.ResultStub {
	stubs := make([]domain.ResultStub, n)
	for i := range stubs {
		stubs[i] = domain.ResultStub{
			ID:    fmt.Sprintf("vid%03d", i),
			Title: fmt.Sprintf("Video %d", i),
		}
	}
	return stubs
}

func fullDetails(stubs []domain.ResultStub) map[string]domain.ItemStats {
	details := make(map[string]domain.ItemStats, len(stubs))
	for i, stub := range stubs {
		details[stub.ID] = domain.ItemStats{ViewCount: uint64(i + 1)}
	}
	return details
}

func TestFetchPagePreservesSearchOrder(t *testing.T) {
	stubs := makeStubs(5)
	catalog := &fakeCatalog{
		searchFn: func(domain.SearchFilters, string) (domain.StubPage, error) {
			return domain.StubPage{Stubs: stubs, NextCursor: "tok"}, nil
		},
		detailFn: func([]string) (map[string]domain.ItemStats, error) {
			return fullDetails(stubs), nil
		},
	}
	agg := NewAggregator(catalog, nopLogger{})

	page, err := agg.FetchPage(context.Background(), domain.DefaultFilters("go"), "")
	require.NoError(t, err)
	require.Len(t, page.Items, 5)
	for i, item := range page.Items {
		require.Equal(t, stubs[i].ID, item.ID, "detail merge must not reorder")
		require.NotNil(t, item.Stats)
		require.Equal(t, domain.WatchURL(stubs[i].ID), item.URL)
	}
	require.Equal(t, "tok", page.NextCursor)
}

func TestFetchPageEmptyResultSkipsDetailPhase(t *testing.T) {
	catalog := &fakeCatalog{
		searchFn: func(domain.SearchFilters, string) (domain.StubPage, error) {
			return domain.StubPage{TotalEstimate: 0}, nil
		},
	}
	agg := NewAggregator(catalog, nopLogger{})

	page, err := agg.FetchPage(context.Background(), domain.DefaultFilters("obscure"), "")
	require.NoError(t, err)
	require.Empty(t, page.Items)
	require.Equal(t, 0, catalog.detailCalls, "the detail endpoint must not be called with no identifiers")
}

func TestFetchPageBatchesDetailCall(t *testing.T) {
	stubs := makeStubs(24)
	catalog := &fakeCatalog{
		searchFn: func(domain.SearchFilters, string) (domain.StubPage, error) {
			return domain.StubPage{Stubs: stubs}, nil
		},
		detailFn: func(ids []string) (map[string]domain.ItemStats, error) {
			return fullDetails(stubs), nil
		},
	}
	agg := NewAggregator(catalog, nopLogger{})

	_, err := agg.FetchPage(context.Background(), domain.DefaultFilters("go"), "")
	require.NoError(t, err)
	require.Equal(t, 1, catalog.detailCalls, "details are fetched in a single batched call")
	require.Len(t, catalog.lastDetailIDs, 24)
}

func TestFetchPageMissingDetailIsSoft(t *testing.T) {
	// A full page of 24 stubs with a cursor, but details for only 23 of them.
	stubs := makeStubs(24)
	details := fullDetails(stubs)
	delete(details, "vid007")

	catalog := &fakeCatalog{
		searchFn: func(domain.SearchFilters, string) (domain.StubPage, error) {
			return domain.StubPage{Stubs: stubs, NextCursor: "next", TotalEstimate: 4200}, nil
		},
		detailFn: func([]string) (map[string]domain.ItemStats, error) {
			return details, nil
		},
	}
	agg := NewAggregator(catalog, nopLogger{})

	page, err := agg.FetchPage(context.Background(), domain.DefaultFilters("tokyo travel 2024"), "")

	var partial *domain.PartialDataError
	require.ErrorAs(t, err, &partial)
	require.Equal(t, []string{"vid007"}, partial.Missing)

	require.Len(t, page.Items, 24)
	withStats := 0
	for _, item := range page.Items {
		if item.Stats != nil {
			withStats++
		} else {
			require.Equal(t, "vid007", item.ID)
		}
	}
	require.Equal(t, 23, withStats)
	require.Equal(t, "next", page.NextCursor)
}

func TestFetchPageDetailFailureDegradesEverything(t *testing.T) {
	stubs := makeStubs(3)
	catalog := &fakeCatalog{
		searchFn: func(domain.SearchFilters, string) (domain.StubPage, error) {
			return domain.StubPage{Stubs: stubs}, nil
		},
		detailFn: func([]string) (map[string]domain.ItemStats, error) {
			return nil, &domain.UpstreamError{Phase: "details", Err: errors.New("quota exceeded")}
		},
	}
	agg := NewAggregator(catalog, nopLogger{})

	page, err := agg.FetchPage(context.Background(), domain.DefaultFilters("go"), "")

	var partial *domain.PartialDataError
	require.ErrorAs(t, err, &partial)
	require.Len(t, partial.Missing, 3)
	require.Len(t, page.Items, 3)
	for _, item := range page.Items {
		require.Nil(t, item.Stats)
	}
}

func TestFetchPageSearchFailure(t *testing.T) {
	catalog := &fakeCatalog{
		searchFn: func(domain.SearchFilters, string) (domain.StubPage, error) {
			return domain.StubPage{}, &domain.UpstreamError{Phase: "search", Err: errors.New("boom")}
		},
	}
	agg := NewAggregator(catalog, nopLogger{})

	_, err := agg.FetchPage(context.Background(), domain.DefaultFilters("go"), "")

	var upstream *domain.UpstreamError
	require.ErrorAs(t, err, &upstream)
	require.Equal(t, "search", upstream.Phase)
	require.Equal(t, 0, catalog.detailCalls)
}

func TestFetchPageEmptyQueryIsPreNetwork(t *testing.T) {
	catalog := &fakeCatalog{
		searchFn: func(domain.SearchFilters, string) (domain.StubPage, error) {
			t.Fatal("search must not be called for an empty query")
			return domain.StubPage{}, nil
		},
	}
	agg := NewAggregator(catalog, nopLogger{})

	_, err := agg.FetchPage(context.Background(), domain.DefaultFilters("  "), "")
	require.ErrorIs(t, err, domain.ErrEmptyQuery)
	require.Equal(t, 0, catalog.searchCalls)
}

func TestFetchPageForwardsCursor(t *testing.T) {
	var gotCursor string
	catalog := &fakeCatalog{
		searchFn: func(_ domain.SearchFilters, cursor string) (domain.StubPage, error) {
			gotCursor = cursor
			return domain.StubPage{}, nil
		},
	}
	agg := NewAggregator(catalog, nopLogger{})

	_, err := agg.FetchPage(context.Background(), domain.DefaultFilters("go"), "opaque-token")
	require.NoError(t, err)
	require.Equal(t, "opaque-token", gotCursor, "the cursor is forwarded verbatim")
}
