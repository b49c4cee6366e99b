package usecases

import (
	"context"
	"fmt"

	"github.com/eastsky4dk/youtubeQurator/internal/core/domain"
	"github.com/eastsky4dk/youtubeQurator/internal/core/ports"
)

// PageSize is the fixed number of results requested per fetch.
const PageSize = 24

type aggregatorUseCase struct {
	catalog ports.CatalogPort
	log     ports.LoggerPort
}

// Aggregator performs the two-phase fetch: the search call, then one batched
// detail call keyed by the identifiers the search returned, merged into a
// single page.
type Aggregator interface {
	FetchPage(ctx context.Context, filters domain.SearchFilters, cursor string) (domain.ResultPage, error)
}

func NewAggregator(catalog ports.CatalogPort, logger ports.LoggerPort) Aggregator {
	return &aggregatorUseCase{
		catalog: catalog,
		log:     logger,
	}
}

// FetchPage fails with *domain.UpstreamError when the search phase fails. A
// failed or incomplete detail phase degrades instead: the returned page is
// fully usable and the error is a *domain.PartialDataError the caller may
// surface as a warning.
func (uc *aggregatorUseCase) FetchPage(ctx context.Context, filters domain.SearchFilters, cursor string) (domain.ResultPage, error) {
	if err := filters.Validate(); err != nil {
		return domain.ResultPage{}, err
	}

	stubPage, err := uc.catalog.Search(ctx, filters, cursor, PageSize)
	if err != nil {
		uc.log.Error("search phase failed", err)
		return domain.ResultPage{}, err
	}

	page := domain.ResultPage{
		NextCursor:    stubPage.NextCursor,
		TotalEstimate: stubPage.TotalEstimate,
	}

	// An empty stub list ends the fetch here: the detail endpoint must not be
	// called with an empty identifier set.
	if len(stubPage.Stubs) == 0 {
		uc.log.Info("search returned no results")
		return page, nil
	}

	ids := make([]string, len(stubPage.Stubs))
	for i, stub := range stubPage.Stubs {
		ids[i] = stub.ID
	}

	details, err := uc.catalog.Details(ctx, ids)
	if err != nil {
		// Detail failure is non-fatal: every item ships without stats.
		uc.log.Warning(fmt.Sprintf("detail phase failed, returning degraded page: %v", err))
		details = nil
	}

	page.Items = mergeDetails(stubPage.Stubs, details)

	var missing []string
	for _, item := range page.Items {
		if item.Stats == nil {
			missing = append(missing, item.ID)
		}
	}
	if len(missing) > 0 {
		uc.log.Warning(fmt.Sprintf("%d of %d items returned without details", len(missing), len(page.Items)))
		return page, &domain.PartialDataError{Missing: missing}
	}

	return page, nil
}

// mergeDetails enriches the stubs with their detail records in the exact stub
// order. Identifiers absent from details yield nil stats, not an error.
func mergeDetails(stubs []domain.ResultStub, details map[string]domain.ItemStats) []domain.ResultItem {
	items := make([]domain.ResultItem, len(stubs))
	for i, stub := range stubs {
		item := domain.ResultItem{
			ID:           stub.ID,
			Title:        stub.Title,
			Description:  stub.Description,
			ThumbnailURL: stub.ThumbnailURL,
			ChannelTitle: stub.ChannelTitle,
			PublishedAt:  stub.PublishedAt,
			URL:          domain.WatchURL(stub.ID),
		}
		if stats, ok := details[stub.ID]; ok {
			s := stats
			item.Stats = &s
		}
		items[i] = item
	}
	return items
}
