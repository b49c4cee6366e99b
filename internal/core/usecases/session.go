package usecases

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/eastsky4dk/youtubeQurator/internal/core/domain"
	"github.com/eastsky4dk/youtubeQurator/internal/core/ports"
)

// Session owns the current query state: active filters, accumulated results
// and the continuation cursor. It exposes the two advance strategies and the
// filter-change rule, and guards against a late response from a superseded
// fetch with a generation counter: every fetch records the generation it was
// started under and its result is dropped if a newer fetch began meanwhile.
type Session struct {
	mu  sync.Mutex
	agg Aggregator
	log ports.LoggerPort

	filters     domain.SearchFilters
	items       []domain.ResultItem
	cursor      string
	total       int64
	hasSearched bool
	fetchErr    error
	degraded    bool
	scrollReset bool
	gen         uint64
}

// Snapshot is an alias-free copy of the session state for rendering.
type Snapshot struct {
	Filters       domain.SearchFilters
	Items         []domain.ResultItem
	HasMore       bool
	TotalEstimate int64
	HasSearched   bool
	FetchErr      error
	Degraded      bool
	ScrollReset   bool
}

func NewSession(agg Aggregator, logger ports.LoggerPort) *Session {
	return &Session{
		agg: agg,
		log: logger,
	}
}

// Search runs a fresh query. On success it fully replaces results, cursor and
// any previous fetch error; on failure the previously displayed results stay
// untouched and the error flag is set.
func (s *Session) Search(ctx context.Context, filters domain.SearchFilters) error {
	if err := filters.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	s.filters = filters
	s.hasSearched = true
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	s.log.Info(fmt.Sprintf("search: %q (order=%s duration=%s within=%s)",
		filters.Query, filters.Order, filters.Duration, filters.PublishedWithin))

	page, err := s.agg.FetchPage(ctx, filters, "")
	return s.apply(gen, page, err, func(p domain.ResultPage) {
		s.items = p.Items
		s.cursor = p.NextCursor
		s.total = p.TotalEstimate
		s.scrollReset = true
	})
}

// AdvanceAppend fetches the next page and concatenates it onto the current
// sequence. Duplicates across pages are possible upstream and are kept as-is;
// ordering is trusted to the upstream. Without a stored cursor this is a
// no-op, not an error.
func (s *Session) AdvanceAppend(ctx context.Context) error {
	filters, cursor, gen, ok := s.beginAdvance()
	if !ok {
		return nil
	}

	page, err := s.agg.FetchPage(ctx, filters, cursor)
	return s.apply(gen, page, err, func(p domain.ResultPage) {
		s.items = append(s.items, p.Items...)
		s.cursor = p.NextCursor
		s.total = p.TotalEstimate
		s.scrollReset = false
	})
}

// AdvanceReplace fetches the next page and replaces the entire visible
// sequence with it, signalling a scroll reset through the next Snapshot.
// Without a stored cursor this is a no-op, not an error.
func (s *Session) AdvanceReplace(ctx context.Context) error {
	filters, cursor, gen, ok := s.beginAdvance()
	if !ok {
		return nil
	}

	page, err := s.agg.FetchPage(ctx, filters, cursor)
	return s.apply(gen, page, err, func(p domain.ResultPage) {
		s.items = p.Items
		s.cursor = p.NextCursor
		s.total = p.TotalEstimate
		s.scrollReset = true
	})
}

// SetFilters installs new filter selections, keeping the query text already
// stored on the session. Before the first completed search it only records
// them; afterwards it triggers exactly one automatic re-search. Reports
// whether a fetch was triggered.
func (s *Session) SetFilters(ctx context.Context, filters domain.SearchFilters) (bool, error) {
	s.mu.Lock()
	filters.Query = s.filters.Query
	s.filters = filters
	searched := s.hasSearched
	s.mu.Unlock()

	if !searched {
		return false, nil
	}
	return true, s.Search(ctx, filters)
}

// Snapshot returns a copy of the current state. The returned slice is
// detached from the session.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.ResultItem, len(s.items))
	copy(items, s.items)

	return Snapshot{
		Filters:       s.filters,
		Items:         items,
		HasMore:       s.cursor != "",
		TotalEstimate: s.total,
		HasSearched:   s.hasSearched,
		FetchErr:      s.fetchErr,
		Degraded:      s.degraded,
		ScrollReset:   s.scrollReset,
	}
}

func (s *Session) beginAdvance() (domain.SearchFilters, string, uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor == "" {
		return domain.SearchFilters{}, "", 0, false
	}
	s.gen++
	return s.filters, s.cursor, s.gen, true
}

// apply commits a fetch outcome under the lock, unless a newer fetch started
// in the meantime (last request wins).
func (s *Session) apply(gen uint64, page domain.ResultPage, err error, commit func(domain.ResultPage)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		s.log.Warning("dropping result of superseded fetch")
		return nil
	}

	var partial *domain.PartialDataError
	if err != nil && !errors.As(err, &partial) {
		s.fetchErr = err
		return err
	}

	commit(page)
	s.fetchErr = nil
	s.degraded = partial != nil
	return nil
}
