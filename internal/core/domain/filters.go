package domain

import (
	"fmt"
	"strings"
	"time"
)

type SortOrder int

const (
	OrderRelevance SortOrder = iota
	OrderRecency
	OrderViews
	OrderRating
)

func (o SortOrder) String() string {
	switch o {
	case OrderRecency:
		return "recency"
	case OrderViews:
		return "views"
	case OrderRating:
		return "rating"
	default:
		return "relevance"
	}
}

// APIValue maps the sort order onto the value the upstream search call expects.
func (o SortOrder) APIValue() string {
	switch o {
	case OrderRecency:
		return "date"
	case OrderViews:
		return "viewCount"
	case OrderRating:
		return "rating"
	default:
		return "relevance"
	}
}

type DurationBucket int

const (
	DurationAny DurationBucket = iota
	DurationShort
	DurationMedium
	DurationLong
)

func (d DurationBucket) String() string {
	switch d {
	case DurationShort:
		return "short"
	case DurationMedium:
		return "medium"
	case DurationLong:
		return "long"
	default:
		return "any"
	}
}

// APIValue happens to match String for every bucket.
func (d DurationBucket) APIValue() string {
	return d.String()
}

type PublishedWithin int

const (
	WithinAny PublishedWithin = iota
	WithinToday
	WithinWeek
	WithinMonth
	WithinYear
)

func (p PublishedWithin) String() string {
	switch p {
	case WithinToday:
		return "today"
	case WithinWeek:
		return "week"
	case WithinMonth:
		return "month"
	case WithinYear:
		return "year"
	default:
		return "any"
	}
}

// LowerBound derives the publish-time floor relative to now. The zero time
// means no bound.
func (p PublishedWithin) LowerBound(now time.Time) time.Time {
	switch p {
	case WithinToday:
		return now.AddDate(0, 0, -1)
	case WithinWeek:
		return now.AddDate(0, 0, -7)
	case WithinMonth:
		return now.AddDate(0, -1, 0)
	case WithinYear:
		return now.AddDate(-1, 0, 0)
	default:
		return time.Time{}
	}
}

// ParseSortOrder maps a user-facing name onto a sort order.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "relevance":
		return OrderRelevance, nil
	case "recency", "date":
		return OrderRecency, nil
	case "views", "viewcount":
		return OrderViews, nil
	case "rating":
		return OrderRating, nil
	}
	return OrderRelevance, fmt.Errorf("unknown sort order %q", s)
}

func ParseDurationBucket(s string) (DurationBucket, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return DurationAny, nil
	case "short":
		return DurationShort, nil
	case "medium":
		return DurationMedium, nil
	case "long":
		return DurationLong, nil
	}
	return DurationAny, fmt.Errorf("unknown duration bucket %q", s)
}

func ParsePublishedWithin(s string) (PublishedWithin, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return WithinAny, nil
	case "today":
		return WithinToday, nil
	case "week":
		return WithinWeek, nil
	case "month":
		return WithinMonth, nil
	case "year":
		return WithinYear, nil
	}
	return WithinAny, fmt.Errorf("unknown published window %q", s)
}

// SearchFilters is the value object describing one search invocation. It is
// immutable per fetch; the session copies it on every change.
type SearchFilters struct {
	Query           string
	Order           SortOrder
	Duration        DurationBucket
	PublishedWithin PublishedWithin
	Region          string
}

func DefaultFilters(query string) SearchFilters {
	return SearchFilters{Query: query}
}

// Validate rejects empty or whitespace-only queries before any network call.
func (f SearchFilters) Validate() error {
	if strings.TrimSpace(f.Query) == "" {
		return ErrEmptyQuery
	}
	return nil
}

func (f SearchFilters) WithQuery(query string) SearchFilters {
	f.Query = query
	return f
}
