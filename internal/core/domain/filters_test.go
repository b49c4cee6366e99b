package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValidateRejectsEmptyQuery(t *testing.T) {
	require.ErrorIs(t, SearchFilters{}.Validate(), ErrEmptyQuery)
	require.ErrorIs(t, SearchFilters{Query: "   \t "}.Validate(), ErrEmptyQuery)
	require.NoError(t, SearchFilters{Query: "tokyo travel 2024"}.Validate())
}

func TestSortOrderAPIValue(t *testing.T) {
	require.Equal(t, "relevance", OrderRelevance.APIValue())
	require.Equal(t, "date", OrderRecency.APIValue())
	require.Equal(t, "viewCount", OrderViews.APIValue())
	require.Equal(t, "rating", OrderRating.APIValue())
}

func TestDurationBucketAPIValue(t *testing.T) {
	require.Equal(t, "any", DurationAny.APIValue())
	require.Equal(t, "short", DurationShort.APIValue())
	require.Equal(t, "medium", DurationMedium.APIValue())
	require.Equal(t, "long", DurationLong.APIValue())
}

func TestPublishedWithinLowerBound(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	require.True(t, WithinAny.LowerBound(now).IsZero())
	require.Equal(t, now.AddDate(0, 0, -1), WithinToday.LowerBound(now))
	require.Equal(t, now.AddDate(0, 0, -7), WithinWeek.LowerBound(now))
	require.Equal(t, now.AddDate(0, -1, 0), WithinMonth.LowerBound(now))
	require.Equal(t, now.AddDate(-1, 0, 0), WithinYear.LowerBound(now))
}

func TestParseSortOrder(t *testing.T) {
	for input, want := range map[string]SortOrder{
		"":          OrderRelevance,
		"relevance": OrderRelevance,
		"recency":   OrderRecency,
		"date":      OrderRecency,
		"views":     OrderViews,
		"viewCount": OrderViews,
		"RATING":    OrderRating,
	} {
		got, err := ParseSortOrder(input)
		require.NoError(t, err, "input %q", input)
		require.Equal(t, want, got, "input %q", input)
	}

	_, err := ParseSortOrder("alphabetical")
	require.Error(t, err)
}

func TestParseDurationBucket(t *testing.T) {
	got, err := ParseDurationBucket("long")
	require.NoError(t, err)
	require.Equal(t, DurationLong, got)

	_, err = ParseDurationBucket("endless")
	require.Error(t, err)
}

func TestParsePublishedWithin(t *testing.T) {
	got, err := ParsePublishedWithin("week")
	require.NoError(t, err)
	require.Equal(t, WithinWeek, got)

	_, err = ParsePublishedWithin("fortnight")
	require.Error(t, err)
}

func TestWatchURL(t *testing.T) {
	require.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", WatchURL("dQw4w9WgXcQ"))
}
