package domain

import (
	"fmt"
	"time"
)

const watchURLFormat = "https://www.youtube.com/watch?v=%s"

// WatchURL synthesizes the canonical playback URL for a video identifier.
func WatchURL(id string) string {
	return fmt.Sprintf(watchURLFormat, id)
}

// ResultStub is the lightweight record produced by the search phase, before
// the detail phase enriches it.
type ResultStub struct {
	ID           string
	Title        string
	Description  string
	ThumbnailURL string
	ChannelTitle string
	PublishedAt  time.Time
}

// ItemStats carries the detail-phase fields. The upstream may omit a record
// for identifiers deleted or restricted between the two calls, so items hold
// it behind a pointer.
type ItemStats struct {
	ViewCount uint64
	LikeCount uint64
	Duration  time.Duration
}

// ResultItem is one catalog entry as shown to the user. Items are value-equal
// by identifier; the same ID may live independently in the result page and
// the curated list.
type ResultItem struct {
	ID           string
	Title        string
	Description  string
	ThumbnailURL string
	ChannelTitle string
	PublishedAt  time.Time
	Stats        *ItemStats
	URL          string
}

// StubPage is the raw output of the search phase: ordered stubs plus the
// continuation cursor ("" on the last page) and the upstream's approximate
// total count.
type StubPage struct {
	Stubs         []ResultStub
	NextCursor    string
	TotalEstimate int64
}

// ResultPage is the merged output of one fetch. Item order matches the search
// phase verbatim and is never re-sorted locally.
type ResultPage struct {
	Items         []ResultItem
	NextCursor    string
	TotalEstimate int64
}

// HasMore reports whether the upstream advertised a further page.
func (p ResultPage) HasMore() bool {
	return p.NextCursor != ""
}
