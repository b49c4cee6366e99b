package provider

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/eastsky4dk/youtubeQurator/infrastructure/credentials"
	"github.com/eastsky4dk/youtubeQurator/internal/core/domain"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/youtube/v3"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Error(string, error) {}
func (nopLogger) Warning(string) {}
func (nopLogger) Close() {}

func TestSearchWithoutCredentialIsPreNetwork(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")
	dir := t.TempDir()
	store := credentials.NewCredentialStore(
		filepath.Join(dir, "api_key.json"), filepath.Join(dir, "token.json"))
	catalog := NewYoutubeProvider(store, nil, nopLogger{})

	_, err := catalog.Search(context.Background(), domain.DefaultFilters("go"), "", 24)
	require.ErrorIs(t, err, domain.ErrMissingCredential)

	_, err = catalog.Details(context.Background(), []string{"abc"})
	require.ErrorIs(t, err, domain.ErrMissingCredential)
}

func searchItem(id, title string) *youtube.SearchResult {
	return &youtube.SearchResult{
		Id: &youtube.ResourceId{VideoId: id},
		Snippet: &youtube.SearchResultSnippet{
			Title:        title,
			ChannelTitle: "channel",
			PublishedAt:  "2024-03-01T12:00:00Z",
		},
	}
}

func TestNarrowSearchResponsePreservesOrder(t *testing.T) {
	response := &youtube.SearchListResponse{
		NextPageToken: "token-2",
		PageInfo:      &youtube.PageInfo{TotalResults: 912},
		Items: []*youtube.SearchResult{
			searchItem("b", "second upload"),
			searchItem("a", "first upload"),
			searchItem("c", "third upload"),
		},
	}

	page := narrowSearchResponse(response)
	require.Equal(t, "token-2", page.NextCursor)
	require.Equal(t, int64(912), page.TotalEstimate)
	require.Len(t, page.Stubs, 3)
	require.Equal(t, "b", page.Stubs[0].ID)
	require.Equal(t, "a", page.Stubs[1].ID)
	require.Equal(t, "c", page.Stubs[2].ID)
	require.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), page.Stubs[0].PublishedAt)
}

func TestNarrowSearchResponseSkipsMalformedEntries(t *testing.T) {
	response := &youtube.SearchListResponse{
		Items: []*youtube.SearchResult{
			nil,
			{Id: nil, Snippet: &youtube.SearchResultSnippet{Title: "no id"}},
			{Id: &youtube.ResourceId{VideoId: ""}, Snippet: &youtube.SearchResultSnippet{Title: "empty id"}},
			{Id: &youtube.ResourceId{VideoId: "ok"}, Snippet: nil},
			searchItem("kept", "survives"),
		},
	}

	page := narrowSearchResponse(response)
	require.Len(t, page.Stubs, 1)
	require.Equal(t, "kept", page.Stubs[0].ID)
}

func TestNarrowSearchResponseToleratesBadTimestamp(t *testing.T) {
	item := searchItem("x", "odd date")
	item.Snippet.PublishedAt = "yesterday"

	page := narrowSearchResponse(&youtube.SearchListResponse{Items: []*youtube.SearchResult{item}})
	require.Len(t, page.Stubs, 1)
	require.True(t, page.Stubs[0].PublishedAt.IsZero())
}

func TestNarrowDetailResponseParsesDurations(t *testing.T) {
	response := &youtube.VideoListResponse{
		Items: []*youtube.Video{
			{
				Id:             "abc",
				Statistics:     &youtube.VideoStatistics{ViewCount: 4200, LikeCount: 99},
				ContentDetails: &youtube.VideoContentDetails{Duration: "PT4M13S"},
			},
			{
				Id:             "long",
				Statistics:     &youtube.VideoStatistics{ViewCount: 7},
				ContentDetails: &youtube.VideoContentDetails{Duration: "PT1H2M3S"},
			},
		},
	}

	details := narrowDetailResponse(response)
	require.Len(t, details, 2)
	require.Equal(t, uint64(4200), details["abc"].ViewCount)
	require.Equal(t, uint64(99), details["abc"].LikeCount)
	require.Equal(t, 4*time.Minute+13*time.Second, details["abc"].Duration)
	require.Equal(t, time.Hour+2*time.Minute+3*time.Second, details["long"].Duration)
}

func TestNarrowDetailResponseSkipsIncompleteVideos(t *testing.T) {
	response := &youtube.VideoListResponse{
		Items: []*youtube.Video{
			nil,
			{Id: "", Statistics: &youtube.VideoStatistics{}, ContentDetails: &youtube.VideoContentDetails{}},
			{Id: "nostats", ContentDetails: &youtube.VideoContentDetails{Duration: "PT1M"}},
			{Id: "nodetails", Statistics: &youtube.VideoStatistics{ViewCount: 1}},
			{
				Id:             "badduration",
				Statistics:     &youtube.VideoStatistics{ViewCount: 5},
				ContentDetails: &youtube.VideoContentDetails{Duration: "four minutes"},
			},
		},
	}

	details := narrowDetailResponse(response)
	require.Len(t, details, 1, "entries without stats or details count as missing")

	stats, ok := details["badduration"]
	require.True(t, ok, "a bad duration string narrows to zero instead of dropping the entry")
	require.Equal(t, time.Duration(0), stats.Duration)
	require.Equal(t, uint64(5), stats.ViewCount)
}

func TestBestThumbnailPrefersHighestResolution(t *testing.T) {
	require.Equal(t, "", bestThumbnail(nil))
	require.Equal(t, "", bestThumbnail(&youtube.ThumbnailDetails{}))

	all := &youtube.ThumbnailDetails{
		Default: &youtube.Thumbnail{Url: "d"},
		Medium:  &youtube.Thumbnail{Url: "m"},
		High:    &youtube.Thumbnail{Url: "h"},
	}
	require.Equal(t, "h", bestThumbnail(all))

	all.High = nil
	require.Equal(t, "m", bestThumbnail(all))

	all.Medium = nil
	require.Equal(t, "d", bestThumbnail(all))
}
