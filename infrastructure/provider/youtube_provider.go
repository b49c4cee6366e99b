package provider

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/eastsky4dk/youtubeQurator/infrastructure/auth"
	"github.com/eastsky4dk/youtubeQurator/infrastructure/credentials"
	"github.com/eastsky4dk/youtubeQurator/internal/core/domain"
	"github.com/eastsky4dk/youtubeQurator/internal/core/ports"
	"github.com/sosodev/duration"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

type youtubeProvider struct {
	credStore   credentials.CredentialStore
	authService auth.AuthenticationService
	log         ports.LoggerPort
	service     *youtube.Service
	mu          sync.Mutex
}

// NewYoutubeProvider builds the CatalogPort over the YouTube Data API. The
// service is created lazily on first use, preferring a configured API key and
// falling back to the OAuth token source when authService is present.
func NewYoutubeProvider(credStore credentials.CredentialStore, authService auth.AuthenticationService, logger ports.LoggerPort) ports.CatalogPort {
	return &youtubeProvider{
		credStore:   credStore,
		authService: authService,
		log:         logger,
		service:     nil,
	}
}

func (s *youtubeProvider) getYoutubeService(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.service != nil {
		return nil
	}

	if key, err := s.credStore.LoadAPIKey(); err == nil {
		service, err := youtube.NewService(ctx, option.WithAPIKey(key))
		if err != nil {
			s.log.Error("error while creating youtube service", err)
			return fmt.Errorf("error while creating youtube service: %w", err)
		}
		s.service = service
		s.log.Info("youtube service created with API key")
		return nil
	}

	if s.authService != nil {
		tokenSource, _, err := s.authService.TokenSource(ctx)
		if err == nil {
			service, err := youtube.NewService(ctx, option.WithTokenSource(tokenSource))
			if err != nil {
				s.log.Error("error while creating youtube service", err)
				return fmt.Errorf("error while creating youtube service: %w", err)
			}
			s.service = service
			s.log.Info("youtube service created with OAuth token")
			return nil
		}
		s.log.Warning(fmt.Sprintf("OAuth token unavailable: %v", err))
	}

	return domain.ErrMissingCredential
}

// ResetService drops the cached service so the next call picks up a newly
// saved credential.
func (s *youtubeProvider) ResetService() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.service = nil
}

func (s *youtubeProvider) Search(ctx context.Context, filters domain.SearchFilters, cursor string, pageSize int64) (domain.StubPage, error) {
	if err := s.getYoutubeService(ctx); err != nil {
		return domain.StubPage{}, err
	}

	call := s.service.Search.List([]string{"id", "snippet"}).
		Q(filters.Query).
		Type("video").
		Order(filters.Order.APIValue()).
		MaxResults(pageSize).
		Context(ctx)

	if filters.Duration != domain.DurationAny {
		call = call.VideoDuration(filters.Duration.APIValue())
	}
	if bound := filters.PublishedWithin.LowerBound(time.Now()); !bound.IsZero() {
		call = call.PublishedAfter(bound.UTC().Format(time.RFC3339))
	}
	if filters.Region != "" {
		call = call.RegionCode(filters.Region)
	}
	if cursor != "" {
		call = call.PageToken(cursor)
	}

	response, err := call.Do()
	if err != nil {
		s.log.Error("error in youtube search call", err)
		return domain.StubPage{}, &domain.UpstreamError{Phase: "search", Err: err}
	}

	return narrowSearchResponse(response), nil
}

// Details issues the single batched statistics/contentDetails lookup for the
// identifiers of one search page.
func (s *youtubeProvider) Details(ctx context.Context, ids []string) (map[string]domain.ItemStats, error) {
	if err := s.getYoutubeService(ctx); err != nil {
		return nil, err
	}

	call := s.service.Videos.List([]string{"statistics", "contentDetails"}).
		Id(strings.Join(ids, ",")).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		s.log.Error("error in youtube videos call", err)
		return nil, &domain.UpstreamError{Phase: "details", Err: err}
	}

	return narrowDetailResponse(response), nil
}

// narrowSearchResponse validates the untrusted upstream payload into stubs,
// skipping entries without an identifier or snippet. Order is preserved
// verbatim.
func narrowSearchResponse(response *youtube.SearchListResponse) domain.StubPage {
	page := domain.StubPage{
		NextCursor: response.NextPageToken,
	}
	if response.PageInfo != nil {
		page.TotalEstimate = response.PageInfo.TotalResults
	}

	page.Stubs = make([]domain.ResultStub, 0, len(response.Items))
	for _, item := range response.Items {
		if item == nil || item.Id == nil || item.Snippet == nil || item.Id.VideoId == "" {
			continue
		}

		// A missing or malformed timestamp narrows to the zero time.
		publishedAt, _ := time.Parse(time.RFC3339, item.Snippet.PublishedAt)

		page.Stubs = append(page.Stubs, domain.ResultStub{
			ID:           item.Id.VideoId,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ThumbnailURL: bestThumbnail(item.Snippet.Thumbnails),
			ChannelTitle: item.Snippet.ChannelTitle,
			PublishedAt:  publishedAt,
		})
	}

	return page
}

// narrowDetailResponse maps identifier to stats. Entries lacking statistics
// or content details count as missing; a duration that fails to parse narrows
// to zero rather than failing the batch.
func narrowDetailResponse(response *youtube.VideoListResponse) map[string]domain.ItemStats {
	details := make(map[string]domain.ItemStats, len(response.Items))
	for _, video := range response.Items {
		if video == nil || video.Id == "" || video.Statistics == nil || video.ContentDetails == nil {
			continue
		}

		var length time.Duration
		if parsed, err := duration.Parse(video.ContentDetails.Duration); err == nil {
			length = parsed.ToTimeDuration()
		}

		details[video.Id] = domain.ItemStats{
			ViewCount: video.Statistics.ViewCount,
			LikeCount: video.Statistics.LikeCount,
			Duration:  length,
		}
	}
	return details
}

func bestThumbnail(thumbnails *youtube.ThumbnailDetails) string {
	if thumbnails == nil {
		return ""
	}

	if thumbnails.High != nil {
		return thumbnails.High.Url
	}
	if thumbnails.Medium != nil {
		return thumbnails.Medium.Url
	}
	if thumbnails.Default != nil {
		return thumbnails.Default.Url
	}

	return ""
}
