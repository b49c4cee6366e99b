package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/eastsky4dk/youtubeQurator/infrastructure/logger"
	"github.com/eastsky4dk/youtubeQurator/internal/core/domain"
	"github.com/eastsky4dk/youtubeQurator/internal/core/usecases"

	"github.com/spf13/cobra"
)

var (
	searchOrder    string
	searchDuration string
	searchWithin   string
	searchRegion   string
	searchPages    int
	searchReplace  bool
	searchExport   bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Run a one-shot search and print the results",
	Long: `Search the YouTube catalog without the interactive TUI.

Examples:
  qurator search "golang tutorial"
  qurator search "lofi" --order views --duration long
  qurator search "tokyo travel" --pages 3 --export`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appLogger, err := logger.NewFileLogger("logs", "qurator_search")
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer appLogger.Close()

		services, err := buildServices(appLogger)
		if err != nil {
			return err
		}

		filters, err := buildFilters(args[0])
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		if err := services.session.Search(ctx, filters); err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		for page := 1; page < searchPages; page++ {
			snap := services.session.Snapshot()
			if !snap.HasMore {
				break
			}
			if searchReplace {
				err = services.session.AdvanceReplace(ctx)
			} else {
				err = services.session.AdvanceAppend(ctx)
			}
			if err != nil {
				return fmt.Errorf("failed to fetch page %d: %w", page+1, err)
			}
		}

		snap := services.session.Snapshot()
		printResults(cmd, snap)

		if searchExport {
			for _, item := range snap.Items {
				services.curator.Add(item)
			}
			dest, err := services.curator.ExportToSink()
			if err != nil {
				return err
			}
			cmd.Printf("\nExported %d URL(s) to %s\n", services.curator.Len(), dest)
		}

		return nil
	},
}

func buildFilters(query string) (domain.SearchFilters, error) {
	filters := domain.DefaultFilters(query)

	order, err := domain.ParseSortOrder(searchOrder)
	if err != nil {
		return filters, err
	}
	bucket, err := domain.ParseDurationBucket(searchDuration)
	if err != nil {
		return filters, err
	}
	within, err := domain.ParsePublishedWithin(searchWithin)
	if err != nil {
		return filters, err
	}

	filters.Order = order
	filters.Duration = bucket
	filters.PublishedWithin = within
	filters.Region = strings.ToUpper(strings.TrimSpace(searchRegion))
	return filters, filters.Validate()
}

func printResults(cmd *cobra.Command, snap usecases.Snapshot) {
	if snap.TotalEstimate > 0 {
		cmd.Printf("About %d results for %q\n\n", snap.TotalEstimate, snap.Filters.Query)
	}
	for i, item := range snap.Items {
		cmd.Printf("%2d. %s\n", i+1, item.Title)
		meta := []string{item.ChannelTitle}
		if item.Stats != nil {
			meta = append(meta, fmt.Sprintf("%d views", item.Stats.ViewCount))
			if item.Stats.Duration > 0 {
				meta = append(meta, formatDuration(item.Stats.Duration))
			}
		}
		if !item.PublishedAt.IsZero() {
			meta = append(meta, item.PublishedAt.Format("2006-01-02"))
		}
		cmd.Printf("    %s\n    %s\n", strings.Join(meta, " · "), item.URL)
	}
	if snap.Degraded {
		cmd.Println("\nNote: some items are missing statistics.")
	}
	if snap.HasMore {
		cmd.Println("\nMore pages available; rerun with --pages to fetch them.")
	}
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchOrder, "order", "relevance", "sort order: relevance, recency, views, rating")
	searchCmd.Flags().StringVar(&searchDuration, "duration", "any", "duration bucket: any, short, medium, long")
	searchCmd.Flags().StringVar(&searchWithin, "within", "any", "published window: any, today, week, month, year")
	searchCmd.Flags().StringVar(&searchRegion, "region", "", "region hint (ISO 3166-1 alpha-2)")
	searchCmd.Flags().IntVar(&searchPages, "pages", 1, "number of pages to fetch")
	searchCmd.Flags().BoolVar(&searchReplace, "replace", false, "keep only the last fetched page instead of accumulating")
	searchCmd.Flags().BoolVar(&searchExport, "export", false, "export the result URLs through the curated-list sink")
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Second).String()
}
