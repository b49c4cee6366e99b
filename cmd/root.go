package cmd

import (
	"fmt"
	"os"

	"github.com/eastsky4dk/youtubeQurator/infrastructure/auth"
	"github.com/eastsky4dk/youtubeQurator/infrastructure/credentials"
	"github.com/eastsky4dk/youtubeQurator/infrastructure/export"
	"github.com/eastsky4dk/youtubeQurator/infrastructure/logger"
	"github.com/eastsky4dk/youtubeQurator/infrastructure/provider"
	"github.com/eastsky4dk/youtubeQurator/internal/core/ports"
	"github.com/eastsky4dk/youtubeQurator/internal/core/usecases"
	"github.com/eastsky4dk/youtubeQurator/internal/handler/server"
	"github.com/eastsky4dk/youtubeQurator/internal/handler/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"google.golang.org/api/youtube/v3"
)

const (
	clientSecretFilePath = "client_secret.json"
	apiKeyFilePath       = "api_key.json"
	tokenFilePath        = "token.json"
	exportDir            = "exports"
	callbackURL          = "http://localhost:8080"
)

var rootCmd = &cobra.Command{
	Use:   "qurator",
	Short: "Search YouTube and curate a shortlist of videos",
	Long: `Qurator is a terminal tool for searching the YouTube catalog,
refining results with filters, paging through them and assembling an
ordered, deduplicated shortlist for export.

Run without arguments to launch the interactive TUI, or use the search
subcommand for a one-shot query.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appLogger, err := logger.NewFileLogger("logs", "qurator_tui")
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer appLogger.Close()
		appLogger.Info("application starting")

		services, err := buildServices(appLogger)
		if err != nil {
			appLogger.Error("failed to build services", err)
			return err
		}

		callbackHandler := server.NewCallbackHandler(appLogger)
		initialModel := tui.NewAppModel(
			services.authService,
			callbackHandler,
			services.session,
			services.curator,
			services.credStore,
			services.resetCatalog,
			appLogger,
		)

		p := tea.NewProgram(initialModel, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			appLogger.Error("error running TUI program", err)
			return fmt.Errorf("error running TUI: %w", err)
		}
		appLogger.Info("application finished")
		return nil
	},
}

// appServices bundles the wired dependency graph shared by the TUI and the
// one-shot search command.
type appServices struct {
	credStore    credentials.CredentialStore
	authService  auth.AuthenticationService // nil without a client secret file
	catalog      ports.CatalogPort
	session      *usecases.Session
	curator      usecases.Curator
	resetCatalog func()
}

func buildServices(appLogger logger.Logger) (*appServices, error) {
	credStore := credentials.NewCredentialStore(apiKeyFilePath, tokenFilePath)

	// The OAuth path is optional: without a client secret file the app runs
	// API-key only.
	var authService auth.AuthenticationService
	if _, err := os.Stat(clientSecretFilePath); err == nil {
		authService, err = auth.NewAuthenticationService(
			[]string{youtube.YoutubeReadonlyScope},
			clientSecretFilePath,
			callbackURL,
			credStore,
		)
		if err != nil {
			appLogger.Warning(fmt.Sprintf("OAuth disabled: %v", err))
			authService = nil
		}
	}

	catalog := provider.NewYoutubeProvider(credStore, authService, appLogger)
	resetCatalog := func() {}
	if r, ok := catalog.(interface{ ResetService() }); ok {
		resetCatalog = r.ResetService
	}

	aggregator := usecases.NewAggregator(catalog, appLogger)

	return &appServices{
		credStore:    credStore,
		authService:  authService,
		catalog:      catalog,
		session:      usecases.NewSession(aggregator, appLogger),
		curator:      usecases.NewCurator(export.NewFileSink(exportDir), appLogger),
		resetCatalog: resetCatalog,
	}, nil
}

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}
