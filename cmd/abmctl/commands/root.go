// Package commands implements abmctl, a terminal client for the enrichment
// and stock-asset vendors that shares the API's configuration.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/octobees/marketing-ops/api/internal/apollo"
	"github.com/octobees/marketing-ops/api/internal/config"
	"github.com/octobees/marketing-ops/api/internal/contact"
	"github.com/octobees/marketing-ops/api/internal/freepik"
	"github.com/octobees/marketing-ops/api/internal/handler"
	"github.com/octobees/marketing-ops/api/internal/logger"
	"github.com/octobees/marketing-ops/api/internal/service"
)

// App holds the vendor clients the commands run against.
type App struct {
	Enricher  service.CompanyEnricher
	Prospects service.ProspectSearcher
	Assets    handler.AssetProvider
	Log       *zap.Logger
}

// Builder constructs the App once flags are parsed.
type Builder func(logLevel string) (*App, error)

// Execute runs abmctl against the configured vendors.
func Execute() error {
	return NewRootCommand(buildApp).Execute()
}

// NewRootCommand assembles the command tree.
func NewRootCommand(build Builder) *cobra.Command {
	var (
		logLevel string
		app      App
	)

	root := &cobra.Command{
		Use:          "abmctl",
		Short:        "Query the enrichment and stock-asset vendors",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			built, err := build(logLevel)
			if err != nil {
				return err
			}
			app = *built
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Log != nil {
				_ = app.Log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(
		enrichCmd(&app),
		prospectsCmd(&app),
		assetsCmd(&app),
	)
	return root
}

func buildApp(logLevel string) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if logLevel == "" {
		logLevel = cfg.LogLevel
	}

	log, err := logger.New(logger.Config{Level: logLevel, Development: cfg.LogDevelopment, OutputPaths: []string{"stderr"}})
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: cfg.VendorHTTPTimeout}
	apolloClient := apollo.NewClient(cfg.Apollo, httpClient, contact.NewNormalizer(cfg.PhoneDefaultRegion), log)
	return &App{
		Enricher:  apolloClient,
		Prospects: apolloClient,
		Assets:    freepik.NewClient(cfg.Freepik, httpClient, log),
		Log:       log,
	}, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
