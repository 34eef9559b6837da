// Package cli implements the cobra command surface for the harvest
// pipeline.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerline-labs/harvest-cli/internal/adapters/driven/config/file"
	"github.com/ledgerline-labs/harvest-cli/internal/adapters/driven/storage/sqlite"
	"github.com/ledgerline-labs/harvest-cli/internal/connectors/github"
	"github.com/ledgerline-labs/harvest-cli/internal/core/services"
	"github.com/ledgerline-labs/harvest-cli/internal/logger"
)

var (
	flagVerbose    bool
	flagConfigPath string
	flagDataDir    string
)

var rootCmd = &cobra.Command{
	Use:   "harvest",
	Short: "Ingest flagged principals' repositories into the knowledge store",
	Long: `harvest crawls the repositories of principals flagged for processing,
classifies each repository and upserts it into the knowledge store,
then records the per-principal outcome and clears the flag.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "config file path (default ~/.harvest/config.toml)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default ~/.harvest/data)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command under ctx, so signal-driven
// cancellation reaches the quota waits and monitor sleeps.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// app wires the stores, the API client and the ingestor for one
// command invocation.
type app struct {
	cfg      *file.Config
	store    *sqlite.Store
	ingestor *services.Ingestor
}

// newApp loads config and opens the store. The command exits non-zero
// only when this setup fails; per-principal failures are recorded, not
// propagated.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := file.Load(flagConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}

	store, err := sqlite.NewStore(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	client, err := github.NewClient(ctx, github.ClientConfig{
		Token:    cfg.GitHubToken,
		PageSize: cfg.PageSize,
		Quota:    github.NewRateLimiter(cfg.QuotaLowWater),
	})
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("creating API client: %w", err)
	}

	ingestor := services.NewIngestor(
		store.PrincipalStore(), store.KnowledgeStore(), client, cfg.PolitenessDelay)

	return &app{cfg: cfg, store: store, ingestor: ingestor}, nil
}

func (a *app) close() {
	_ = a.store.Close()
}
