package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AtRiskMedia/landstack-go/internal/application/services"
	"github.com/AtRiskMedia/landstack-go/internal/application/startup"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/caching/manager"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/caching/stores"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/monitoring"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/persistence/content"
	"github.com/AtRiskMedia/landstack-go/pkg/config"
	"github.com/spf13/cobra"
)

var seedArgs struct {
	CreatedBy string
}

func newSeedCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "seed <file.yaml>",
		Short: "Import landing pages from a YAML file straight into storage.",
		Long: "Import landing pages from a YAML file straight into storage. Component configs are " +
			"stored as written and migrated to the current schema when first read.",
		Args: cobra.ExactArgs(1),
		RunE: seedCmdRun,
	}
	command.Flags().StringVar(&seedArgs.CreatedBy, "created-by", "seed", "the createdBy value recorded on imported pages")
	return command
}

func seedCmdRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	seed, err := services.ParseSeed(f)
	if err != nil {
		return err
	}

	logger, err := startup.NewLogger()
	if err != nil {
		return err
	}
	defer logger.Close()

	db, err := startup.OpenDatabase(ctx, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	cache := manager.NewManager(stores.NewMemoryStore(config.ContentCacheTTL, config.ContentCacheTTL), config.ContentCacheTTL, config.RenderCacheTTL, monitoring.NewCacheMonitor(), logger)
	seeder := services.NewSeedService(content.NewLandingPageRepository(db.DB, cache, logger), logger)

	result, err := seeder.Import(ctx, seed, seedArgs.CreatedBy)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
