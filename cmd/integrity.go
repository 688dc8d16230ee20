package cmd

import (
	"context"
	"fmt"
	"time"

	"networth/core/config"
	"networth/core/logger"
	"networth/core/storage"
	"networth/feature/integrity"
	"networth/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check reference data storage",
	Long:  `Checks that the storage bucket holds the reference folder and every reference table.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStorageChecks(cmd.Context(), true, true)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the reference folder",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStorageChecks(cmd.Context(), true, false)
	},
}

// referenceCmd represents the integrity reference command
var referenceCmd = &cobra.Command{
	Use:   "reference",
	Short: "Check reference tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStorageChecks(cmd.Context(), false, true)
	},
}

// marketCmd represents the integrity market command
var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "Fetch market data and report cache freshness",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.Close()

		report := checks.CheckMarket([]checks.Feed{
			{Name: "bazaar", Cache: rt.bazaar, MaxAge: rt.cfg.Feed.BazaarMaxAge},
			{Name: "auctions", Cache: rt.auctions, MaxAge: rt.cfg.Feed.AuctionMaxAge},
		}, time.Now())

		for _, f := range report.Feeds {
			if f.Stale {
				rt.logger.Warn("Market cache is stale", zap.String("feed", f.Name), zap.String("age", f.Age))
			} else {
				rt.logger.Info("Market cache is fresh", zap.String("feed", f.Name), zap.String("age", f.Age))
			}
		}
		rt.logger.Info("Market data",
			zap.Int("products", rt.bazaar.Products()),
			zap.Int("auctions", rt.auctions.Len()))

		if !report.Healthy {
			return fmt.Errorf("market data is stale")
		}
		return nil
	},
}

func runStorageChecks(ctx context.Context, runStructure, runReference bool) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	svc := integrity.NewService(store, cfg.Storage.Bucket, cfg.Reference.Prefix, nil, logg)

	if runStructure {
		logg.Info("Checking folder structure...")
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}

		if len(missing) == 0 {
			logg.Info("Structure is intact.")
		} else {
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))

			if fixFlag {
				logg.Info("Fixing missing folders...")
				if err := svc.FixStructure(ctx, missing); err != nil {
					return fmt.Errorf("failed to fix structure: %w", err)
				}
				logg.Info("Structure fixed successfully.")
			} else {
				logg.Info("Run with --fix to create missing folders.")
			}
		}
	}

	if runReference {
		logg.Info("Checking reference tables...", zap.String("prefix", cfg.Reference.Prefix))
		missing, err := svc.CheckReference(ctx)
		if err != nil {
			return fmt.Errorf("reference check failed: %w", err)
		}

		if len(missing) == 0 {
			logg.Info("Reference tables are present.")
		} else {
			logg.Warn("Missing reference tables detected", zap.Strings("missing", missing))
		}
	}

	return nil
}

func init() {
	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create missing folders")

	integrityCmd.AddCommand(structureCmd)
	integrityCmd.AddCommand(referenceCmd)
	integrityCmd.AddCommand(marketCmd)
	RootCmd.AddCommand(integrityCmd)
}
