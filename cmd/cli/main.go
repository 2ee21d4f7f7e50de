package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/georgstage/vagtplan/cmd/cli/commands"
	"github.com/georgstage/vagtplan/internal/config"
	"github.com/georgstage/vagtplan/pkg/core/allocator"
	"github.com/georgstage/vagtplan/pkg/core/registry"
	"github.com/georgstage/vagtplan/pkg/core/services"
	"github.com/georgstage/vagtplan/pkg/postgres"
	"github.com/georgstage/vagtplan/pkg/utils/logging"
)

var (
	verbose    bool
	configPath string
	app        *commands.AppContext
)

func main() {
	app = &commands.AppContext{}

	rootCmd := &cobra.Command{
		Use:   "vagtplan",
		Short: "Georg Stage duty roster CLI - manage duty periods and assignments",
		Long:  `A CLI tool for planning the training ship's duty rosters: duty periods, per-day duty lists, task allocation, exclusions and special duties.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.Logger != nil {
					app.Logger.Sync()
				}
				if app.Store != nil {
					app.Store.Close()
				}
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to the console")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the config file (default: vagtplan_config.yaml in cwd or home)")

	addCommands(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(commands.AddPeriodCmd(app))
	rootCmd.AddCommand(commands.UpdatePeriodCmd(app))
	rootCmd.AddCommand(commands.RemovePeriodCmd(app))
	rootCmd.AddCommand(commands.ListPeriodsCmd(app))
	rootCmd.AddCommand(commands.ShowListsCmd(app))
	rootCmd.AddCommand(commands.EditSlotCmd(app))
	rootCmd.AddCommand(commands.AutofillCmd(app))
	rootCmd.AddCommand(commands.StatsCmd(app))
	rootCmd.AddCommand(commands.ValidateCmd(app))
	rootCmd.AddCommand(commands.AddExclusionCmd(app))
	rootCmd.AddCommand(commands.ListExclusionsCmd(app))
	rootCmd.AddCommand(commands.AddSpecialDutyCmd(app))
	rootCmd.AddCommand(commands.PlanWeekendsCmd(app))
}

// initApp sets up logger, config, database store, and the roster registry
func initApp() error {
	var err error
	app.Ctx = context.Background()

	app.Logger, err = logging.InitLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Debug("Loading configuration")
	if configPath != "" {
		app.Cfg, err = config.LoadFromPath(configPath)
	} else {
		app.Cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app.Logger.Debug("Connecting to database")
	store, err := postgres.NewStore(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := store.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Store = store

	app.Registry = registry.New(allocator.New(nil), app.Logger)
	if err := services.LoadRegistry(app.Ctx, app.Store, app.Registry, app.Logger); err != nil {
		return err
	}

	app.Logger.Debug("Application initialized",
		zap.Int("periods", len(app.Registry.Periods)),
		zap.Int("lists", len(app.Registry.Lists)))
	return nil
}
