package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/PratikDhanave/schedule-admin/internal/admin"
	"github.com/PratikDhanave/schedule-admin/internal/config"
	"github.com/PratikDhanave/schedule-admin/internal/handlers"
	"github.com/PratikDhanave/schedule-admin/internal/logging"
	"github.com/PratikDhanave/schedule-admin/internal/schedule"
	"github.com/PratikDhanave/schedule-admin/internal/store"
)

var (
	configPath string
	debugFlag  bool
)

var rootCmd = &cobra.Command{
	Use:           "schedule-admin",
	Short:         "Admin console backend for calendars and events",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("CONFIG_FILE"), "path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false, "debug logging")

	rootCmd.AddCommand(serveCmd, migrateCmd, duplicateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app is everything a command needs: config → logger → DB → console wiring.
type app struct {
	cfg      config.Config
	logger   *zap.Logger
	db       *store.PostgresStore
	registry *admin.Registry
	handlers *handlers.Handlers
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if debugFlag {
		cfg.Debug = true
	}

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	db, err := store.NewPostgresStore(ctx, cfg.DBURL, cfg.Location())
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	dup := schedule.NewDuplicator(db, logger.Named("duplicate"))
	registry := admin.NewRegistry(admin.CalendarAdmin(), admin.EventAdmin(dup))

	return &app{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		registry: registry,
		handlers: &handlers.Handlers{
			Logger:    logger.Named("admin"),
			Registry:  registry,
			Calendars: db,
			Events:    db,
			Rules:     db,
			Form:      schedule.NewEventForm(db),
			Location:  cfg.Location(),
		},
	}, nil
}

func (a *app) close() {
	a.db.Close()
	_ = a.logger.Sync()
}
