package cmd

import (
	"github.com/davidvct/healthy-meal-planner/cmd/config"
	migration "github.com/davidvct/healthy-meal-planner/cmd/database/migrate"
	"github.com/davidvct/healthy-meal-planner/internal/utils"
	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
)

// Options are the start-up switches of the server binary.
type Options struct {
	Migrate  bool
	SeedOnly bool
}

// RunFunc does the actual work once flags are parsed.
type RunFunc func(cmd *cobra.Command, opts Options) error

// NewRootCmd builds the root command around run. A nil run starts the server.
func NewRootCmd(run RunFunc) *cobra.Command {
	if run == nil {
		run = serve
	}
	var opts Options

	cmd := &cobra.Command{
		Use:   "healthy-meal-planner",
		Short: "Meal planning API for caretakers and diners",
		Long: `Healthy Meal Planner serves the weekly meal plan, dish recommendation,
nutrient and shopping list API.

Modes:

1. Serve (default): connect to postgres, load the dish catalog and listen on APP_PORT
2. Migrate (--migrate): migrate the schema and seed the catalog, then serve
3. Seed only (--seed-only): migrate the schema, seed the catalog and exit`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.SeedOnly {
				opts.Migrate = true
			}
			return run(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Migrate, "migrate", false, "Migrate the schema and seed the catalog before serving")
	cmd.Flags().BoolVar(&opts.SeedOnly, "seed-only", false, "Migrate the schema, seed the catalog and exit without serving")
	return cmd
}

func serve(cmd *cobra.Command, opts Options) error {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		return err
	}

	if opts.Migrate {
		if err := migration.Migrate(db); err != nil {
			return err
		}
		if err := migration.Seed(db); err != nil {
			return err
		}
		if opts.SeedOnly {
			log.Info("catalog seeded, exiting")
			return nil
		}
	}

	app, err := config.NewApp(db)
	if err != nil {
		return err
	}
	return app.Listen(":" + utils.GetConfig("APP_PORT"))
}

// Execute runs the root command with the real server.
func Execute() error {
	return NewRootCmd(nil).Execute()
}
