package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"backoffice/internal/infrastructure/config"
	"backoffice/internal/infrastructure/database"
	"backoffice/internal/infrastructure/migration"
	"backoffice/internal/shared/logger"
)

var (
	env  string
	name string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Run pending migrations, inspect migration status and create new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name for the new migration (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func setup() (*config.Config, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer database.Close()

	manager := migration.NewManager(cfg.Database.MigrationStrategy)
	if err := manager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
		return err
	}

	logger.Info("migrations applied", "strategy", manager.GetStrategy().GetName())
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	if _, err := setup(); err != nil {
		return err
	}
	defer database.Close()

	strategy := gooseStrategy()
	version, err := strategy.GetVersion(database.Get())
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	logger.Info("current migration version", "version", version)
	return strategy.Status(database.Get())
}

func runCreate(cmd *cobra.Command, args []string) error {
	// creating a script file needs no database connection
	if err := gooseStrategy().Create(name); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	fmt.Printf("created migration %q\n", name)
	return nil
}

func gooseStrategy() *migration.GooseStrategy {
	scriptsPath, _ := filepath.Abs("./internal/infrastructure/migration/goosescripts")
	return migration.NewGooseStrategy(scriptsPath).(*migration.GooseStrategy)
}
