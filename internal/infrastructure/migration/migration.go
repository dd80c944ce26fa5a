package migration

import (
	"fmt"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"backoffice/internal/shared/logger"
)

// Manager runs database migrations with a configurable strategy.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks a strategy by name: "golang_migrate", "goose" or
// "auto" (gorm AutoMigrate, the default).
func NewManager(strategyName string) *Manager {
	var strategy Strategy

	switch strings.ToLower(strategyName) {
	case "golang_migrate":
		scriptsPath, _ := filepath.Abs("./internal/infrastructure/migration/scripts")
		strategy = NewGolangMigrateStrategy(scriptsPath)
	case "goose":
		scriptsPath, _ := filepath.Abs("./internal/infrastructure/migration/goosescripts")
		strategy = NewGooseStrategy(scriptsPath)
	default:
		strategy = NewGormAutoMigrateStrategy()
	}

	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB, models ...interface{}) error {
	m.logger.Infow("starting database migration",
		"strategy", m.strategy.GetName(),
		"models_count", len(models))

	if err := m.strategy.Migrate(db, models...); err != nil {
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully",
		"strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
