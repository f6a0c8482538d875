package cmd

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	config "taskflow.com/taskflow/internal/configs"
	"taskflow.com/taskflow/internal/logger"
	repository "taskflow.com/taskflow/internal/repositories"
	"taskflow.com/taskflow/internal/services"
)

type app struct {
	cfg      config.Config
	logger   *slog.Logger
	db       *gorm.DB
	projects *services.ProjectService
	tasks    *services.TaskService
	seed     *services.SeedService
	health   *services.HealthService
}

// newApp loads the configuration, opens the database and wires the services
// shared by every subcommand.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Env, cfg.LogLevel)
	slog.SetDefault(log)

	db, err := config.NewDatabaseClient(cfg.DatabaseDSN, config.GormLogLevel(cfg.LogLevel))
	if err != nil {
		return nil, err
	}

	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	return &app{
		cfg:      cfg,
		logger:   log,
		db:       db,
		projects: services.NewProjectService(db, projectRepo, taskRepo),
		tasks:    services.NewTaskService(db, projectRepo, taskRepo),
		seed:     services.NewSeedService(db, projectRepo, taskRepo),
		health:   services.NewHealthService(db),
	}, nil
}

func (a *app) Close() {
	if err := config.CloseDatabase(a.db); err != nil {
		a.logger.Error("failed to close database", "error", err)
	}
}
