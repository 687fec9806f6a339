package main

import (
	"context"
	"fmt"

	"github.com/jrazmi/taskbot/app/taskbot/config"
	"github.com/jrazmi/taskbot/core/repositories"
	"github.com/jrazmi/taskbot/core/repositories/tasksrepo"
	"github.com/jrazmi/taskbot/core/repositories/tasksrepo/stores/tasksfilestore"
	"github.com/jrazmi/taskbot/core/repositories/tasksrepo/stores/taskspgxstore"
	"github.com/jrazmi/taskbot/core/repositories/tasksrepo/stores/tasksyamlstore"
	"github.com/jrazmi/taskbot/infrastructure/postgresdb"
	"github.com/jrazmi/taskbot/sdk/logger"
)

// openStorer builds the store for cfg.Driver. The returned func releases
// whatever the store holds open.
func openStorer(ctx context.Context, log *logger.Logger, cfg config.Taskbot) (tasksrepo.Storer, func(), error) {
	switch cfg.Driver {
	case repositories.DriverYAML:
		log.InfoContext(ctx, "init", "storage", "yaml", "path", cfg.TasksFile)
		return tasksyamlstore.NewStore(log, cfg.TasksFile), func() {}, nil

	case repositories.DriverPostgres:
		pg, err := openPool(log, cfg)
		if err != nil {
			return nil, nil, err
		}
		log.InfoContext(ctx, "init", "storage", "postgres")
		closeFn := func() {
			log.InfoContext(ctx, "shutdown", "status", "closing database connection")
			pg.Close()
		}
		return taskspgxstore.NewStore(log, pg, cfg.SaveTimeout), closeFn, nil

	default:
		log.InfoContext(ctx, "init", "storage", "file", "path", cfg.TasksFile)
		return tasksfilestore.NewStore(log, cfg.TasksFile), func() {}, nil
	}
}

// openPool connects to postgres using the PG_* variables under appName.
func openPool(log *logger.Logger, cfg config.Taskbot) (*postgresdb.Pool, error) {
	pg, err := postgresdb.NewFromEnv(appName,
		postgresdb.WithLogger(log.Logger),
		postgresdb.WithConnectTimeout(cfg.ConnectTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("configuring postgres support: %w", err)
	}
	return pg, nil
}
