package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/jrazmi/taskbot/app/taskbot/config"
	"github.com/jrazmi/taskbot/bridge/console"
	"github.com/jrazmi/taskbot/core/commands"
	"github.com/jrazmi/taskbot/core/repositories/tasksrepo"
	"github.com/jrazmi/taskbot/core/tasklist"
	"github.com/jrazmi/taskbot/infrastructure/postgresdb"
	"github.com/jrazmi/taskbot/sdk/environment"
	"github.com/jrazmi/taskbot/sdk/logger"
	"github.com/spf13/cobra"
)

var build = "develop"
var appName = "TASKBOT"

func main() {
	if err := environment.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	log, err := logger.NewFromEnv(appName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "oh no we couldn't even get logging going:", err)
		os.Exit(1)
	}
	ctx := context.Background()

	if err := rootCmd(log).ExecuteContext(ctx); err != nil {
		log.ErrorContext(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func rootCmd(log *logger.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "taskbot",
		Short:         "Track todos, deadlines and events one command at a time",
		Version:       build,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), log, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	root.AddCommand(migrateCmd(log))
	return root
}

func migrateCmd(log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the tasks schema in the postgres database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := config.Load(appName, build)
			if err != nil {
				return err
			}
			pg, err := openPool(log, cfg)
			if err != nil {
				return err
			}
			defer pg.Close()

			log.InfoContext(ctx, "running migration")
			if err := postgresdb.Migrate(ctx, pg, log.Logger); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			log.InfoContext(ctx, "migration completed successfully")
			return nil
		},
	}
}

func run(ctx context.Context, log *logger.Logger, in io.Reader, out io.Writer) error {
	log.DebugContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)

	cfg, err := config.Load(appName, build)
	if err != nil {
		return err
	}

	// STORAGE
	// ==============================================================================
	storer, closeStore, err := openStorer(ctx, log, cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	repo := tasksrepo.NewRepository(log, storer)

	saved, err := repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}
	log.InfoContext(ctx, "startup", "driver", cfg.Driver, "tasks", len(saved))

	// SESSION
	// ==============================================================================
	presenter := console.NewPresenter(cfg.Name)
	parser, err := commands.New(log, tasklist.New(saved...), repo, presenter)
	if err != nil {
		return fmt.Errorf("building parser: %w", err)
	}

	var opts []console.SessionOption
	if cfg.Greeting {
		opts = append(opts, console.WithGreeting(presenter.Greeting()))
	}
	if cfg.Prompt != "" {
		opts = append(opts, console.WithPrompt(cfg.Prompt))
	}
	session := console.NewSession(log, parser, opts...)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	// Reads from stdin block, so the session runs apart from signal handling.
	done := make(chan error, 1)
	go func() {
		done <- session.Run(ctx, in, out)
	}()

	select {
	case err := <-done:
		return err
	case sig := <-shutdown:
		log.InfoContext(ctx, "shutdown", "status", "shutdown started", "signal", sig)
		cancel()
		return awaitSession(ctx, log, done, cfg.SaveTimeout)
	}
}

// awaitSession gives a cancelled session up to grace to finish the command
// in flight, so a running save completes before the store is closed. A
// session blocked reading input is abandoned when grace runs out.
func awaitSession(ctx context.Context, log *logger.Logger, done <-chan error, grace time.Duration) error {
	timer := time.NewTimer(grace)
	defer timer.Stop()

	select {
	case err := <-done:
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	case <-timer.C:
		log.WarnContext(ctx, "shutdown", "status", "session still running", "grace", grace)
		return nil
	}
}
