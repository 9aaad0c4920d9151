package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/inno-lab/innovaid/pkg/cli/config"
	httpctrl "github.com/inno-lab/innovaid/pkg/controller/http"
	"github.com/inno-lab/innovaid/pkg/service/directory"
	"github.com/inno-lab/innovaid/pkg/service/worker"
	"github.com/inno-lab/innovaid/pkg/usecase"
	"github.com/inno-lab/innovaid/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var directoryInterval time.Duration
	var repoCfg config.Repository
	var queueCfg config.Queue
	var orgCfg config.Organisations

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("INNOVAID_ADDR"),
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "directory-refresh-interval",
			Usage:       "Interval for refreshing the user directory from the identity provider",
			Value:       10 * time.Minute,
			Sources:     cli.EnvVars("INNOVAID_DIRECTORY_REFRESH_INTERVAL"),
			Destination: &directoryInterval,
		},
	}
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, queueCfg.Flags()...)
	flags = append(flags, orgCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			if err := orgCfg.Configure(ctx, repo); err != nil {
				return goerr.Wrap(err, "failed to load organisation registry")
			}

			queueClient, err := queueCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to initialize queue client")
			}

			uc := usecase.New(repo,
				usecase.WithQueue(queueClient),
				usecase.WithNameResolver(directory.NewResolver(repo)),
			)

			// Directory refresh worker runs only when a Slack workspace is
			// configured as the identity provider.
			if token := queueCfg.BotToken(); token != "" {
				source, err := directory.NewSlackSource(token)
				if err != nil {
					return goerr.Wrap(err, "failed to initialize directory source")
				}

				refreshWorker := worker.NewDirectoryRefreshWorker(repo, source, directoryInterval)
				if err := refreshWorker.Start(ctx); err != nil {
					return goerr.Wrap(err, "failed to start directory refresh worker")
				}
				defer refreshWorker.Stop()
			} else {
				logging.Default().Info("Slack bot token not configured, directory refresh disabled")
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- goerr.Wrap(err, "HTTP server failed")
					return
				}
				errCh <- nil
			}()

			select {
			case err := <-errCh:
				return err

			case <-ctx.Done():
				logging.Default().Info("Shutting down HTTP server")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shut down HTTP server")
				}
				return <-errCh
			}
		},
	}
}
