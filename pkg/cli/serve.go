package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/riskops-lab/manrisk/pkg/cli/config"
	httpctrl "github.com/riskops-lab/manrisk/pkg/controller/http"
	"github.com/riskops-lab/manrisk/pkg/service/suggest"
	"github.com/riskops-lab/manrisk/pkg/usecase"
	"github.com/riskops-lab/manrisk/pkg/utils/logging"
	"github.com/riskops-lab/manrisk/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var appCfg config.App
	var repoCfg config.Repository
	var geminiCfg config.Gemini

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("MANRISK_ADDR"),
			Destination: &addr,
		},
	}

	// Add shared config flags
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			// Load the UPR registry if a config file is given
			appConfig, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load application configuration")
			}
			if appConfig != nil {
				logging.Default().Info("UPR registry loaded",
					"upr_count", len(appConfig.UPRs),
					"default_period", appConfig.DefaultPeriod,
				)
			} else {
				logging.Default().Info("No configuration file given, UPR registry endpoints disabled")
			}

			// Initialize repository based on backend type
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			// Initialize use cases, with LLM suggestions when Gemini is configured
			var ucOpts []usecase.Option

			llmClient, err := geminiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure Gemini client")
			}
			if llmClient != nil {
				suggestSvc, err := suggest.New(llmClient)
				if err != nil {
					return goerr.Wrap(err, "failed to initialize suggestion service")
				}
				ucOpts = append(ucOpts, usecase.WithSuggestion(suggestSvc))
				logging.Default().Info("LLM suggestion service enabled")
			} else {
				logging.Default().Info("Gemini project not configured, suggestion endpoints will return 503")
			}

			uc := usecase.New(repo, ucOpts...)

			// Create HTTP server
			var httpOpts []httpctrl.Options
			if appConfig != nil {
				httpOpts = append(httpOpts, httpctrl.WithAppConfig(appConfig))
			}
			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc, httpOpts...),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			// Wait for shutdown signal or server error
			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
