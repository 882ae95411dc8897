package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"beauty-trends/internal/config"
	"beauty-trends/internal/handler"
	"beauty-trends/internal/service"
	"beauty-trends/pkg/logger"
	"beauty-trends/pkg/vocabulary"
)

type Application struct {
	configPath string
	keywords   string
	all        bool
	debug      bool
}

var application = &Application{}

var Cmd = &cobra.Command{
	Use:   "beauty-trends-server",
	Short: "Analyse beauty keywords once and serve the results over HTTP",
	Long: "Runs one analysis batch against the trends provider, then serves the frozen " +
		"results read-only: /health, /api/results, /api/top, /api/export.csv and /api/export.json.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return application.Run(cmd.Context())
	},
}

func main() {
	if err := Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (app *Application) Run(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.NewManager().Load(app.configPath)
	if err != nil {
		return err
	}
	if app.debug {
		cfg.Logger.Level = "debug"
	}
	logger.SetGlobalLogger(logger.New(cfg.Logger))
	log := logger.GetLogger().WithField("component", "server")

	svc, err := service.NewAnalysisService(cfg)
	if err != nil {
		return fmt.Errorf("failed to create analysis service: %w", err)
	}
	defer svc.Close()

	var keywords []string
	switch {
	case app.all:
		keywords = vocabulary.All()
	case app.keywords != "":
		keywords = vocabulary.Parse(app.keywords)
	}

	start := time.Now()
	svc.Run(ctx, keywords)
	snapshot := service.NewSnapshot(svc)
	log.WithFields(map[string]interface{}{
		"results":  len(snapshot.Results()),
		"duration": time.Since(start).String(),
	}).Info("Analysis finished, serving results")

	server := handler.NewApp(handler.NewController(snapshot, handler.ControllerConfig{
		DefaultTop: cfg.Analysis.TopN,
	}))

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Info("Report server listening")
		errCh <- server.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Shutdown signal received, shutting down gracefully")
	}

	if err := server.ShutdownWithTimeout(5 * time.Second); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	log.Info("Server stopped")
	return nil
}

func init() {
	flags := Cmd.Flags()

	flags.StringVar(
		&application.configPath,
		"config",
		"",
		"Configuration file path (YAML); TRENDS_* environment variables override it",
	)
	flags.StringVar(
		&application.keywords,
		"keywords",
		"",
		"Comma-separated keywords to analyse instead of the default batch",
	)
	flags.BoolVar(
		&application.all,
		"all",
		false,
		"Analyse every keyword of every category",
	)
	flags.BoolVar(
		&application.debug,
		"debug",
		false,
		"Enable debug logging",
	)
}
