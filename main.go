package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"beauty-trends/internal/config"
	"beauty-trends/internal/service"
	"beauty-trends/pkg/export"
	"beauty-trends/pkg/logger"
	"beauty-trends/pkg/trends"
	"beauty-trends/pkg/vocabulary"
)

var Cmd = &cobra.Command{
	Use:   "beauty-trends",
	Short: "Google Trends analysis of beauty keywords in São Paulo",
	Long: "Fetches search interest for beauty-industry keywords, scores and ranks them, " +
		"prints a report with the top trends and exports the results to CSV and JSON.",
	SilenceUsage: true,
	RunE:         run,
}

var args struct {
	configPath string
	keywords   string
	top        int
	csvPath    string
	jsonPath   string
	all        bool
	debug      bool
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := Cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.NewManager().Load(args.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)

	logger.SetGlobalLogger(logger.New(cfg.Logger))
	log := logger.GetLogger().WithField("component", "main")

	svc, err := service.NewAnalysisService(cfg)
	if err != nil {
		return fmt.Errorf("failed to create analysis service: %w", err)
	}
	defer svc.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "🔍 Iniciando análise de tendências de beleza em São Paulo...")

	start := time.Now()
	svc.Run(cmd.Context(), selectKeywords())
	log.WithFields(map[string]interface{}{
		"run_id":   svc.RunID(),
		"duration": time.Since(start).String(),
	}).Debug("Batch completed")

	return report(out, svc, cfg)
}

func report(out io.Writer, results service.ResultService, cfg *config.Config) error {
	if err := export.PrintReport(out, results.Results()); err != nil {
		return err
	}

	if top := results.TopN(cfg.Analysis.TopN); len(top) > 0 {
		title := fmt.Sprintf("\n🏆 TOP %d TENDÊNCIAS DE BELEZA:", cfg.Analysis.TopN)
		if err := export.PrintLeaderboard(out, title, top); err != nil {
			return err
		}
	}

	if err := exportResults(cfg.Export.CSVPath, results, export.ExportCSV); err != nil {
		return err
	}
	if err := exportResults(cfg.Export.JSONPath, results, export.ExportJSON); err != nil {
		return err
	}

	fmt.Fprintln(out, "\n✅ Análise concluída!")
	return nil
}

func exportResults(path string, results service.ResultService, exportFn func(string, []trends.ScoredResult) (string, error)) error {
	if path == "" {
		return nil
	}
	if _, err := exportFn(path, results.Results()); err != nil {
		if errors.Is(err, export.ErrNothingToExport) {
			return nil
		}
		return fmt.Errorf("export failed: %w", err)
	}
	return nil
}

// selectKeywords resolves the batch: --all, then --keywords, otherwise nil so
// the configured list or the default batch is used.
func selectKeywords() []string {
	switch {
	case args.all:
		return vocabulary.All()
	case args.keywords != "":
		return vocabulary.Parse(args.keywords)
	}
	return nil
}

// applyFlags lets explicitly set flags win over file and environment values
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("top") {
		cfg.Analysis.TopN = args.top
	}
	if flags.Changed("csv") {
		cfg.Export.CSVPath = args.csvPath
	}
	if flags.Changed("json") {
		cfg.Export.JSONPath = args.jsonPath
	}
	if args.debug {
		cfg.Logger.Level = "debug"
	}
}

func init() {
	flags := Cmd.Flags()

	flags.StringVar(
		&args.configPath,
		"config",
		"",
		"Configuration file path (YAML); TRENDS_* environment variables override it",
	)
	flags.StringVar(
		&args.keywords,
		"keywords",
		"",
		"Comma-separated keywords to analyse instead of the default batch",
	)
	flags.IntVar(
		&args.top,
		"top",
		5,
		"Number of entries in the top trends leaderboard",
	)
	flags.StringVar(
		&args.csvPath,
		"csv",
		"analise_beleza_sp.csv",
		"CSV export path (empty to skip)",
	)
	flags.StringVar(
		&args.jsonPath,
		"json",
		"analise_beleza_sp.json",
		"JSON export path (empty to skip)",
	)
	flags.BoolVar(
		&args.all,
		"all",
		false,
		"Analyse every keyword of every category",
	)
	flags.BoolVar(
		&args.debug,
		"debug",
		false,
		"Enable debug logging",
	)
}
