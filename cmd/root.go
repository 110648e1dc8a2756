// Package cmd implements the finance CLI commands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/cli"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/config"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/logger"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/model"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/pipeline"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/report"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/source"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/store"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/telemetry"
)

const serviceName = "finance"

var (
	flagDir      string
	flagInputDir string
	flagConfig   string
	flagQuiet    bool
)

// Set by bootstrap before any command runs.
var (
	cfg             config.Config
	log             *zap.SugaredLogger
	shutdownTracing func(context.Context) error
)

var rootCmd = &cobra.Command{
	Use:                "finance",
	Short:              "Financial projections and investor reports",
	Long:               "Generate revenue projections and a monthly forecast, then render reports and the pitch deck from the snapshot.",
	SilenceUsage:       true,
	PersistentPreRunE:  bootstrap,
	PersistentPostRunE: teardown,
	RunE:               runAll,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDir, "dir", "d", "", "Output directory (default from config)")
	rootCmd.PersistentFlags().StringVarP(&flagInputDir, "input-dir", "i", "", "Directory holding the optional JSON inputs")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default "+config.Path()+")")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// bootstrap loads config, applies flag overrides and builds the logger and
// tracer. Flags win over env, env over the config file.
func bootstrap(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("dir") {
		loaded.General.OutputDir = flagDir
	}
	if cmd.Flags().Changed("input-dir") {
		loaded.General.InputDir = flagInputDir
	}
	cfg = loaded

	log, err = logger.New(logger.Options{Quiet: flagQuiet})
	if err != nil {
		return err
	}

	shutdownTracing, err = telemetry.Setup(cmd.Context(), serviceName)
	if err != nil {
		log.Warnw("tracing disabled", "error", err)
	}
	return nil
}

func teardown(cmd *cobra.Command, _ []string) error {
	if shutdownTracing != nil {
		if err := shutdownTracing(cmd.Context()); err != nil {
			log.Warnw("flushing traces", "error", err)
		}
	}
	if log != nil {
		_ = log.Sync()
	}
	return nil
}

// runAll generates a fresh snapshot and renders every artifact from it.
func runAll(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	st, err := openStore()
	if err != nil {
		return err
	}

	snap, err := generate(ctx, st)
	if err != nil {
		return err
	}
	printProjections(snap)

	inputs, err := loadInputs()
	if err != nil {
		return err
	}
	in := reportInput(snap, inputs)
	targets := append(report.ReportTargets(), report.DeckTargets()...)
	reportResults(report.Run(ctx, st, in, targets, log))
	return nil
}

func openStore() (*store.Store, error) {
	return store.Open(cfg.General.OutputDir)
}

// generate builds the snapshot and persists it.
func generate(ctx context.Context, st *store.Store) (*model.ReportSnapshot, error) {
	snap, err := pipeline.Generate(ctx, st, pipeline.DefaultOptions(cfg, time.Now()))
	if err != nil {
		return nil, err
	}
	progressf("  Generated %s\n", store.SnapshotFile)
	return snap, nil
}

// loadSnapshot reads the persisted snapshot from the output directory. When
// it is absent and prior inputs were loaded, the projections input from the
// input directory is used instead.
func loadSnapshot(st *store.Store, prior *source.Inputs) (*model.ReportSnapshot, error) {
	snap, err := source.LoadSnapshot(st.Path(store.SnapshotFile))
	if !errors.Is(err, source.ErrMissingInput) {
		return snap, err
	}
	if prior != nil {
		snap, priorErr := prior.PriorSnapshot()
		if priorErr == nil {
			log.Infow("using projections from input directory", "input", source.Projections)
			return snap, nil
		}
		if !errors.Is(priorErr, source.ErrMissingInput) {
			return nil, priorErr
		}
	}
	return nil, fmt.Errorf("%w (run `finance projections` first)", err)
}

// loadInputs reads the optional collaborator inputs.
func loadInputs() (*pipeline.LoadResult, error) {
	progressFn := func(current, total int) {
		if flagQuiet {
			return
		}
		fmt.Fprintf(os.Stderr, "\r  Loading inputs %s", cli.RenderProgressBar(current, total, 20))
		if current == total {
			fmt.Fprintln(os.Stderr)
		}
	}

	result, err := pipeline.Load(cfg.General.InputDir, source.DefaultInputs, log, progressFn)
	if err != nil {
		return nil, err
	}
	if !flagQuiet && result.Missing > 0 {
		fmt.Fprintf(os.Stderr, "  %d of %d inputs missing, using defaults\n", result.Missing, result.TotalFiles)
	}
	return result, nil
}

func reportInput(snap *model.ReportSnapshot, inputs *pipeline.LoadResult) report.Input {
	return report.Input{
		Snapshot:    snap,
		KPIs:        inputs.Inputs.KPIs,
		History:     inputs.Inputs.History,
		DeckData:    inputs.Inputs.DeckData,
		Company:     cfg.Company,
		Deck:        cfg.Deck,
		GeneratedAt: time.Now(),
	}
}

// reportResults prints one line per artifact. Failed targets are already
// logged and never fail the command.
func reportResults(results report.Results) {
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		progressf("  Generated %s\n", r.Path)
	}
	if failed := results.Failed(); len(failed) > 0 {
		fmt.Fprintln(os.Stderr, cli.RenderWarning(fmt.Sprintf("%d of %d artifacts failed", len(failed), len(results))))
	}
}

func progressf(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
