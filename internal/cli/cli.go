package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pfrederiksen/tour-leaderboard/internal/config"
	"github.com/pfrederiksen/tour-leaderboard/internal/fetch"
	"github.com/pfrederiksen/tour-leaderboard/internal/leaderboard"
	"github.com/pfrederiksen/tour-leaderboard/internal/logger"
	"github.com/pfrederiksen/tour-leaderboard/internal/sink"
	"github.com/pfrederiksen/tour-leaderboard/internal/watch"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagOnce     bool
	flagDryRun   bool
	flagFromFile string
	flagFormat   string
	flagVerbose  bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tour-leaderboard",
		Short: "Scrape a golf tournament leaderboard into a spreadsheet",
		Long: `Periodically scrapes a tournament leaderboard page, reconstructs the
table from its flat markup, and appends a timestamped snapshot to a
Google Sheets spreadsheet.`,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config (default $TOUR_CONFIG)")
	cmd.Flags().BoolVar(&flagOnce, "once", false, "Run a single cycle and print the snapshot")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the table instead of appending to the sheet")
	cmd.Flags().StringVar(&flagFromFile, "from-file", "", "Read page markup from a file instead of fetching")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format for --once: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	return cmd
}

// run is the main command logic
func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	level := logger.ParseLevel(cfg.LogLevel)
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, os.Stderr))

	source, err := buildSource(cfg)
	if err != nil {
		return err
	}

	dest, err := buildSink(cfg)
	if err != nil {
		return err
	}

	pipe := &leaderboard.Pipeline{
		Selector: cfg.DataSelector,
		RowWidth: cfg.RowWidth,
		CutLine:  cfg.CutLine,
		Offset:   cfg.Offset(),
	}

	watcher := watch.New(source, dest, pipe, cfg.PollInterval())

	if flagOnce {
		snap, err := watcher.RunOnce(cmd.Context())
		if err != nil {
			return err
		}
		return WriteOutput(os.Stdout, snap, format)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := watcher.Run(ctx); !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func buildSource(cfg *config.Config) (fetch.Source, error) {
	if flagFromFile != "" {
		return &fetch.FileSource{Path: flagFromFile}, nil
	}
	if cfg.SourceURL == "" {
		return nil, fmt.Errorf("source_url is required (set TOUR_SOURCE_URL or use --from-file)")
	}
	return fetch.NewHTTPSource(cfg.SourceURL), nil
}

func buildSink(cfg *config.Config) (sink.Sink, error) {
	if flagDryRun {
		return sink.NewDryRunSink(os.Stdout), nil
	}
	s, err := sink.NewSheetsSink(cfg.SpreadsheetID, cfg.SheetName, cfg.SheetsToken)
	if err != nil {
		return nil, fmt.Errorf("initializing Sheets sink: %w", err)
	}
	return s, nil
}
