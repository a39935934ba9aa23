package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/j-veylop/screentime/internal/config"
	"github.com/j-veylop/screentime/internal/db"
	"github.com/j-veylop/screentime/internal/export"
	"github.com/j-veylop/screentime/internal/logger"
	"github.com/j-veylop/screentime/internal/models"
	"github.com/j-veylop/screentime/internal/notify"
	"github.com/j-veylop/screentime/internal/services/names"
	"github.com/j-veylop/screentime/internal/services/report"
	"github.com/j-veylop/screentime/internal/ui/browser"
	"github.com/j-veylop/screentime/internal/ui/console"
	"github.com/j-veylop/screentime/internal/ui/styles"
	"github.com/j-veylop/screentime/internal/version"
)

// options holds the parsed command-line flags.
type options struct {
	date        string
	limit       int
	format      string
	output      string
	verbose     bool
	chart       bool
	interactive bool
	notify      bool
}

// app carries the collaborators of a run so tests can replace them.
type app struct {
	stdout     io.Writer
	stderr     io.Writer
	now        func() time.Time
	loadConfig func() (*config.Config, error)
	lookup     func(cfg *config.Config) names.Lookup
	notifier   notify.Notifier
	browse     func(*models.Report) error
}

func defaultApp() *app {
	return &app{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		now:        time.Now,
		loadConfig: config.Load,
		lookup: func(cfg *config.Config) names.Lookup {
			if cfg.DisableLookup {
				return nil
			}
			return names.SpotlightLookup{}
		},
		notifier: notify.Desktop(),
		browse:   browser.Run,
	}
}

func newRootCmd(a *app) *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "screentime",
		Short: "Report macOS Screen Time app usage",
		Long: `Reads per-app usage from the macOS Knowledge store (knowledgeC.db) and
prints a ranked report, or exports it as JSON or CSV.

The terminal needs Full Disk Access to read the store.

Environment Variables:
  SCREENTIME_DB_PATH          Knowledge store path
  SCREENTIME_OUTPUT_DIR       Directory for default export file names
  SCREENTIME_LOOKUP_TIMEOUT   App name lookup timeout (default: 5s)
  SCREENTIME_NAME_CACHE_SIZE  App name cache entries (default: 1024)
  SCREENTIME_DISABLE_LOOKUP   Skip Spotlight app name lookups
  SCREENTIME_NOTIFY_TITLE     Desktop notification title`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.run(ctx, opts)
		},
	}

	flags := root.Flags()
	flags.StringVarP(&opts.date, "date", "d", models.FilterToday, "date filter: today, yesterday, week or YYYY-MM-DD")
	flags.IntVarP(&opts.limit, "limit", "l", 0, "show only the top N apps (0 for all)")
	flags.StringVarP(&opts.format, "format", "f", string(export.FormatConsole), "output format: console, json or csv")
	flags.StringVarP(&opts.output, "output", "o", "", "output file for json or csv")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "show per-app details and debug logs")
	flags.BoolVar(&opts.chart, "chart", false, "show usage by hour of day")
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "browse the report in a full-screen view, after any json or csv export")
	flags.BoolVar(&opts.notify, "notify", false, "send a desktop notification with the total")

	root.AddCommand(newVersionCmd(a))
	return root
}

func newVersionCmd(a *app) *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			info := version.Info()
			if short {
				info = version.GetVersion()
			}
			_, err := fmt.Fprintln(a.stdout, info)
			return err
		},
	}
	cmd.Flags().BoolVarP(&short, "short", "s", false, "print only the version number")
	return cmd
}

// run builds the report and hands it to the selected output.
func (a *app) run(ctx context.Context, opts options) error {
	format, err := export.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if opts.limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", opts.limit)
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.SetOutput(a.stderr)
	logger.SetVerbose(opts.verbose)
	if opts.verbose {
		logger.Debug("starting",
			"version", version.GetVersion(),
			"commit", version.GetCommit(),
			"built", version.GetDate())
	}
	if cfg.EnvFileLoaded != "" {
		logger.Debug("loaded env file", "path", cfg.EnvFileLoaded)
	}

	resolver, err := names.NewResolver(a.lookup(cfg), cfg.LookupTimeout, cfg.NameCacheSize)
	if err != nil {
		return fmt.Errorf("failed to create name resolver: %w", err)
	}

	builder := report.NewBuilder(report.OpenKnowledgeStore(cfg.DatabasePath), resolver,
		report.WithClock(a.now))
	rep, err := builder.Build(ctx, opts.date, opts.limit)
	if err != nil {
		return err
	}
	logger.Debug("resolved app names", "lookups", resolver.Lookups())

	if opts.notify {
		if err := notify.Send(a.notifier, cfg.NotifyTitle, rep); err != nil {
			logger.Warn("notification not delivered", "error", err)
		}
	}

	if !rep.HasData() {
		_, err := fmt.Fprintln(a.stdout, console.NoData(rep.DateFilter))
		if opts.verbose {
			logSpan(ctx, cfg.DatabasePath)
		}
		return err
	}

	if format != export.FormatConsole {
		path := opts.output
		if path == "" {
			path = filepath.Join(cfg.OutputDir, export.DefaultFilename(rep.DateFilter, format, rep.GeneratedAt))
		}
		if err := export.Write(rep, format, path); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(a.stdout, styles.SuccessTextStyle.Render("Screen time data exported to: "+path)); err != nil {
			return err
		}
	}

	if opts.interactive {
		return a.browse(rep)
	}
	if format == export.FormatConsole {
		return console.Render(a.stdout, rep, console.Options{
			Verbose: opts.verbose,
			Chart:   opts.chart,
		})
	}
	return nil
}

// logSpan reports which days the store does cover, to explain an empty report.
func logSpan(ctx context.Context, path string) {
	store, err := db.Open(ctx, path)
	if err != nil {
		logger.Debug("could not inspect store", "error", err)
		return
	}
	defer store.Close()

	span, ok, err := store.UsageSpan(ctx)
	switch {
	case err != nil:
		logger.Debug("could not inspect store", "error", err)
	case !ok:
		logger.Info("the store holds no app usage events")
	default:
		logger.Info("app usage available",
			"from", span.First.Format(models.DateLayout),
			"to", span.Last.Format(models.DateLayout),
			"records", span.Records)
	}
}
