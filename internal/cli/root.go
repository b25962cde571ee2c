// Package cli implements the tzweather command line.
package cli

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/i474232898/timezone-weather/internal/config"
	"github.com/i474232898/timezone-weather/internal/logger"
	"github.com/i474232898/timezone-weather/internal/selection"
	"github.com/i474232898/timezone-weather/internal/store"
	"github.com/i474232898/timezone-weather/internal/timezone"
	"github.com/i474232898/timezone-weather/internal/weather"
	"github.com/i474232898/timezone-weather/internal/weather/providers"
)

// env holds the components a subcommand runs against. It is built once in
// PersistentPreRunE and closed in PersistentPostRunE.
type env struct {
	cfg     *config.AppConfig
	log     *logger.Logger
	kv      store.KVCloser
	zones   *timezone.TZDB
	catalog *timezone.Catalog
	session *selection.Session
	weather *weather.Service
	out     io.Writer
	color   bool

	// modeOverride is --mode; it applies to one run and is never saved.
	modeOverride *selection.DisplayMode
}

type rootFlags struct {
	storePath string
	verbose   int
	color     bool
	mode      string
}

// NewRootCommand builds the tzweather command tree writing to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	flags := &rootFlags{}
	e := &env{out: out}

	root := &cobra.Command{
		Use:   "tzweather",
		Short: "Compare local times and current weather across time zones",
		Long: `tzweather converts a reference time into every selected time zone, marks
which zones are inside working hours (09:00-17:00), and shows the current
weather for each zone's representative city.

The selection and display mode persist in the same store the HTTP service uses
(STORE_PATH, or --store).

Examples:

  # Show the selected zones at the current London time:
  $ tzweather times

  # What time is 10:00 in Kolkata for the selected zones?
  $ tzweather times --zone Asia/Kolkata --reference 2024-01-15T10:00

  # Replace the selection and switch to the compact layout:
  $ tzweather select Asia/Tokyo Europe/London
  $ tzweather mode Compact`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.open(cmd, flags)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return e.close()
		},
	}

	root.PersistentFlags().StringVar(&flags.storePath, "store", "", "sqlite file holding the selection (overrides STORE_PATH; \":memory:\" for none)")
	root.PersistentFlags().CountVarP(&flags.verbose, "verbose", "v", "increase logging verbosity, 1=info, 2=debug")
	root.PersistentFlags().BoolVarP(&flags.color, "color", "c", false, "colorize output")
	root.PersistentFlags().StringVarP(&flags.mode, "mode", "m", "", "layout for this run: Grid, List or Compact (default: saved mode)")

	root.AddCommand(
		newZonesCommand(e),
		newTimesCommand(e),
		newWeatherCommand(e),
		newSelectCommand(e),
		newModeCommand(e),
	)
	return root
}

// Execute runs the command line against os.Args.
func Execute() {
	if err := NewRootCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func verbosityLevel(count int) string {
	switch {
	case count >= 2:
		return logger.DebugLevel
	case count == 1:
		return logger.InfoLevel
	default:
		return logger.WarnLevel
	}
}

func (e *env) open(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("store") {
		cfg.StorePath = flags.storePath
		if cfg.StorePath == ":memory:" {
			cfg.StorePath = ""
		}
	}
	e.cfg = cfg
	e.color = flags.color
	e.log = logger.New(verbosityLevel(flags.verbose))

	e.kv, err = store.Open(cfg.StorePath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	e.session = selection.NewSession(e.kv, e.log.Named("selection"))
	e.session.Initialize(cmd.Context())

	if flags.mode != "" {
		mode, err := selection.ParseDisplayMode(flags.mode)
		if err != nil {
			return err
		}
		e.modeOverride = &mode
	}

	e.zones, err = timezone.NewTZDB()
	if err != nil {
		return err
	}
	e.catalog = timezone.NewCatalog(e.zones)

	client := &http.Client{Timeout: cfg.HTTPTimeout}
	forecast := providers.NewOpenMeteoProvider(client, cfg.ForecastBaseURL)
	e.weather = weather.NewService(forecast, weather.NewResolver(e.zones), cfg.FetchTimeout, e.log.Named("weather"))
	return nil
}

func (e *env) close() error {
	if e.log != nil {
		_ = e.log.Sync()
	}
	if e.kv == nil {
		return nil
	}
	return e.kv.Close()
}

// checkZones rejects identifiers outside the catalog.
func (e *env) checkZones(ids []string) error {
	var unknown []string
	for _, id := range ids {
		if !e.catalog.Contains(id) {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unknown zones: %s", strings.Join(unknown, ", "))
	}
	return nil
}

func (e *env) displayMode() selection.DisplayMode {
	if e.modeOverride != nil {
		return *e.modeOverride
	}
	return e.session.DisplayMode()
}
