package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/courtside/scoreboard/cache"
	"github.com/courtside/scoreboard/internal/logger"
	"github.com/courtside/scoreboard/internal/scraper"
	"github.com/courtside/scoreboard/internal/updater"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
	// ExitNoCache means a read-back ran before any refresh.
	ExitNoCache = 2
)

var (
	flagRebuild   bool
	flagLogLevel  string
	flagCacheFile string
	flagFormat    string
	flagTeam      string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scoreboard",
		Short: "Scrape NBA game results into a local cache",
		Long: `Scrapes NBA game results for all 30 teams, seasons 2003-present,
and checkpoints them into a local cache file after every team-season.
By default only the newest cached season onward is refreshed.`,
		RunE: runUpdate,
	}

	cmd.PersistentFlags().StringVar(&flagLogLevel, "loglevel", "info", "Log level: debug, info, warning, error, or critical")
	cmd.PersistentFlags().StringVar(&flagCacheFile, "cache-file", cache.DefaultPath(), "Cache file location")
	cmd.Flags().BoolVar(&flagRebuild, "rebuild", false, "Rebuild game cache for all years 2003-present")

	cmd.AddCommand(newListCmd())

	return cmd
}

// newListCmd creates the list subcommand, the CLI face of the read-back
// library mode.
func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print cached games sorted by date",
		RunE:  runList,
	}

	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagTeam, "team", "", "Only games involving this team (any name variant)")

	return cmd
}

// runUpdate is the refresh command logic
func runUpdate(cmd *cobra.Command, args []string) error {
	if err := configureLogging(); err != nil {
		return err
	}

	store, err := cache.NewStore(flagCacheFile)
	if err != nil {
		return fmt.Errorf("initializing cache store: %w", err)
	}

	start := time.Now()
	logger.Info("started", logger.Fields{
		"at":      start.UTC().Format(time.RFC3339),
		"rebuild": flagRebuild,
	})

	sc := scraper.New()
	u := updater.New(store, sc.FetchGames)

	if err := u.Run(flagRebuild); err != nil {
		return fmt.Errorf("updating cache: %w", err)
	}

	end := time.Now()
	logger.Info("finished", logger.Fields{
		"at":      end.UTC().Format(time.RFC3339),
		"elapsed": end.Sub(start).String(),
		"metrics": logger.GetMetricsSnapshot(),
	})

	return nil
}

// runList is the list command logic
func runList(cmd *cobra.Command, args []string) error {
	if err := configureLogging(); err != nil {
		return err
	}

	format := OutputFormat(flagFormat)
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	store, err := cache.NewStore(flagCacheFile)
	if err != nil {
		return fmt.Errorf("initializing cache store: %w", err)
	}

	games, err := store.Games()
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "Error: %v (run 'scoreboard' to build it)\n", err)
			os.Exit(ExitNoCache)
		}
		return fmt.Errorf("loading cache: %w", err)
	}

	games, err = filterByTeam(games, flagTeam)
	if err != nil {
		return err
	}

	return WriteGames(os.Stdout, games, format)
}

// configureLogging installs the default logger at the --loglevel level.
func configureLogging() error {
	level, err := logger.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	logger.SetDefault(logger.New(level, os.Stdout))
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
