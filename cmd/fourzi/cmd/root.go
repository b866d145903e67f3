// Package cmd contains all CLI commands for fourzi.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/f3rmion/fourzi/internal/config"
)

var (
	cfgDir string
	v      = config.New()
	cfg    *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fourzi",
	Short: "Find the four-character idioms hidden in a grid",
	Long: `fourzi is a word puzzle built on four-character Chinese idioms (成語).

Each round a handful of idioms is drawn from a scored dictionary, their
characters are shuffled together and laid out in a square grid. Find the
idioms hidden in the grid.

Running 'fourzi' without a subcommand plays one round.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runPlay,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", "", "config directory (default is $HOME/.config/fourzi)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error, disabled")

	v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	if cfgDir != "" {
		return cfgDir
	}
	dir, err := config.GetConfigDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
		return "."
	}
	return dir
}

// loadConfig merges defaults, config.yaml, FOURZI_* variables and flags,
// then sets up logging.
func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(v, getConfigDir())
	if err != nil {
		return err
	}
	cfg = c

	verbose, _ := cmd.Flags().GetBool("verbose")
	initLogging(cfg.Log.Level, verbose)
	return nil
}

// setupLogging configures logging from flags alone, for commands that must
// run without a valid config file.
func setupLogging(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level, _ := cmd.Flags().GetString("log-level")
	initLogging(level, verbose)
	return nil
}

// initLogging points the global zerolog logger at stderr.
func initLogging(level string, verbose bool) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}
	if verbose {
		lvl = zerolog.DebugLevel
	}

	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()
}
