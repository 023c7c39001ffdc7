package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aocrunner/internal/aoc"
	"aocrunner/internal/config"
	"aocrunner/internal/days"
	"aocrunner/internal/input"
	"aocrunner/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string
	sessionID  string
	dataDir    string

	// Root command flags
	day       = days.Default
	inputFile string

	cfg    *config.Config
	logger *zap.Logger

	newLogger = logging.New
)

// rootCmd solves one puzzle
var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "Advent of Code runner",
	Long: `Downloads the input for the selected puzzle (once, then from the local cache),
parses it and prints the answers to both parts.

Inputs are per user, so the first download needs your adventofcode.com
session cookie, passed with --aoc-session-id or AOC_SESSION_ID.

Examples:
  aoc --day day3
  aoc -d 4 --input example.txt
  LOG_LEVEL=debug aoc -d 2`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	RunE: runDay,
}

// listCmd prints the registry
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the puzzles this build can solve",
	Args:  cobra.NoArgs,
	RunE:  listDays,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging (overrides LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file (YAML, optional)")
	rootCmd.PersistentFlags().StringVar(&sessionID, "aoc-session-id", "", "Advent of Code session cookie (or set AOC_SESSION_ID env)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Input cache directory (default from config: ./data)")

	rootCmd.Flags().VarP(&day, "day", "d", fmt.Sprintf("Puzzle to solve %v", days.Names()))
	rootCmd.Flags().StringVar(&inputFile, "input", "", "Solve this file instead of the downloaded input")

	rootCmd.AddCommand(listCmd)
}

// setup resolves configuration (file < env < flags) and builds the logger.
func setup() error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if sessionID != "" {
		c.Session = sessionID
	}
	if dataDir != "" {
		c.DataDir = dataDir
	}
	if verbose {
		c.Logging.Level = "debug"
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	l, err := newLogger(c.Logging)
	if err != nil {
		return err
	}
	cfg, logger = c, l
	logging.For(logger, logging.CategoryBoot).Debug("Configuration loaded",
		zap.String("config", configPath),
		zap.String("data_dir", cfg.DataDir),
		zap.Bool("session", cfg.Session != ""))
	return nil
}

func newProvider() *input.Provider {
	return input.NewProvider(input.Config{
		DataDir:   cfg.DataDir,
		BaseURL:   cfg.BaseURL,
		Session:   cfg.Session,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.GetTimeout(),
	}, logger)
}

// runDay solves the selected puzzle
func runDay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var source aoc.Source
	if inputFile != "" {
		source = input.FileSource(inputFile)
	} else {
		provider := newProvider()
		defer provider.Close()
		source = provider
	}

	logger.Info("Solving", zap.String("day", string(day)), zap.String("title", day.Title()))
	_, err := days.Solve(ctx, aoc.NewRunner(source, logger), day)
	return err
}

// listDays prints every registered puzzle and whether its input is cached
func listDays(cmd *cobra.Command, args []string) error {
	provider := newProvider()
	out := cmd.OutOrStdout()
	for _, name := range days.Names() {
		id, _ := name.ID()
		status := "not cached"
		if _, err := os.Stat(provider.CachePath(id)); err == nil {
			status = "cached"
		}
		fmt.Fprintf(out, "%-6s %-30s %s (%s)\n", name, name.Title(), id, status)
	}
	return nil
}

// execute runs the CLI with args and flushes the logger whether or not the
// command succeeded.
func execute(ctx context.Context, args []string) error {
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := execute(ctx, os.Args[1:])
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
