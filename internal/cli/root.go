// Package cli implements the command-line interface for cubecore.
package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubecore/internal/config"
	"github.com/SeamusWaldron/cubecore/internal/storage"
	"github.com/SeamusWaldron/cubecore/pkg/cube"
	"github.com/SeamusWaldron/cubecore/pkg/optimizer"
)

const version = "0.1.0"

var (
	// Global flags
	cfgPath string
	dbPath  string
	verbose bool

	// Set up by loadConfig before any command runs.
	cfg = config.Default()
	log = newLogger()
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubecore",
	Short: "Rubik's cube state, validation and move tools",
	Long: `cubecore models a 3x3x3 cube as 54 stickers.

Apply move sequences, check whether a coloring can be solved, shorten
move sequences, generate scrambles, and hand validated states to an
external solver. Scrambles and solutions are kept in a local SQLite
database.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file path (default: ~/.cubecore/config.json)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubecore/cubecore.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command, args []string) error {
	path := cfgPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	c, err := config.Load(path)
	if err != nil {
		return err
	}
	if dbPath != "" {
		c.DBPath = dbPath
	}
	cfg = c

	log.SetLevel(cfg.Level())
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	log.WithField("config", path).Debug("config loaded")
	return nil
}

// openDB opens the configured database and brings its schema up to date.
func openDB() (*storage.DB, error) {
	var (
		db  *storage.DB
		err error
	)
	if cfg.DBPath != "" {
		db, err = storage.Open(cfg.DBPath)
	} else {
		db, err = storage.OpenDefault()
	}
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

func newCube() *cube.Cube {
	return cube.New(cube.WithHistoryCap(cfg.HistoryCap))
}

func newOptimizer() *optimizer.Optimizer {
	return optimizer.New(
		optimizer.WithPassBudget(cfg.PassBudget),
		optimizer.WithLogger(log),
	)
}
