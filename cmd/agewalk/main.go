// agewalk is a terminal platformer about walking one life from birth to old
// age through a hand-carved cave, with the editor that carves it.
//
// Usage:
//
//	agewalk play             - Play the map
//	agewalk edit             - Edit the map
//	agewalk menu             - Start menu to pick play or edit
//	agewalk borders          - Recompute border tiles of a map file
//	agewalk info             - Print tile counts and marker positions
//
// Global flags:
//
//	--map <path>     - Map file (default: grid.map_path from the config)
//	--config <path>  - Custom game config YAML
//	--fps <rate>     - Set tick rate (default: 60)
//	--log <path>     - Log file for terminal sessions (default: ~/.agewalk/agewalk.log)
//	--verbose        - Log debug messages
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/agewalk/internal/config"
	"github.com/vovakirdan/agewalk/internal/core"
)

var (
	// Global flags
	flagMap     string
	flagConfig  string
	flagFPS     int
	flagLogPath string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "agewalk",
	Short: "agewalk - a life-long walk through a terminal cave",
	Long: `agewalk is a terminal platformer. You are born at the Start marker and
age through five stages while you walk, each with its own speed, jump and
sight. Find the place where time stands still, or reach the end before
old age does.

Available commands:
  play     - Play the map
  edit     - Carve and mark the map
  menu     - Interactive start menu
  borders  - Recompute border tiles of a map file
  info     - Show what a map file contains

Examples:
  agewalk play
  agewalk edit --map caves/first.json
  agewalk play --config ./slow-aging.yaml
  agewalk borders --map map.json`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagMap, "map", "", "Path to the map file (default: grid.map_path from the config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.agewalk/agewalk.log", "Log file for terminal sessions")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(bordersCmd)
	rootCmd.AddCommand(infoCmd)
}

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the game config and resolves the map path.
func loadConfig() (config.GameConfig, string) {
	cfg, err := config.LoadGame(flagConfig)
	if err != nil {
		fatal("%v", err)
	}
	mapPath := flagMap
	if mapPath == "" {
		mapPath = cfg.Grid.MapPath
	}
	return cfg, expandPath(mapPath)
}

// runtimeConfig reads the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// newLogger creates the process logger and installs it as the default.
// Terminal sessions log to the log file so the screen stays clean; headless
// commands log to stderr. The returned function closes the log file.
func newLogger(interactive bool) (*log.Logger, func()) {
	out, closeFn := os.Stderr, func() {}
	if interactive {
		path := expandPath(flagLogPath)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			fatal("cannot create log directory: %v", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fatal("cannot open log file: %v", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "agewalk",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)
	return logger, closeFn
}

// expandPath replaces a leading ~ with the home directory.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
