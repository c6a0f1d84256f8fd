package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/agewalk/internal/config"
	"github.com/vovakirdan/agewalk/internal/core"
	"github.com/vovakirdan/agewalk/internal/platform/tui"
	"github.com/vovakirdan/agewalk/internal/world"
	"github.com/vovakirdan/agewalk/internal/worldmap"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the map",
	Long: `Start walking the map from its Start marker.

Controls:
  Left/Right, A/D   - Walk
  Up/Space/W        - Jump
  P                 - Pause
  R                 - Restart the life
  ?                 - Toggle help
  Q/Esc/Ctrl+C      - Quit

A missing or unreadable map file starts an empty map.

Examples:
  agewalk play
  agewalk play --map caves/first.json
  agewalk play --fps 30`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, mapPath := loadConfig()
	logger, closeLog := newLogger(true)
	defer closeLog()

	play(cfg, mapPath, runtimeConfig(), logger)
}

// play loads the map and runs the play loop until the user quits.
func play(cfg config.GameConfig, mapPath string, rt core.RuntimeConfig, logger *log.Logger) {
	m := worldmap.Load(mapPath, cfg.Grid.Width, cfg.Grid.Height, logger)

	w, err := world.New(cfg, m, logger)
	if err != nil {
		fatal("%v", err)
	}
	if err := tui.Run(w, rt, cfg.Input, logger); err != nil {
		fatal("%v", err)
	}
}
