package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/agewalk/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive start menu",
	Long: `Show the start menu and choose between playing and editing the map.

Examples:
  agewalk menu
  agewalk menu --map caves/first.json`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, mapPath := loadConfig()
	logger, closeLog := newLogger(true)
	defer closeLog()

	result, err := tui.RunMenu(mapPath, runtimeConfig())
	if err != nil {
		fatal("%v", err)
	}

	switch result.Choice {
	case tui.ChoicePlay:
		play(cfg, mapPath, result.Config, logger)
	case tui.ChoiceEdit:
		edit(cfg, mapPath, result.Config, logger)
	}
}
