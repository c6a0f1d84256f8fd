package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/agewalk/internal/config"
	"github.com/vovakirdan/agewalk/internal/core"
	"github.com/vovakirdan/agewalk/internal/editor"
	"github.com/vovakirdan/agewalk/internal/platform/tui"
	"github.com/vovakirdan/agewalk/internal/worldmap"
)

var flagBrush int

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Carve and mark the map",
	Long: `Open the map editor on the map file.

Controls:
  Arrows/hjkl         - Move the cursor
  Left click, Enter   - Toggle a carved cell or carve a brush square
  Right click, E      - Erase a single cell
  P                   - Pencil a walkable slab
  X                   - Place the Start marker
  C                   - Place the stop-aging zone
  Z                   - Place the End marker
  B                   - Recompute borders
  S                   - Save
  Q/Esc               - Quit (saves unsaved changes)

Examples:
  agewalk edit
  agewalk edit --map caves/first.json --brush 5`,
	Args: cobra.NoArgs,
	Run:  runEdit,
}

func init() {
	editCmd.Flags().IntVar(&flagBrush, "brush", 0, "Brush edge length (default: editor.brush_size from the config)")
}

func runEdit(_ *cobra.Command, _ []string) {
	cfg, mapPath := loadConfig()
	logger, closeLog := newLogger(true)
	defer closeLog()

	edit(cfg, mapPath, runtimeConfig(), logger)
}

// edit loads the map and runs the editor until the user quits.
func edit(cfg config.GameConfig, mapPath string, rt core.RuntimeConfig, logger *log.Logger) {
	brush := cfg.Editor.BrushSize
	if flagBrush > 0 {
		brush = flagBrush
	}

	m := worldmap.Load(mapPath, cfg.Grid.Width, cfg.Grid.Height, logger)
	ed := editor.New(m, mapPath, brush, logger)
	if err := tui.RunEditor(ed, rt, logger); err != nil {
		fatal("%v", err)
	}
}
