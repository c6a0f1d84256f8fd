package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/agewalk/internal/worldmap"
)

var bordersCmd = &cobra.Command{
	Use:   "borders",
	Short: "Recompute border tiles of a map file",
	Long: `Rebuild the stone border tiles around every carved cell and save the map.

Only carved cells and the Start marker survive; slabs, the stop-aging zone
and the End marker are removed, as they are in the editor.

Examples:
  agewalk borders --map map.json`,
	Args: cobra.NoArgs,
	Run:  runBorders,
}

func runBorders(_ *cobra.Command, _ []string) {
	cfg, mapPath := loadConfig()
	logger, closeLog := newLogger(false)
	defer closeLog()

	m, err := worldmap.Read(mapPath, cfg.Grid.Width, cfg.Grid.Height)
	if err != nil {
		fatal("%v", err)
	}

	before := m.Clone()
	worldmap.RecomputeBorders(m)
	if m.Equal(before) {
		fmt.Printf("%s: borders already up to date (%d tiles)\n", mapPath, m.Len())
		return
	}
	if err := worldmap.Save(m, mapPath); err != nil {
		fatal("%v", err)
	}

	logger.Info("borders recomputed", "path", mapPath, "before", before.Len(), "after", m.Len())
	fmt.Printf("%s: %d -> %d tiles\n", mapPath, before.Len(), m.Len())
}
