package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/agewalk/internal/tile"
	"github.com/vovakirdan/agewalk/internal/worldmap"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show what a map file contains",
	Long: `Print the tile count of every kind and the position of each marker.

Examples:
  agewalk info
  agewalk info --map caves/first.json`,
	Args: cobra.NoArgs,
	Run:  runInfo,
}

func runInfo(_ *cobra.Command, _ []string) {
	cfg, mapPath := loadConfig()
	_, closeLog := newLogger(false)
	defer closeLog()

	m, err := worldmap.Read(mapPath, cfg.Grid.Width, cfg.Grid.Height)
	if err != nil {
		fatal("%v", err)
	}

	fmt.Printf("%s (%dx%d, %d tiles)\n\n", mapPath, m.Width(), m.Height(), m.Len())

	// Print header
	fmt.Printf("  %-14s  %s\n", "Kind", "Count")
	fmt.Printf("  %-14s  %s\n", "----", "-----")
	for _, k := range tile.All() {
		if n := m.Count(k); n > 0 {
			fmt.Printf("  %-14s  %d\n", k, n)
		}
	}

	fmt.Println()
	for _, k := range []tile.Kind{tile.Start, tile.StopAging, tile.End} {
		cells := m.FindAll(k)
		if len(cells) == 0 {
			fmt.Printf("  %-10s  -\n", k)
			continue
		}
		for _, c := range cells {
			fmt.Printf("  %-10s  %s\n", k, c)
		}
	}
}
