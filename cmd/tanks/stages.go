package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tanks/internal/tanks"
)

var stagesCmd = &cobra.Command{
	Use:   "stages [number]",
	Short: "Inspect campaign stage layouts",
	Long: `Without arguments, lists all campaign stages with their terrain mix.
With a stage number, prints that stage's battlefield map.

Examples:
  tanks stages
  tanks stages 7`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStages,
}

func runStages(cmd *cobra.Command, args []string) {
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 || n > tanks.TotalStages {
			fmt.Fprintf(os.Stderr, "Error: stage must be a number between 1 and %d\n", tanks.TotalStages)
			os.Exit(1)
		}
		printStageMap(n)
		return
	}

	fmt.Printf("Campaign stages (1-%d):\n", tanks.TotalStages)
	fmt.Println()
	fmt.Printf("  %-6s  %-6s  %-6s  %-6s  %-6s\n", "Stage", "Brick", "Steel", "Water", "Forest")

	for n := 1; n <= tanks.TotalStages; n++ {
		grid := tanks.LoadStage(n)
		var brick, steel, water, forest int
		for ty := 0; ty < tanks.GridHeight; ty++ {
			for tx := 0; tx < tanks.GridWidth; tx++ {
				switch grid.TileAt(tx, ty) {
				case tanks.TileBrick:
					brick++
				case tanks.TileSteel:
					steel++
				case tanks.TileWater:
					water++
				case tanks.TileForest:
					forest++
				}
			}
		}
		fmt.Printf("  %-6d  %-6d  %-6d  %-6d  %-6d\n", n, brick, steel, water, forest)
	}

	fmt.Println()
	fmt.Println("Run 'tanks stages <number>' to see a stage's map.")
}

// printStageMap renders a stage's battlefield as text, two characters
// per tile so the map keeps roughly square proportions.
func printStageMap(n int) {
	grid := tanks.LoadStage(n)

	fmt.Printf("Stage %d:\n", n)
	fmt.Println()

	for ty := 0; ty < tanks.GridHeight; ty++ {
		fmt.Print("  ")
		for tx := 0; tx < tanks.GridWidth; tx++ {
			if tx == tanks.BaseTileX && ty == tanks.BaseTileY {
				fmt.Print("◈◈")
				continue
			}
			switch grid.TileAt(tx, ty) {
			case tanks.TileBrick:
				fmt.Print("▒▒")
			case tanks.TileSteel:
				fmt.Print("██")
			case tanks.TileWater:
				fmt.Print("≈≈")
			case tanks.TileForest:
				fmt.Print("♣♣")
			default:
				fmt.Print("··")
			}
		}
		fmt.Println()
	}

	fmt.Println()
	fmt.Println("▒ brick   █ steel   ≈ water   ♣ forest   ◈ base")
}
