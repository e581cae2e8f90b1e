package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/terraincore/heightline/cellmap"
	"github.com/terraincore/heightline/corelog"
	"github.com/terraincore/heightline/grid"
	"github.com/terraincore/heightline/shape"
	"github.com/terraincore/heightline/terrain"
)

// buildCmd represents the build command.
var buildCmd = &cobra.Command{
	Use:   "build MAPFILE",
	Short: "rebuild shapes from a saved cell map and report a summary",
	Long: `Load a cell map (the sparse cell -> layer-stack JSON format) and a
terrain registry fixture, rebuild the shape list, and print how many
shapes and holes were produced.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var doc terrain.Document
		check(unmarshalYAMLFile(registryVal, &doc))
		reg := terrain.FromDocument(doc)

		raw, err := os.ReadFile(args[0])
		check(err)
		data, err := cellmap.Load(raw)
		check(err)

		adapter, err := adapterFromFlags()
		check(err)

		logger := corelog.NewStdLogger(nil)
		shapes, err := shape.Build(data, adapter, reg, logger)
		check(err)

		holes := 0
		for _, s := range shapes {
			holes += len(s.Holes)
		}
		fmt.Printf("%d cell(s), %d shape(s), %d hole(s)\n", len(data), len(shapes), holes)
	},
}

var (
	registryVal string
	gridVal     string
	rowsVal     int32
	colsVal     int32
	cellWVal    float64
	cellHVal    float64
)

func adapterFromFlags() (grid.Adapter, error) {
	switch gridVal {
	case "square":
		return grid.NewSquareAdapter(rowsVal, colsVal, cellWVal, cellHVal), nil
	case "hexRows", "hexCols":
		return grid.NewHexAdapter(rowsVal, colsVal, cellWVal), nil
	default:
		return nil, fmt.Errorf("unknown grid family %q", gridVal)
	}
}

func init() {
	RootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVar(&registryVal, "registry", "heightline.yml", "terrain registry fixture")
	buildCmd.Flags().StringVar(&gridVal, "grid", "square", "grid family: square, hexRows, or hexCols")
	buildCmd.Flags().Int32Var(&rowsVal, "rows", 64, "grid row count")
	buildCmd.Flags().Int32Var(&colsVal, "cols", 64, "grid column count")
	buildCmd.Flags().Float64Var(&cellWVal, "cell-w", 100, "cell width (or hex size)")
	buildCmd.Flags().Float64Var(&cellHVal, "cell-h", 100, "cell height (square grids only)")
}
