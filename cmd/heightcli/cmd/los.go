package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/terraincore/heightline/cellmap"
	"github.com/terraincore/heightline/core"
	"github.com/terraincore/heightline/corelog"
	"github.com/terraincore/heightline/los"
	"github.com/terraincore/heightline/terrain"
)

// losCmd represents the los command.
var losCmd = &cobra.Command{
	Use:   "los MAPFILE X1,Y1,H1 X2,Y2,H2",
	Short: "run a line-of-sight query against a saved cell map",
	Long: `Load a cell map and terrain registry fixture, rebuild the shape
list, and report the intersection regions and flattened timeline for the
ray between the two given 3D points.`,
	Args: cobra.ExactArgs(3),
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

		p1, err := parsePoint3(args[1])
		check(err)
		p2, err := parsePoint3(args[2])
		check(err)

		logger := corelog.NewStdLogger(nil)
		c, err := core.New(adapter, reg, data, logger)
		check(err)

		opts := los.Options{IncludeNoHeightTerrain: includeNoHeightVal}
		perShape := c.CalculateLineOfSight(p1, p2, opts)
		for _, sr := range perShape {
			fmt.Printf("shape %s (elevation %.2f, height %.2f):\n", sr.Shape.TerrainTypeID, sr.Shape.Elevation, sr.Shape.Height)
			for _, r := range sr.Regions {
				fmt.Printf("  t=[%.4f, %.4f] skimmed=%v side=%s\n", r.Start.T, r.End.T, r.Skimmed, r.SkimSide)
			}
		}

		flat := c.FlattenLineOfSight(perShape)
		fmt.Printf("%d flattened region(s):\n", len(flat))
		for _, fr := range flat {
			ids := make([]string, 0, len(fr.Shapes))
			for _, sh := range fr.Shapes {
				ids = append(ids, sh.TerrainTypeID)
			}
			fmt.Printf("  t=[%.4f, %.4f] skimmed=%v shapes=[%s]\n",
				fr.Start.T, fr.End.T, fr.Skimmed, strings.Join(ids, ","))
		}
	},
}

func parsePoint3(s string) (los.Point3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return los.Point3{}, fmt.Errorf("point %q: want X,Y,H", s)
	}
	vals := make([]float64, 3)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return los.Point3{}, fmt.Errorf("point %q: %w", s, err)
		}
		vals[i] = v
	}
	return los.Point3{X: vals[0], Y: vals[1], H: vals[2]}, nil
}

var includeNoHeightVal bool

func init() {
	RootCmd.AddCommand(losCmd)

	losCmd.Flags().BoolVar(&includeNoHeightVal, "include-no-height", false, "include shapes whose terrain does not use height")
}
