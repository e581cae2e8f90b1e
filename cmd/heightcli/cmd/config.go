package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/terraincore/heightline/terrain"
)

// defaultTerrainDocument seeds a fresh registry fixture with a small set of
// representative terrain types: two height-using (walls, water), one not
// (difficult ground).
func defaultTerrainDocument() terrain.Document {
	return terrain.Document{
		Types: []terrain.Type{
			{ID: "wall", Name: "Wall", UsesHeight: true},
			{ID: "water", Name: "Water", UsesHeight: true},
			{ID: "difficult", Name: "Difficult Ground", UsesHeight: false},
		},
	}
}

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "create a terrain registry fixture file",
	Long: `Create a terrain type registry fixture in YAML format, prefilled
with a few representative types.

If FILE is not provided, 'heightline.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "heightline.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		ok, err := confirmIfExists(path, fmt.Sprintf("file %q already exists, overwrite? [y/N]", path))
		if !ok {
			if err == nil {
				fmt.Println("aborted by user")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}
		check(marshalYAMLFile(path, defaultTerrainDocument()))
		fmt.Printf("terrain registry written to %q\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
