package skills

import (
	"fmt"
	"os"

	"crush-hub/cmd/root"
	"crush-hub/internal/skills"
	"crush-hub/internal/utils"

	"github.com/iancoleman/orderedmap"
	"github.com/spf13/cobra"
)

var (
	optCategory string
	optJson     bool
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List the built-in skills",
	Long:  "List the built-in skills, optionally filtered by category. An unknown category lists nothing.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listSkills()
	},
}

const skillsExample = `  # List all skills
  crush-hub skills
  # List skills of one category
  crush-hub skills -C dev
  crush-hub skills --category docs --json`

func listSkills() error {
	list := skills.Filter(skills.Catalog, optCategory)
	if optJson {
		return utils.FprintJson(os.Stdout, map[string]interface{}{
			"total":  len(list),
			"skills": list,
		})
	}

	var dataList []*orderedmap.OrderedMap
	for _, s := range list {
		recordMap, _ := utils.StructToOrderedMap(s)
		dataList = append(dataList, recordMap)
	}
	utils.PrintFormat(dataList)
	fmt.Printf("Total: %d\n", len(list))
	return nil
}

func init() {
	skillsCmd.Flags().SortFlags = false
	skillsCmd.Flags().StringVarP(&optCategory, "category", "C", "", "Category filter (creative/design/docs/dev)")
	skillsCmd.Flags().BoolVarP(&optJson, "json", "j", false, "Print JSON as served by /api/skills")
	root.RootCmd.AddCommand(skillsCmd)
	skillsCmd.Example = skillsExample
}
