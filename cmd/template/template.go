package template

import (
	"os"
	"time"

	"crush-hub/cmd/root"
	"crush-hub/internal/config"
	"crush-hub/internal/crushcfg"
	"crush-hub/internal/env"
	"crush-hub/internal/utils"

	"github.com/spf13/cobra"
)

var optYaml bool

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Print the crush configuration template",
	Long:  "Print the crush configuration template served by /api/config, including configured overrides",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := crushcfg.BuildWithOverrides(time.Now(), env.SoftwareVer, config.App().Template)
		if err != nil {
			return err
		}
		if optYaml {
			return utils.FprintYaml(os.Stdout, doc)
		}
		return utils.FprintJson(os.Stdout, doc)
	},
}

func init() {
	templateCmd.Flags().BoolVarP(&optYaml, "yaml", "y", false, "Print YAML instead of JSON")
	root.RootCmd.AddCommand(templateCmd)
	templateCmd.Example = `  crush-hub template > ~/.config/crush/crush.json
  crush-hub template --yaml`
}
