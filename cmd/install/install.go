package install

import (
	"fmt"

	"crush-hub/cmd/root"
	"crush-hub/internal/baseurl"
	"crush-hub/internal/config"
	"crush-hub/internal/scripts"

	"github.com/spf13/cobra"
)

var optHost string

var installCmd = &cobra.Command{
	Use:       "install <unix|windows>",
	Short:     "Print an install script",
	Long:      "Print the install script served by /api/install/{kind}",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"unix", "windows"},
	RunE: func(cmd *cobra.Command, args []string) error {
		pub := config.App().Public
		base := baseurl.Resolve(pub.BaseURL, optHost, pub.DeploymentHost)
		script, err := scripts.Render(args[0], base.String())
		if err != nil {
			return err
		}
		fmt.Print(script)
		return nil
	},
}

func init() {
	installCmd.Flags().StringVarP(&optHost, "host", "H", "", "Host as a request would declare it")
	root.RootCmd.AddCommand(installCmd)
	installCmd.Example = `  crush-hub install unix -H hub.example.com > install.sh`
}
