package download

import (
	"fmt"

	"crush-hub/cmd/root"
	"crush-hub/internal/baseurl"
	"crush-hub/internal/binaries"
	"crush-hub/internal/config"
	"crush-hub/internal/utils"

	"github.com/iancoleman/orderedmap"
	"github.com/spf13/cobra"
)

var (
	optHost string
	optList bool
)

var downloadCmd = &cobra.Command{
	Use:   "download [platform] [arch]",
	Short: "Resolve the download URL of a crush binary",
	Long:  "Resolve the redirect target /api/download/crush/{platform}/{arch} would answer with",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		base := resolveBase()
		if optList || len(args) == 0 {
			listMatrix(base)
			return nil
		}
		if len(args) != 2 {
			return fmt.Errorf("need both platform and arch")
		}
		target, rej := binaries.Validate(args[0], args[1], base)
		if rej != nil {
			return rej
		}
		fmt.Println(target.URL)
		return nil
	},
}

type Matrix_Columns struct {
	Platform string `json:"platform"`
	Arch     string `json:"arch"`
	Url      string `json:"url"`
}

func resolveBase() baseurl.Context {
	pub := config.App().Public
	return baseurl.Resolve(pub.BaseURL, optHost, pub.DeploymentHost)
}

func listMatrix(base baseurl.Context) {
	var dataList []*orderedmap.OrderedMap
	for _, p := range binaries.Matrix() {
		target, _ := binaries.Validate(p.Platform, p.Arch, base)
		recordMap, _ := utils.StructToOrderedMap(Matrix_Columns{
			Platform: p.Platform,
			Arch:     p.Arch,
			Url:      target.URL,
		})
		dataList = append(dataList, recordMap)
	}
	utils.PrintFormat(dataList)
	fmt.Printf("Base URL: %s (%s)\n", base.String(), base.Source)
}

func init() {
	downloadCmd.Flags().SortFlags = false
	downloadCmd.Flags().StringVarP(&optHost, "host", "H", "", "Host as a request would declare it")
	downloadCmd.Flags().BoolVarP(&optList, "list", "l", false, "List all supported platform/arch pairs")
	root.RootCmd.AddCommand(downloadCmd)
	downloadCmd.Example = `  crush-hub download --list
  crush-hub download linux amd64 -H hub.example.com`
}
