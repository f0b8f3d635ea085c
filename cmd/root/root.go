package root

import (
	"fmt"

	"crush-hub/internal/config"
	"crush-hub/internal/logger"

	"github.com/spf13/cobra"
)

var configFile string

var RootCmd = &cobra.Command{
	Use:   "crush-hub",
	Short: "crush 配置与安装分发服务",
	Long:  `crush-hub 提供 crush 配置模板、Skills 列表、安装脚本以及各平台二进制下载重定向`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return prepareConfig(configFile, config.LoadError())
	},
	SilenceUsage: true,
}

/**
 * Settle the configuration before any subcommand runs
 * @param {string} file - value of --config, empty to keep the startup load
 * @param {error} startErr - error from the load done at package init
 * @returns {error} load error, the command must not run on defaults
 * @description
 * - With --config the file is loaded and the logger rebuilt from its log section
 * - Without it, a failed startup load is reported instead of silently using defaults
 */
func prepareConfig(file string, startErr error) error {
	if file == "" {
		if startErr != nil {
			return fmt.Errorf("加载配置失败: %w", startErr)
		}
		return nil
	}
	config.SetConfigFile(file)
	if err := config.ReloadConfig(); err != nil {
		return fmt.Errorf("加载配置 %s 失败: %w", file, err)
	}
	logger.InitLogger(&config.App().Log, false)
	return nil
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "配置文件路径 (默认 ./config.yaml 或 ~/.crush-hub/config.yaml)")
}
