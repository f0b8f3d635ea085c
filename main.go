package main

import (
	_ "crush-hub/cmd"
	"crush-hub/cmd/root"
	"crush-hub/internal/config"
	"crush-hub/internal/logger"
	"os"
)

func main() {
	// 检查是否是服务器模式
	isServerMode := len(os.Args) > 1 && os.Args[1] == "server"

	logger.InitLogger(&config.Config.Log, isServerMode)
	defer logger.Sync()

	if err := root.RootCmd.Execute(); err != nil {
		logger.Sync()
		os.Exit(1)
	}
}
