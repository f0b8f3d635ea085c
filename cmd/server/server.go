package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"crush-hub/cmd/root"
	"crush-hub/controllers"
	"crush-hub/internal/config"
	"crush-hub/internal/logger"
	"crush-hub/internal/skills"
	"crush-hub/services"

	"github.com/spf13/cobra"
)

var listenAddr string

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "启动HTTP服务",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return startServer(ctx)
	},
}

func startServer(ctx context.Context) error {
	cfg := config.App()
	logger.InitLogger(&cfg.Log, true)

	if err := skills.Validate(skills.Catalog); err != nil {
		return fmt.Errorf("skill catalog is invalid: %w", err)
	}

	addr := cfg.Server.Address
	if listenAddr != "" {
		addr = listenAddr
	}
	addrs := ParseListenAddrs(addr)
	if len(addrs) == 0 {
		return fmt.Errorf("no listen address configured")
	}
	listeners, err := CreateListeners(addrs)
	if len(listeners) == 0 {
		if err == nil {
			err = errors.New("no usable listen address")
		}
		return fmt.Errorf("启动监听失败: %w", err)
	}

	router := controllers.NewRouter(cfg, services.NewServer())
	srv := &http.Server{Handler: router}

	errCh := make(chan error, len(listeners))
	var wg sync.WaitGroup
	for _, l := range listeners {
		wg.Add(1)
		go func(l net.Listener) {
			defer wg.Done()
			logger.Infof("HTTP server listening on %s://%s", l.Addr().Network(), l.Addr().String())
			if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}(l)
	}

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutting down HTTP server")
	case serveErr = <-errCh:
		logger.Errorf("HTTP server error: %v", serveErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	wg.Wait()
	return serveErr
}

func init() {
	serverCmd.Flags().StringVarP(&listenAddr, "listen", "l", "", "监听地址，逗号分隔，支持 unix:/path (覆盖 server.address)")
	root.RootCmd.AddCommand(serverCmd)
}
