package cmd

import (
	"fmt"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/video-mcp/appconfig"
	"github.com/SaiNageswarS/video-mcp/handlers"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	transport string
	sseAddr   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the MCP tools over stdio or SSE",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&transport, "transport", "", "stdio or sse (overrides config)")
	serveCmd.Flags().StringVar(&sseAddr, "addr", "", "listen address for sse (overrides config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(func(c *appconfig.AppConfig) {
		if transport != "" {
			c.Transport = transport
		}
		if sseAddr != "" {
			c.SSEAddr = sseAddr
		}
	})
	if err != nil {
		return err
	}

	h, err := newHandlers(cfg)
	if err != nil {
		return err
	}
	s := handlers.NewServer(h, version)

	logger.Info("Starting MCP server",
		zap.String("transport", cfg.Transport),
		zap.Bool("mock", cfg.UseMockAPI),
		zap.Int("default_page_size", cfg.DefaultPageSize),
		zap.Int("max_fetch_size", cfg.MaxFetchSize))

	switch cfg.Transport {
	case appconfig.TransportSSE:
		logger.Info("Listening for SSE clients", zap.String("addr", cfg.SSEAddr))
		if err := server.NewSSEServer(s).Start(cfg.SSEAddr); err != nil {
			return fmt.Errorf("serve sse: %w", err)
		}
	default:
		if err := server.ServeStdio(s); err != nil {
			return fmt.Errorf("serve stdio: %w", err)
		}
	}
	return nil
}
