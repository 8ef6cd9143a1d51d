// Package cmd implements the video-mcp CLI using cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/SaiNageswarS/video-mcp/appconfig"
	"github.com/SaiNageswarS/video-mcp/handlers"
	"github.com/SaiNageswarS/video-mcp/prompts"
	"github.com/SaiNageswarS/video-mcp/videoapi"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

var (
	configPath string
	useMock    bool
)

var rootCmd = &cobra.Command{
	Use:   "video-mcp",
	Short: "MCP server for the video platform admin API",
	Long: "video-mcp exposes media, categories, users and analytics of a video platform as MCP tools,\n" +
		"resources and prompts, with paginated, field-filtered and truncated responses.",
	SilenceUsage: true,
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.ini", "path to the ini config file")
	rootCmd.PersistentFlags().BoolVar(&useMock, "mock", false, "serve the built-in fixture instead of the live API")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(promptsCmd)
}

func loadConfig(overrides ...func(*appconfig.AppConfig)) (*appconfig.AppConfig, error) {
	if useMock {
		overrides = append(overrides, func(c *appconfig.AppConfig) { c.UseMockAPI = true })
	}
	return appconfig.Load(configPath, overrides...)
}

func newClient(cfg *appconfig.AppConfig) videoapi.Client {
	if cfg.UseMockAPI {
		return videoapi.NewMockClient()
	}
	return videoapi.NewHTTPClient(cfg.VideoServiceURL, cfg.PartnerID, cfg.SessionToken, cfg.RequestTimeout())
}

func newHandlers(cfg *appconfig.AppConfig) (*handlers.Handlers, error) {
	catalog, err := prompts.Load()
	if err != nil {
		return nil, fmt.Errorf("load prompt catalog: %w", err)
	}

	return handlers.New(newClient(cfg), handlers.Settings{
		DefaultPageSize:  cfg.DefaultPageSize,
		MaxFetchSize:     cfg.MaxFetchSize,
		DefaultMaxLength: cfg.DefaultMaxLength,
	}, catalog), nil
}
