package appconfig

import (
	"errors"
	"fmt"
	"time"

	"github.com/SaiNageswarS/go-api-boot/config"
	"github.com/SaiNageswarS/go-api-boot/dotenv"
)

const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

type AppConfig struct {
	config.BootConfig `ini:",extends"`

	VideoServiceURL   string `env:"VIDEO-SERVICE-URL" ini:"video_service_url"`
	PartnerID         int    `env:"VIDEO-PARTNER-ID" ini:"partner_id"`
	SessionToken      string `env:"VIDEO-SESSION-TOKEN" ini:"session_token"`
	RequestTimeoutSec int    `ini:"request_timeout_sec"`

	DefaultPageSize  int `ini:"default_page_size"`
	MaxFetchSize     int `ini:"max_fetch_size"`
	DefaultMaxLength int `ini:"default_max_length"`

	Transport  string `env:"MCP-TRANSPORT" ini:"transport"`
	SSEAddr    string `env:"MCP-SSE-ADDR" ini:"sse_addr"`
	UseMockAPI bool   `env:"USE-MOCK-API" ini:"use_mock_api"`
}

// Load reads .env, then the ini file with env overrides, applies the given
// overrides (command line flags) and validates the result.
func Load(path string, overrides ...func(*AppConfig)) (*AppConfig, error) {
	dotenv.LoadEnv()

	cfg := &AppConfig{}
	if err := config.LoadConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	for _, o := range overrides {
		o(cfg)
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AppConfig) ApplyDefaults() {
	if c.RequestTimeoutSec <= 0 {
		c.RequestTimeoutSec = 30
	}
	if c.DefaultPageSize <= 0 {
		c.DefaultPageSize = 10
	}
	if c.MaxFetchSize <= 0 {
		c.MaxFetchSize = 500
	}
	if c.Transport == "" {
		c.Transport = TransportStdio
	}
	if c.SSEAddr == "" {
		c.SSEAddr = ":8080"
	}
}

// Validate reports settings that cannot work together.
func (c *AppConfig) Validate() error {
	var errs []error

	if !c.UseMockAPI {
		if c.VideoServiceURL == "" {
			errs = append(errs, errors.New("video_service_url is required unless use_mock_api is set"))
		}
		if c.SessionToken == "" {
			errs = append(errs, errors.New("session_token (VIDEO-SESSION-TOKEN) is required unless use_mock_api is set"))
		}
	}
	if c.DefaultPageSize > c.MaxFetchSize {
		errs = append(errs, fmt.Errorf("default_page_size %d exceeds max_fetch_size %d", c.DefaultPageSize, c.MaxFetchSize))
	}
	if c.DefaultMaxLength < 0 {
		errs = append(errs, fmt.Errorf("default_max_length must not be negative, got %d", c.DefaultMaxLength))
	}
	if c.Transport != TransportStdio && c.Transport != TransportSSE {
		errs = append(errs, fmt.Errorf("transport must be %q or %q, got %q", TransportStdio, TransportSSE, c.Transport))
	}

	return errors.Join(errs...)
}

func (c *AppConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSec) * time.Second
}
