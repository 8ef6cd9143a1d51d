package appconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &AppConfig{}
	cfg.ApplyDefaults()

	assert.Equal(t, 30*time.Second, cfg.RequestTimeout())
	assert.Equal(t, 10, cfg.DefaultPageSize)
	assert.Equal(t, 500, cfg.MaxFetchSize)
	assert.Equal(t, 0, cfg.DefaultMaxLength)
	assert.Equal(t, TransportStdio, cfg.Transport)
	assert.Equal(t, ":8080", cfg.SSEAddr)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &AppConfig{DefaultPageSize: 25, MaxFetchSize: 100, Transport: TransportSSE, SSEAddr: ":9000"}
	cfg.ApplyDefaults()

	assert.Equal(t, 25, cfg.DefaultPageSize)
	assert.Equal(t, 100, cfg.MaxFetchSize)
	assert.Equal(t, TransportSSE, cfg.Transport)
	assert.Equal(t, ":9000", cfg.SSEAddr)
}

func TestValidateMockNeedsNoCredentials(t *testing.T) {
	cfg := &AppConfig{UseMockAPI: true}
	cfg.ApplyDefaults()

	assert.NoError(t, cfg.Validate())
}

func TestValidateRequiresCredentials(t *testing.T) {
	cfg := &AppConfig{}
	cfg.ApplyDefaults()

	err := cfg.Validate()
	assert.ErrorContains(t, err, "video_service_url")
	assert.ErrorContains(t, err, "session_token")
}

func TestValidateRejectsInconsistentSettings(t *testing.T) {
	cfg := &AppConfig{
		VideoServiceURL:  "https://video.example.com",
		SessionToken:     "ks",
		DefaultPageSize:  50,
		MaxFetchSize:     20,
		DefaultMaxLength: -1,
		Transport:        "websocket",
	}
	cfg.ApplyDefaults()

	err := cfg.Validate()
	assert.ErrorContains(t, err, "exceeds max_fetch_size")
	assert.ErrorContains(t, err, "default_max_length")
	assert.ErrorContains(t, err, "transport")
}
