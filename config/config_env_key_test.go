package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"geocoder": map[string]any{
			"apiKey":  "",
			"baseUrl": "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "GEOCODER_APIKEY", want: "geocoder.apiKey"},
		{envKey: "GEOCODER_BASEURL", want: "geocoder.baseUrl"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "MATCHING_WORKERS", want: "matching.workers"},
		{envKey: "WORKER_PORT", want: "worker.port"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyGeocoderDefaults(cfg)
	applyMatchingDefaults(cfg)
	applyDatabaseDefaults(cfg)
	applyWorkerDefaults(cfg)

	require.NotNil(t, cfg.Geocoder)
	require.NotNil(t, cfg.Matching)
	require.NotNil(t, cfg.Database)
	require.NotNil(t, cfg.Worker)
	assert.Equal(t, "yandex", cfg.Geocoder.Provider)
	assert.Equal(t, 5*time.Second, cfg.Geocoder.Timeout)
	assert.Equal(t, 8, cfg.Matching.Workers)
	assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowQueryThreshold)
	assert.Equal(t, 2048, cfg.Database.MaxLoggedSQLLength)
	assert.Equal(t, 8081, cfg.Worker.Port)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Geocoder: &GeocoderConfig{Provider: "yandex", Timeout: 2 * time.Second},
		Matching: &MatchingConfig{Workers: 3},
	}

	applyGeocoderDefaults(cfg)
	applyMatchingDefaults(cfg)

	assert.Equal(t, 2*time.Second, cfg.Geocoder.Timeout)
	assert.Equal(t, 3, cfg.Matching.Workers)
}
