package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestParseEnvironment(t *testing.T) {
	tests := []struct {
		in   string
		want Environment
	}{
		{"local", EnvironmentLocal},
		{"LOCAL", EnvironmentLocal},
		{"dev", EnvironmentDev},
		{"cobalt-dev", EnvironmentDev},
		{"prod", EnvironmentProd},
		{" ic-prod ", EnvironmentProd},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEnvironment(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "staging", "product", "devprod-x", "localhost"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			_, err := ParseEnvironment(bad)
			require.Error(t, err)
		})
	}
}

func TestEnvironmentString(t *testing.T) {
	assert.Equal(t, "prod", EnvironmentProd.String())
	assert.Equal(t, "dev", EnvironmentDev.String())
	assert.Equal(t, "local", EnvironmentLocal.String())
	assert.True(t, EnvironmentProd.IsProduction())
	assert.False(t, EnvironmentDev.IsProduction())
}

func newTestViper(overrides map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range overrides {
		v.Set(k, val)
	}
	return v
}

func TestFromViperDefaults(t *testing.T) {
	cfg, err := fromViper(newTestViper(nil))
	require.NoError(t, err)

	assert.Equal(t, EnvironmentLocal, cfg.Environment)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Empty(t, cfg.Database.URL)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, 15*time.Minute, cfg.Uploads.Expiration())
	assert.Equal(t, language.AmericanEnglish, cfg.Locale.Default)
	assert.Len(t, cfg.Locale.Supported, 5)
}

func TestFromViperOverrides(t *testing.T) {
	cfg, err := fromViper(newTestViper(map[string]any{
		"COBALT_ENVIRONMENT":        "ic-prod",
		"KAFKA_BROKERS":             "kafka-1:9092, kafka-2:9092",
		"UPLOAD_EXPIRATION_MINUTES": 5,
		"LOG_LEVEL":                 "debug",
	}))
	require.NoError(t, err)

	assert.Equal(t, EnvironmentProd, cfg.Environment)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 5*time.Minute, cfg.Uploads.Expiration())
	assert.Equal(t, "DEBUG", cfg.Server.LogLevel.String())
}

func TestFromViperRejectsInvalidValues(t *testing.T) {
	_, err := fromViper(newTestViper(map[string]any{"COBALT_ENVIRONMENT": "staging"}))
	require.Error(t, err)

	_, err = fromViper(newTestViper(map[string]any{"UPLOAD_EXPIRATION_MINUTES": 0}))
	require.Error(t, err)

	_, err = fromViper(newTestViper(map[string]any{"DEFAULT_TIME_ZONE": "Mars/Olympus"}))
	require.Error(t, err)
}
