package config

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"
	"time"

	"mazee-site/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		expectError bool
		errorMsg    string
	}{
		{
			name:        "Success with defaults",
			envVars:     map[string]string{},
			expectError: false,
		},
		{
			name: "Success with all config specified",
			envVars: map[string]string{
				"SERVER_HOST":         "localhost",
				"SERVER_PORT":         "9090",
				"SERVER_READ_TIMEOUT": "5s",
				"LOG_LEVEL":           "debug",
				"LOG_FORMAT":          "console",
				"SITE_BASE_URL":       "https://staging.mazeegroup.net/",
				"SITE_DEFAULT_LOCALE": "GE",
				"DATA_DIR":            "/srv/catalog",
				"DATA_WATCH":          "true",
				"S3_ENABLED":          "true",
				"S3_BUCKET":           "mazee-catalog",
				"S3_REGION":           "eu-central-1",
				"S3_PREFIX":           "site/",
				"S3_ENDPOINT":         "http://localhost:9000",
				"ADMIN_API_KEY":       "secret",
			},
			expectError: false,
		},
		{
			name: "Error - invalid server port",
			envVars: map[string]string{
				"SERVER_PORT": "99999",
			},
			expectError: true,
			errorMsg:    "invalid server port",
		},
		{
			name: "Error - invalid log level",
			envVars: map[string]string{
				"LOG_LEVEL": "invalid",
			},
			expectError: true,
			errorMsg:    "invalid log level",
		},
		{
			name: "Error - invalid log format",
			envVars: map[string]string{
				"LOG_FORMAT": "xml",
			},
			expectError: true,
			errorMsg:    "invalid log format",
		},
		{
			name: "Error - relative base URL",
			envVars: map[string]string{
				"SITE_BASE_URL": "mazeegroup.net",
			},
			expectError: true,
			errorMsg:    "invalid site base URL",
		},
		{
			name: "Error - unsupported default locale",
			envVars: map[string]string{
				"SITE_DEFAULT_LOCALE": "de",
			},
			expectError: true,
			errorMsg:    "invalid default locale",
		},
		{
			name: "Error - watch without directory",
			envVars: map[string]string{
				"DATA_WATCH": "true",
			},
			expectError: true,
			errorMsg:    "data directory is required",
		},
		{
			name: "Error - S3 without bucket",
			envVars: map[string]string{
				"S3_ENABLED": "true",
			},
			expectError: true,
			errorMsg:    "S3 bucket is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear environment
			os.Clearenv()

			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}

			cfg, err := Load()

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
			}

			os.Clearenv()
		})
	}
}

func TestLoad_Values(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	os.Setenv("SITE_BASE_URL", "https://staging.mazeegroup.net/")
	os.Setenv("SITE_DEFAULT_LOCALE", "RU")
	os.Setenv("SERVER_WRITE_TIMEOUT", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://staging.mazeegroup.net", cfg.Site.BaseURL)
	assert.Equal(t, model.LocaleRU, cfg.Site.DefaultLocale)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "catalog/", cfg.S3.Prefix)
	assert.Empty(t, cfg.S3.Endpoint)
	assert.Empty(t, cfg.Data.Dir)
	assert.False(t, cfg.S3.Enabled)
}

func TestLoad_S3Endpoint(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	os.Setenv("S3_ENABLED", "true")
	os.Setenv("S3_BUCKET", "mazee-catalog")
	os.Setenv("S3_ENDPOINT", "http://localhost:9000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", cfg.S3.Endpoint)
	assert.Equal(t, "us-east-1", cfg.S3.Region)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Host: "localhost", Port: 8080},
			Logger: LoggerConfig{Level: "info", Format: "json"},
			Site:   SiteConfig{BaseURL: "https://mazeegroup.net", DefaultLocale: model.LocaleEN},
		}
	}

	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
		errorMsg    string
	}{
		{
			name:   "Valid configuration",
			mutate: func(c *Config) {},
		},
		{
			name:        "Invalid - server port too high",
			mutate:      func(c *Config) { c.Server.Port = 99999 },
			expectError: true,
			errorMsg:    "invalid server port",
		},
		{
			name:        "Invalid - base URL scheme",
			mutate:      func(c *Config) { c.Site.BaseURL = "ftp://mazeegroup.net" },
			expectError: true,
			errorMsg:    "invalid site base URL",
		},
		{
			name:        "Invalid - S3 region missing",
			mutate:      func(c *Config) { c.S3 = S3Config{Enabled: true, Bucket: "b"} },
			expectError: true,
			errorMsg:    "S3 region is required",
		},
		{
			name:   "Valid - watching a directory",
			mutate: func(c *Config) { c.Data = DataConfig{Dir: "./data", Watch: true} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestServerConfig_Address(t *testing.T) {
	tests := []struct {
		name     string
		config   ServerConfig
		expected string
	}{
		{
			name:     "Standard configuration",
			config:   ServerConfig{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "All interfaces",
			config:   ServerConfig{Host: "0.0.0.0", Port: 9090},
			expected: "0.0.0.0:9090",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.Address())
		})
	}
}

func TestNewLogger(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	logger := newLogger(LoggerConfig{Level: "warn", Format: "json"}, &buf)

	logger.Info().Msg("dropped")
	logger.Warn().Str("component", "test").Msg("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "test", entry["component"])
	assert.Contains(t, entry, "time")
}

func TestNewLogger_Console(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	logger := newLogger(LoggerConfig{Level: "bogus", Format: "console"}, &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestGetEnv(t *testing.T) {
	os.Clearenv()

	os.Setenv("TEST_VAR", "test_value")
	assert.Equal(t, "test_value", getEnv("TEST_VAR", "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT_VAR", "default"))

	os.Clearenv()
}

func TestGetEnvAsInt(t *testing.T) {
	os.Clearenv()

	os.Setenv("TEST_INT", "42")
	assert.Equal(t, 42, getEnvAsInt("TEST_INT", 10))

	os.Setenv("TEST_INVALID", "not_a_number")
	assert.Equal(t, 10, getEnvAsInt("TEST_INVALID", 10))

	os.Clearenv()
}

func TestGetEnvAsBool(t *testing.T) {
	os.Clearenv()

	os.Setenv("TEST_BOOL", "true")
	assert.True(t, getEnvAsBool("TEST_BOOL", false))

	os.Setenv("TEST_BOOL_INVALID", "maybe")
	assert.True(t, getEnvAsBool("TEST_BOOL_INVALID", true))

	os.Clearenv()
}

func TestGetEnvAsDuration(t *testing.T) {
	os.Clearenv()

	os.Setenv("TEST_DURATION", "250ms")
	assert.Equal(t, 250*time.Millisecond, getEnvAsDuration("TEST_DURATION", time.Second))

	os.Setenv("TEST_DURATION_NEGATIVE", "-1s")
	assert.Equal(t, time.Second, getEnvAsDuration("TEST_DURATION_NEGATIVE", time.Second))

	os.Clearenv()
}
