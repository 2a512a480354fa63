package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nzai/pubapi/constants"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParse_Defaults(t *testing.T) {
	c, err := Parse("")
	require.NoError(t, err)
	require.Equal(t, constants.AlphaVantageURL, c.AlphaVantage.Endpoint)
	require.Equal(t, constants.ApodURL, c.Apod.Endpoint)
	require.Equal(t, ".", c.Apod.OutputDir)
	require.Equal(t, constants.RequestTimeout, c.Timeout())
	require.Same(t, c, Get())
}

func TestParse_File(t *testing.T) {
	path := writeFile(t, "config.toml", `
[alphavantage]
api_key = "from-file"

[apod]
output_dir = "/tmp/apod"

[http]
timeout_seconds = 9

[chart]
width_inch = 8
height_inch = 4

[log]
level = "debug"
`)

	c, err := Parse(path)
	require.NoError(t, err)
	require.Equal(t, "from-file", c.AlphaVantage.APIKey)
	require.Equal(t, constants.AlphaVantageURL, c.AlphaVantage.Endpoint)
	require.Equal(t, "/tmp/apod", c.Apod.OutputDir)
	require.Equal(t, 9*time.Second, c.Timeout())
	require.Equal(t, 8.0, c.Chart.WidthInch)
	require.Equal(t, "debug", c.Log.Level)
}

func TestParse_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
alphavantage:
  api_key: from-yaml
http:
  timeout_seconds: 3
log:
  level: warn
`)

	c, err := Parse(path)
	require.NoError(t, err)
	require.Equal(t, "from-yaml", c.AlphaVantage.APIKey)
	require.Equal(t, 3*time.Second, c.Timeout())
	require.Equal(t, "warn", c.Log.Level)
	require.Equal(t, 10.0, c.Chart.WidthInch)

	_, err = Parse(writeFile(t, "config.yml", "http: [1"))
	require.ErrorIs(t, err, constants.ErrConfig)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"syntax":           `[http`,
		"negative timeout": "[http]\ntimeout_seconds = -1",
		"zero chart":       "[chart]\nwidth_inch = 0",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(writeFile(t, "config.toml", content))
			require.ErrorIs(t, err, constants.ErrConfig)
		})
	}

	_, err := Parse(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, constants.ErrConfig)
}

func TestConfig_APIKey(t *testing.T) {
	c := Default()
	c.AlphaVantage.APIKey = "from-file"

	t.Setenv(constants.AlphaVantageKeyEnv, "from-env")
	key, err := c.APIKey()
	require.NoError(t, err)
	require.Equal(t, "from-env", key)

	t.Setenv(constants.AlphaVantageKeyEnv, "")
	key, err = c.APIKey()
	require.NoError(t, err)
	require.Equal(t, "from-file", key)

	c.AlphaVantage.APIKey = " "
	_, err = c.APIKey()
	require.ErrorIs(t, err, constants.ErrConfig)
	require.Contains(t, err.Error(), constants.AlphaVantageKeyEnv)
}

func TestParse_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(constants.AlphaVantageKeyEnv+"=from-dotenv\n"), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	// unset, godotenv never overrides a variable already present
	t.Setenv(constants.AlphaVantageKeyEnv, "")
	os.Unsetenv(constants.AlphaVantageKeyEnv)

	c, err := Parse("")
	require.NoError(t, err)

	key, err := c.APIKey()
	require.NoError(t, err)
	require.Equal(t, "from-dotenv", key)
}
