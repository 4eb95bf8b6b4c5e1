package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromMissingFile(t *testing.T) {
	config, err := LoadConfigFrom(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[suggest]
parse_time = true
hour = 14
minute = 30
fallback = ["tomorrow"]

[server]
addr = ":9000"
burst = 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadConfigFrom(path)
	require.NoError(t, err)

	require.True(t, config.Suggest.ParseTime)
	require.Equal(t, 14, config.Suggest.Hour)
	require.Equal(t, 30, config.Suggest.Minute)
	require.True(t, config.Suggest.ForwardDate)
	require.Equal(t, []string{"tomorrow"}, config.Suggest.Fallback)
	require.Equal(t, ":9000", config.Server.Addr)
	require.Equal(t, 5, config.Server.Burst)
	require.Equal(t, 30*time.Minute, config.Server.SessionTTL())
}

func TestLoadConfigFromNormalizesInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[suggest]
hour = 31
minute = -4

[server]
session_ttl_minutes = 0
rate_per_second = -1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadConfigFrom(path)
	require.NoError(t, err)

	defaults := DefaultConfig()
	require.Equal(t, defaults.Suggest.Hour, config.Suggest.Hour)
	require.Equal(t, defaults.Suggest.Minute, config.Suggest.Minute)
	require.Equal(t, defaults.Server.SessionTTLMinutes, config.Server.SessionTTLMinutes)
	require.Equal(t, defaults.Server.RatePerSecond, config.Server.RatePerSecond)
}

func TestLoadConfigFromBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[suggest\nhour = "), 0644))

	config, err := LoadConfigFrom(path)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), config)
}

func TestSaveDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	created, err := SaveDefaultConfig(path)
	require.NoError(t, err)
	require.True(t, created)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, defaultConfigContent, string(data))

	// The written file decodes to the defaults.
	config, err := LoadConfigFrom(path)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), config)

	require.NoError(t, os.WriteFile(path, []byte("# mine\n"), 0644))
	created, err = SaveDefaultConfig(path)
	require.NoError(t, err)
	require.False(t, created)

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "# mine\n", string(data))
}

func TestUserConfigPathFromEnv(t *testing.T) {
	t.Setenv("DATESUGGEST_CONFIG", "/tmp/custom/../datesuggest.toml")

	path, err := UserConfigPath()
	require.NoError(t, err)
	require.Equal(t, "/tmp/datesuggest.toml", path)
}

func TestSuggestConfigRequest(t *testing.T) {
	c := SuggestConfig{ParseTime: true, Hour: 8, Minute: 15, ForwardDate: true, Fallback: []string{"today"}}

	req := c.Request("fri")

	require.Equal(t, "fri", req.Query)
	require.True(t, req.ParseTime)
	require.Equal(t, 8, req.Hour)
	require.Equal(t, 15, req.Minute)
	require.True(t, req.Options.ForwardDate)
	require.Equal(t, []Suggestion{{Label: "today"}}, req.Fallback)
	require.True(t, req.Ref.IsZero())
}
