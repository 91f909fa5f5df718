package ral_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/onca-engine/ral"
)

func TestLoadSettings(t *testing.T) {
	settings, err := ral.LoadSettings([]byte(`
[common]
api = "vulkan"

[debug]
enable = true
validation = true
log-level = "warning"

[vulkan]
app-name = "demo"
`))
	require.NoError(t, err)
	require.Equal(t, ral.APIVulkan, settings.API)
	require.True(t, settings.Debug.Enable)
	require.True(t, settings.Debug.Validation)
	require.False(t, settings.Debug.Performance)
	require.Equal(t, slog.LevelWarn, settings.Debug.SlogLevel())
	require.Equal(t, "demo", settings.APISpecific["app-name"])
}

func TestLoadSettingsDefaults(t *testing.T) {
	settings, err := ral.LoadSettings([]byte("[common]\napi = \"dx12\"\n"))
	require.NoError(t, err)
	require.Equal(t, ral.APIDX12, settings.API)
	require.False(t, settings.Debug.Enable)
	require.Equal(t, slog.LevelError, settings.Debug.SlogLevel())
	require.Nil(t, settings.APISpecific)
}

func TestLoadSettingsMissingAPI(t *testing.T) {
	_, err := ral.LoadSettings([]byte("[debug]\nenable = true\n"))
	require.ErrorIs(t, err, ral.ErrInvalidParameter)
}

func TestLoadSettingsBadToml(t *testing.T) {
	_, err := ral.LoadSettings([]byte("not toml ["))
	require.ErrorIs(t, err, ral.ErrInvalidParameter)
}

func TestAPIModuleName(t *testing.T) {
	require.Equal(t, "vulkan", ral.APIVulkan.ModuleName())
	require.Equal(t, "dx12", ral.APIDX12.ModuleName())
	require.Equal(t, "software", ral.APISoftware.ModuleName())
	// Unknown APIs resolve to prefixed module names.
	require.Equal(t, "onca_ral_myapi", ral.API("myapi").ModuleName())
}
