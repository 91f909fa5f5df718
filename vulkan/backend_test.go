package vulkan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onca-engine/ral"
)

func TestParseAPISettingsDefaults(t *testing.T) {
	parsed := parseAPISettings(&ral.Settings{})
	require.Equal(t, "onca", parsed.AppName)
	require.Equal(t, "onca", parsed.EngineName)
}

func TestParseAPISettingsReadsLiftedTable(t *testing.T) {
	// Goes through LoadSettings so this breaks if the lifted-table shape
	// and the lookup ever drift apart again.
	settings, err := ral.LoadSettings([]byte(`
[common]
api = "vulkan"

[vulkan]
app-name = "demo"
engine-name = "demo engine"
`))
	require.NoError(t, err)

	parsed := parseAPISettings(settings)
	require.Equal(t, "demo", parsed.AppName)
	require.Equal(t, "demo engine", parsed.EngineName)
}

func TestParseAPISettingsIgnoresWrongTypes(t *testing.T) {
	parsed := parseAPISettings(&ral.Settings{
		APISpecific: map[string]interface{}{"app-name": 7},
	})
	require.Equal(t, "onca", parsed.AppName)
}
