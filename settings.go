package ral

import (
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/slog"
)

// API names a native-API backend. The three well-known names resolve to
// backend modules registered under the same name; any other value is
// resolved to a module named "onca_ral_<name>".
type API string

const (
	APIDX12     API = "dx12"
	APIVulkan   API = "vulkan"
	APISoftware API = "software"
)

// ModuleName returns the backend module name the API resolves to.
func (a API) ModuleName() string {
	switch a {
	case APIDX12, APIVulkan, APISoftware:
		return string(a)
	default:
		return "onca_ral_" + string(a)
	}
}

func (a API) String() string {
	switch a {
	case APIDX12:
		return "DirectX 12"
	case APIVulkan:
		return "Vulkan"
	case APISoftware:
		return "Software"
	default:
		return string(a)
	}
}

// DebugSettings is the `debug` table of the settings file.
type DebugSettings struct {
	// Enable turns the backend's debug machinery on as a whole.
	Enable bool `toml:"enable"`
	// Validation enables the native API's validation layer.
	Validation bool `toml:"validation"`
	// Performance enables performance warnings.
	Performance bool `toml:"performance"`
	// GpuBasedValidation enables GPU-based validation.
	GpuBasedValidation bool `toml:"gpu-based-validation"`
	// GbvStateTracking enables state tracking for GPU-based validation.
	GbvStateTracking bool `toml:"gbv-state-tracking"`
	// Dcqs enables dependent command queue synchronization diagnostics.
	Dcqs bool `toml:"dcqs"`
	// AutoNaming names GPU objects automatically.
	AutoNaming bool `toml:"auto-naming"`
	// LogLevel is one of verbose, info, warning, error. Anything else,
	// including absence, means error.
	LogLevel string `toml:"log-level"`
}

// SlogLevel maps the configured debug log level onto slog.
func (d *DebugSettings) SlogLevel() slog.Level {
	switch d.LogLevel {
	case "verbose":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warning":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// Settings is the parsed RAL configuration.
type Settings struct {
	API   API
	Debug DebugSettings
	// APISpecific is the table named after the chosen API, forwarded to
	// the backend opaquely.
	APISpecific map[string]interface{}
}

// LoadSettings parses a settings document. The `common.api` field is
// required; the `debug` table and the per-API table are optional.
func LoadSettings(data []byte) (*Settings, error) {
	var raw struct {
		Common struct {
			API string `toml:"api"`
		} `toml:"common"`
		Debug DebugSettings `toml:"debug"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, invalidParameterf("failed to parse RAL settings: %v", err)
	}
	if raw.Common.API == "" {
		return nil, invalidParameterf("RAL settings specify no api")
	}

	settings := &Settings{
		API:   API(raw.Common.API),
		Debug: raw.Debug,
	}

	// The backend-specific table is keyed by the api name itself and its
	// shape is the backend's business, so it is lifted out of a generic
	// decode and forwarded as-is.
	var tables map[string]interface{}
	if err := toml.Unmarshal(data, &tables); err != nil {
		return nil, invalidParameterf("failed to parse RAL settings: %v", err)
	}
	if apiTable, ok := tables[string(settings.API)].(map[string]interface{}); ok {
		settings.APISpecific = apiTable
	}

	return settings, nil
}
