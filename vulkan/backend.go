// Package vulkan implements the RAL backend contract on Vulkan 1.2
// through vkngwrapper. Importing the package registers the backend
// under the module name "vulkan".
package vulkan

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v2/khr_portability_enumeration"
	"golang.org/x/exp/slog"

	"github.com/onca-engine/ral"
)

func init() {
	ral.RegisterBackend(ral.BackendModule{
		Name:    "vulkan",
		Create:  createBackend,
		Destroy: destroyBackend,
	})
}

type backend struct {
	logger   *slog.Logger
	settings *ral.Settings

	loader         *core.VulkanLoader
	instance       core1_0.Instance
	debugMessenger ext_debug_utils.DebugUtilsMessenger
}

func createBackend(info ral.CreateInfo) (ral.Interface, error) {
	b := &backend{
		logger:   info.Logger,
		settings: info.Settings,
	}

	loader, err := core.CreateSystemLoader()
	if err != nil {
		return nil, errors.Wrap(err, "loading the system vulkan library")
	}
	b.loader = loader

	available, _, err := loader.AvailableExtensions()
	if err != nil {
		return nil, errors.Wrap(err, "querying instance extensions")
	}

	var extensionNames []string
	var layerNames []string
	var flags core1_0.InstanceCreateFlags
	var nextOptions common.NextOptions

	if _, ok := available[khr_portability_enumeration.ExtensionName]; ok {
		extensionNames = append(extensionNames, khr_portability_enumeration.ExtensionName)
		flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability
	}

	debug := info.Settings.Debug
	if debug.Enable {
		if _, ok := available[ext_debug_utils.ExtensionName]; ok {
			extensionNames = append(extensionNames, ext_debug_utils.ExtensionName)
			nextOptions.Next = b.messengerCreateInfo()
		} else {
			b.logger.Warn("debug requested but the debug utils extension is unavailable")
		}
		if debug.Validation {
			layerNames = append(layerNames, "VK_LAYER_KHRONOS_validation")
		}
	}

	appSettings := parseAPISettings(info.Settings)
	instance, _, err := loader.CreateInstance(nil, core1_0.InstanceCreateInfo{
		ApplicationName:       appSettings.AppName,
		ApplicationVersion:    common.CreateVersion(1, 0, 0),
		EngineName:            appSettings.EngineName,
		EngineVersion:         common.CreateVersion(1, 0, 0),
		APIVersion:            common.Vulkan1_2,
		EnabledExtensionNames: extensionNames,
		EnabledLayerNames:     layerNames,
		Flags:                 flags,
		NextOptions:           nextOptions,
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating the vulkan instance")
	}
	b.instance = instance

	if debug.Enable && instance.IsInstanceExtensionActive(ext_debug_utils.ExtensionName) {
		debugLoader := ext_debug_utils.CreateExtensionFromInstance(instance)
		b.debugMessenger, _, err = debugLoader.CreateDebugUtilsMessenger(instance, nil, b.messengerCreateInfo())
		if err != nil {
			instance.Destroy(nil)
			return nil, errors.Wrap(err, "creating the debug messenger")
		}
	}

	return b, nil
}

func destroyBackend(iface ral.Interface) error {
	return iface.Destroy()
}

func (b *backend) Settings() *ral.Settings {
	return b.settings
}

func (b *backend) Destroy() error {
	if b.debugMessenger != nil {
		b.debugMessenger.Destroy(nil)
		b.debugMessenger = nil
	}
	if b.instance != nil {
		b.instance.Destroy(nil)
		b.instance = nil
	}
	return nil
}

func (b *backend) messengerCreateInfo() ext_debug_utils.DebugUtilsMessengerCreateInfo {
	severity := ext_debug_utils.SeverityError
	switch b.settings.Debug.SlogLevel() {
	case slog.LevelWarn:
		severity |= ext_debug_utils.SeverityWarning
	case slog.LevelInfo:
		severity |= ext_debug_utils.SeverityWarning | ext_debug_utils.SeverityInfo
	case slog.LevelDebug:
		severity |= ext_debug_utils.SeverityWarning | ext_debug_utils.SeverityInfo | ext_debug_utils.SeverityVerbose
	}

	messageTypes := ext_debug_utils.TypeGeneral | ext_debug_utils.TypeValidation
	if b.settings.Debug.Performance {
		messageTypes |= ext_debug_utils.TypePerformance
	}

	return ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: severity,
		MessageType:     messageTypes,
		UserCallback:    b.logCallback,
	}
}

func (b *backend) logCallback(msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
	logger := b.logger.With(slog.String("source", "vulkan"), slog.String("type", msgType.String()))
	switch {
	case severity&ext_debug_utils.SeverityError != 0:
		logger.Error(data.Message)
	case severity&ext_debug_utils.SeverityWarning != 0:
		logger.Warn(data.Message)
	case severity&ext_debug_utils.SeverityInfo != 0:
		logger.Info(data.Message)
	default:
		logger.Debug(data.Message)
	}
	return false
}

// apiSettings is the vulkan table of the settings file.
type apiSettings struct {
	AppName    string
	EngineName string
}

func parseAPISettings(settings *ral.Settings) apiSettings {
	parsed := apiSettings{
		AppName:    "onca",
		EngineName: "onca",
	}
	// APISpecific already is the [vulkan] table, lifted by LoadSettings.
	if name, ok := settings.APISpecific["app-name"].(string); ok {
		parsed.AppName = name
	}
	if name, ok := settings.APISpecific["engine-name"].(string); ok {
		parsed.EngineName = name
	}
	return parsed
}
