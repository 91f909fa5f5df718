package vulkan

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"

	"github.com/onca-engine/ral"
)

// ralError folds a vkngwrapper (result, error) pair into a single error
// carrying the matching RAL sentinel in its chain, so callers above the
// backend boundary can errors.Is against ral errors without knowing Vulkan.
func ralError(res common.VkResult, err error) error {
	if err == nil {
		return nil
	}
	switch res {
	case core1_0.VKErrorOutOfHostMemory:
		return errors.Wrapf(ral.ErrOutOfHostMemory, "%v", err)
	case core1_0.VKErrorOutOfDeviceMemory:
		return errors.Wrapf(ral.ErrOutOfDeviceMemory, "%v", err)
	case core1_0.VKErrorDeviceLost:
		return errors.Wrapf(ral.ErrDeviceLost, "%v", err)
	case core1_0.VKErrorFormatNotSupported:
		return errors.Wrapf(ral.ErrUnsupportedFormat, "%v", err)
	case core1_0.VKErrorFeatureNotPresent, core1_0.VKErrorExtensionNotPresent, core1_0.VKErrorLayerNotPresent:
		return errors.Wrapf(ral.ErrMissingCapability, "%v", err)
	}
	return err
}
