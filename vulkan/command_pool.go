package vulkan

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/core1_0"

	"github.com/onca-engine/ral"
)

func (d *deviceBackend) CreateCommandPool(listType ral.CommandListType, flags ral.CommandPoolFlags) (ral.CommandPoolBackend, error) {
	var family int
	switch listType {
	case ral.CommandListTypeGraphics, ral.CommandListTypeBundle:
		family = d.families[ral.QueueTypeGraphics]
	case ral.CommandListTypeCompute:
		family = d.families[ral.QueueTypeCompute]
	case ral.CommandListTypeCopy:
		family = d.families[ral.QueueTypeCopy]
	default:
		return nil, errors.Newf("unknown command list type %v", listType)
	}

	var poolFlags core1_0.CommandPoolCreateFlags
	if flags&ral.CommandPoolFlagTransient != 0 {
		poolFlags |= core1_0.CommandPoolCreateTransient
	}
	if flags&ral.CommandPoolFlagResetList != 0 {
		poolFlags |= core1_0.CommandPoolCreateResetBuffer
	}

	pool, res, err := d.device.CreateCommandPool(nil, core1_0.CommandPoolCreateInfo{
		QueueFamilyIndex: family,
		Flags:            poolFlags,
	})
	if err != nil {
		return nil, ralError(res, errors.Wrapf(err, "creating a %v command pool", listType))
	}
	return &commandPoolBackend{pool: pool}, nil
}

type commandPoolBackend struct {
	pool core1_0.CommandPool
}

func (p *commandPoolBackend) Reset() error {
	res, err := p.pool.Reset(0)
	return ralError(res, err)
}

func (p *commandPoolBackend) Destroy() {
	p.pool.Destroy(nil)
}
