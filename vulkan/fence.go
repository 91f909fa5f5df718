package vulkan

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/core/v2/core1_2"

	"github.com/onca-engine/ral"
)

func (d *deviceBackend) CreateFence() (ral.FenceBackend, error) {
	semaphore, res, err := d.device.CreateSemaphore(nil, core1_0.SemaphoreCreateInfo{
		NextOptions: common.NextOptions{
			Next: core1_2.SemaphoreTypeCreateInfo{
				SemaphoreType: core1_2.SemaphoreTypeTimeline,
				InitialValue:  0,
			},
		},
	})
	if err != nil {
		return nil, ralError(res, errors.Wrap(err, "creating a timeline semaphore"))
	}

	semaphore12 := core1_2.PromoteSemaphore(semaphore)
	if semaphore12 == nil {
		semaphore.Destroy(nil)
		return nil, errors.Wrap(ral.ErrMissingCapability,
			"the driver refused timeline semaphore promotion")
	}

	return &fenceBackend{
		device:    d.device12,
		semaphore: semaphore12,
	}, nil
}

// fenceBackend maps the RAL timeline fence directly onto a Vulkan 1.2
// timeline semaphore.
type fenceBackend struct {
	device    core1_2.Device
	semaphore core1_2.Semaphore
}

func (f *fenceBackend) Signal(value uint64) error {
	res, err := f.device.SignalSemaphore(core1_2.SemaphoreSignalInfo{
		Semaphore: f.semaphore,
		Value:     value,
	})
	return ralError(res, err)
}

func (f *fenceBackend) Wait(value uint64, timeout time.Duration) error {
	res, err := f.device.WaitSemaphores(timeout, core1_2.SemaphoreWaitInfo{
		Semaphores: []core1_0.Semaphore{f.semaphore},
		Values:     []uint64{value},
	})
	if err != nil {
		return ralError(res, err)
	}
	if res == core1_0.VKTimeout {
		return errors.Wrapf(ral.ErrTimeout,
			"fence did not reach %d within %s", value, timeout)
	}
	return nil
}

func (f *fenceBackend) Value() (uint64, error) {
	value, res, err := f.semaphore.CounterValue()
	return value, ralError(res, err)
}

func (f *fenceBackend) Destroy() {
	f.semaphore.Destroy(nil)
}
