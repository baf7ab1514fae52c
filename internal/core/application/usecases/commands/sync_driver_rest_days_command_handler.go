package commands

import (
	"context"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/driver"
)

// SyncDriverRestDaysCommandHandler applies the weekly rest-day schedule
// to the whole fleet in one transaction. Busy drivers are never touched:
// a rest day starting mid-delivery begins once the order completes.
type SyncDriverRestDaysCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewSyncDriverRestDaysCommandHandler creates a handler for rest-day syncs.
func NewSyncDriverRestDaysCommandHandler(uowFactory DriverUoWFactory) SyncDriverRestDaysCommandHandler {
	return SyncDriverRestDaysCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sync command.
func (h *SyncDriverRestDaysCommandHandler) Handle(ctx context.Context, cmd SyncDriverRestDaysCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	drivers, err := driverRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	for _, drv := range drivers {
		changed, syncErr := h.syncDriver(drv, cmd.Day())
		if syncErr != nil {
			return syncErr
		}
		if !changed {
			continue
		}

		if err = driverRepo.Update(ctx, drv); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h *SyncDriverRestDaysCommandHandler) syncDriver(drv *driver.Driver, day string) (bool, error) {
	switch drv.Status() {
	case driver.Available:
		if !drv.RestsOn(day) {
			return false, nil
		}
		if err := drv.StartRestDay(); err != nil {
			return false, err
		}
		return true, nil

	case driver.Off:
		if drv.RestsOn(day) {
			return false, nil
		}
		drv.EndRestDay()
		return true, nil

	default:
		return false, nil
	}
}
