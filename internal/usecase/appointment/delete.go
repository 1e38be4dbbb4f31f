package appointment

import (
	"context"

	"github.com/BruksfildServices01/estetica-agenda/internal/audit"
	domain "github.com/BruksfildServices01/estetica-agenda/internal/domain/appointment"
)

type DeleteAppointment struct {
	store domain.Store
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	store domain.Store,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		store: store,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(ctx context.Context, id string) (bool, error) {
	removed, err := uc.store.Remove(ctx, id)
	if err != nil || !removed {
		return removed, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: id,
	})

	return true, nil
}
