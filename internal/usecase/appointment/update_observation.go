package appointment

import (
	"context"

	"github.com/BruksfildServices01/estetica-agenda/internal/audit"
	domain "github.com/BruksfildServices01/estetica-agenda/internal/domain/appointment"
)

// UpdateObservation troca apenas o campo observation do registro,
// preservando todos os demais. É a única mutação pós-criação que existe.
type UpdateObservation struct {
	store domain.Store
	audit *audit.Dispatcher
}

func NewUpdateObservation(
	store domain.Store,
	audit *audit.Dispatcher,
) *UpdateObservation {
	return &UpdateObservation{
		store: store,
		audit: audit,
	}
}

func (uc *UpdateObservation) Execute(
	ctx context.Context,
	id string,
	observation string,
) (bool, error) {

	found, err := uc.store.Update(ctx, id, domain.Patch{
		Observation: &observation,
	})
	if err != nil || !found {
		return found, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "observation_updated",
		Entity:   "appointment",
		EntityID: id,
	})

	return true, nil
}
