package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/estetica-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/estetica-agenda/internal/models"
)

type ListAppointments struct {
	store domain.Store
}

func NewListAppointments(store domain.Store) *ListAppointments {
	return &ListAppointments{store: store}
}

func (uc *ListAppointments) Execute(ctx context.Context) ([]models.Appointment, error) {
	return uc.store.LoadAll(ctx)
}
