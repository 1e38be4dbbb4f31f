package appointment

import (
	"context"
	"strconv"
	"time"

	"github.com/BruksfildServices01/estetica-agenda/internal/audit"
	domain "github.com/BruksfildServices01/estetica-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/estetica-agenda/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateManualInput struct {
	ClientName  string
	Service     string
	Date        string
	Value       float64
	Observation string
}

// ======================================================
// USE CASE
// ======================================================

// CreateManualAppointment cria um agendamento pelo painel admin. Registros
// manuais já nascem confirmados (pago no local ou acertado por fora) e
// recebem um e-mail placeholder.
type CreateManualAppointment struct {
	store domain.Store
	audit *audit.Dispatcher
}

func NewCreateManualAppointment(
	store domain.Store,
	audit *audit.Dispatcher,
) *CreateManualAppointment {
	return &CreateManualAppointment{
		store: store,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateManualAppointment) Execute(
	ctx context.Context,
	in CreateManualInput,
) (*models.Appointment, error) {

	observation := in.Observation
	if observation == "" {
		observation = "Agendamento Manual"
	}

	ap := models.Appointment{
		ID:          "MANUAL-" + strconv.FormatInt(time.Now().UnixMilli(), 10),
		Date:        in.Date,
		ClientName:  in.ClientName,
		ClientEmail: "agendamento@manual.com",
		Service:     in.Service,
		Value:       in.Value,
		Status:      string(domain.StatusConfirmed),
		Observation: observation,
	}

	if err := uc.store.Append(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return &ap, nil
}
