package appointment

import (
	"context"

	"github.com/BruksfildServices01/estetica-agenda/internal/models"
)

// Patch descreve uma atualização parcial: apenas campos não-nulos são
// aplicados sobre o registro existente, os demais ficam como estão.
type Patch struct {
	Date        *string
	ClientName  *string
	ClientEmail *string
	Service     *string
	Value       *float64
	Status      *Status
	Observation *string
}

// Apply faz o merge raso do patch sobre o registro.
func (p Patch) Apply(ap *models.Appointment) {
	if p.Date != nil {
		ap.Date = *p.Date
	}
	if p.ClientName != nil {
		ap.ClientName = *p.ClientName
	}
	if p.ClientEmail != nil {
		ap.ClientEmail = *p.ClientEmail
	}
	if p.Service != nil {
		ap.Service = *p.Service
	}
	if p.Value != nil {
		ap.Value = *p.Value
	}
	if p.Status != nil {
		ap.Status = string(*p.Status)
	}
	if p.Observation != nil {
		ap.Observation = *p.Observation
	}
}

// Store é o contrato de persistência da coleção de agendamentos.
//
// A coleção é uma sequência ordenada com os registros mais novos primeiro.
// Append insere no início sem checar unicidade de id; Update aplica merge
// parcial no primeiro registro com o id dado; Remove filtra todos os
// registros com o id dado.
type Store interface {
	LoadAll(ctx context.Context) ([]models.Appointment, error)

	Append(ctx context.Context, ap models.Appointment) error

	Update(ctx context.Context, id string, patch Patch) (bool, error)

	Remove(ctx context.Context, id string) (bool, error)
}
