package repository

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	domain "github.com/BruksfildServices01/estetica-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/estetica-agenda/internal/models"
)

// AppointmentFileStore persiste a coleção inteira num único arquivo JSON,
// reescrito por completo a cada mutação. O mutex serializa as mutações
// dentro do processo; o formato no disco é o contrato, não o mecanismo.
type AppointmentFileStore struct {
	path string
	mu   sync.Mutex
}

func NewAppointmentFileStore(path string) *AppointmentFileStore {
	return &AppointmentFileStore{path: path}
}

// --------------------------------------------------
// Leitura
// --------------------------------------------------

// LoadAll devolve a coleção, mais novos primeiro. Arquivo ausente ou
// corrompido vale como coleção vazia — nunca erra na leitura.
func (s *AppointmentFileStore) LoadAll(ctx context.Context) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(), nil
}

func (s *AppointmentFileStore) load() []models.Appointment {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []models.Appointment{}
	}

	var aps []models.Appointment
	if err := json.Unmarshal(data, &aps); err != nil {
		return []models.Appointment{}
	}
	if aps == nil {
		aps = []models.Appointment{}
	}
	return aps
}

func (s *AppointmentFileStore) save(aps []models.Appointment) error {
	data, err := json.MarshalIndent(aps, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// --------------------------------------------------
// Mutações
// --------------------------------------------------

func (s *AppointmentFileStore) Append(ctx context.Context, ap models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	aps := s.load()
	aps = append([]models.Appointment{ap}, aps...)
	return s.save(aps)
}

func (s *AppointmentFileStore) Update(ctx context.Context, id string, patch domain.Patch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	aps := s.load()
	for i := range aps {
		if aps[i].ID == id {
			patch.Apply(&aps[i])
			if err := s.save(aps); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (s *AppointmentFileStore) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	aps := s.load()
	kept := aps[:0:0]
	for _, ap := range aps {
		if ap.ID != id {
			kept = append(kept, ap)
		}
	}

	if len(kept) == len(aps) {
		return false, nil
	}
	if err := s.save(kept); err != nil {
		return false, err
	}
	return true, nil
}

// Compile-time check
var _ domain.Store = (*AppointmentFileStore)(nil)
