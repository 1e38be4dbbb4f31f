package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/estetica-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/estetica-agenda/internal/models"
)

// AppointmentGormStore implementa o mesmo contrato do arquivo JSON sobre
// Postgres. A ordem "mais novos primeiro" vem de created_at.
type AppointmentGormStore struct {
	db *gorm.DB
}

func NewAppointmentGormStore(db *gorm.DB) *AppointmentGormStore {
	return &AppointmentGormStore{db: db}
}

func (s *AppointmentGormStore) LoadAll(ctx context.Context) ([]models.Appointment, error) {
	var aps []models.Appointment
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&aps).Error; err != nil {
		return []models.Appointment{}, nil
	}
	if aps == nil {
		aps = []models.Appointment{}
	}
	return aps, nil
}

func (s *AppointmentGormStore) Append(ctx context.Context, ap models.Appointment) error {
	return s.db.WithContext(ctx).Create(&ap).Error
}

func (s *AppointmentGormStore) Update(ctx context.Context, id string, patch domain.Patch) (bool, error) {
	var found bool

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ap models.Appointment
		if err := tx.Where("id = ?", id).First(&ap).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		patch.Apply(&ap)
		if err := tx.Save(&ap).Error; err != nil {
			return err
		}

		found = true
		return nil
	})

	return found, err
}

func (s *AppointmentGormStore) Remove(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Appointment{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Compile-time check
var _ domain.Store = (*AppointmentGormStore)(nil)
