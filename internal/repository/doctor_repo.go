package repository

import (
	"context"
	"errors"

	"hospital-bed-booking/internal/models"

	"gorm.io/gorm"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepo(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// ListByHospital retrieves a hospital's doctors ordered by name
func (r *DoctorRepository) ListByHospital(ctx context.Context, hospitalID uint) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.WithContext(ctx).
		Where("hospital_id = ?", hospitalID).
		Order("name ASC").
		Find(&doctors).Error
	return doctors, err
}

// GetByID retrieves a doctor by ID
func (r *DoctorRepository) GetByID(ctx context.Context, id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.WithContext(ctx).First(&doctor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

// Create creates a new doctor
func (r *DoctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	return r.db.WithContext(ctx).Create(doctor).Error
}
