package repository

import (
	"context"
	"errors"
	"strings"

	"hospital-bed-booking/internal/models"

	"gorm.io/gorm"
)

type HospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepo(db *gorm.DB) *HospitalRepository {
	return &HospitalRepository{db: db}
}

// List retrieves hospitals ordered by name, optionally filtered by a
// case-insensitive substring of the city
func (r *HospitalRepository) List(ctx context.Context, city string) ([]models.Hospital, error) {
	var hospitals []models.Hospital
	q := r.db.WithContext(ctx)
	if city = strings.TrimSpace(city); city != "" {
		q = q.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(city)+"%")
	}
	err := q.Order("name ASC").Find(&hospitals).Error
	return hospitals, err
}

// GetByID retrieves a hospital by ID
func (r *HospitalRepository) GetByID(ctx context.Context, id uint) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.db.WithContext(ctx).First(&hospital, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &hospital, nil
}

// Create inserts the hospital. When ownerID is set that user becomes the
// hospital's staff account in the same transaction.
func (r *HospitalRepository) Create(ctx context.Context, hospital *models.Hospital, ownerID *uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(hospital).Error; err != nil {
			return err
		}
		if ownerID == nil {
			return nil
		}
		return tx.Model(&models.User{}).
			Where("id = ?", *ownerID).
			Update("hospital_id", hospital.ID).Error
	})
}

// UpdateInventory replaces the hospital details and bed totals. Each
// availability counter moves by the change in its total and is clamped at zero;
// the adjustment is applied relative to the stored counter so it composes with
// concurrent bookings.
func (r *HospitalRepository) UpdateInventory(ctx context.Context, hospital *models.Hospital, totals models.BedCounts) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Hospital
		if err := tx.First(&existing, hospital.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		updates := map[string]interface{}{
			"name":    hospital.Name,
			"address": hospital.Address,
			"city":    hospital.City,
			"contact": hospital.Contact,
		}
		for _, bt := range models.BedTypes {
			newTotal := totals.Get(bt)
			delta := newTotal - existing.Total(bt)
			col := bt.AvailableColumn()
			updates[bt.TotalColumn()] = newTotal
			updates[col] = gorm.Expr("CASE WHEN "+col+" + ? < 0 THEN 0 ELSE "+col+" + ? END", delta, delta)
		}

		if err := tx.Model(&models.Hospital{}).Where("id = ?", hospital.ID).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(hospital, hospital.ID).Error
	})
}
