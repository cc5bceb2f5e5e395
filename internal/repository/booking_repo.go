package repository

import (
	"context"
	"errors"

	"hospital-bed-booking/internal/models"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepo(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Book reserves one bed of booking.BedType at booking.HospitalID and, when
// doctorID is non-zero, one slot of that doctor. The counter decrements and
// the booking insert commit together or not at all.
//
// Each decrement is a single conditional UPDATE guarded by "> 0"; zero rows
// affected means another request took the last unit between our read and
// write, and the whole transaction is rolled back.
func (r *BookingRepository) Book(ctx context.Context, booking *models.Booking, doctorID uint) error {
	col := booking.BedType.AvailableColumn()
	if col == "" {
		return errors.New("unknown bed type: " + string(booking.BedType))
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var hospital models.Hospital
		if err := tx.First(&hospital, booking.HospitalID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if hospital.Available(booking.BedType) <= 0 {
			return ErrCapacityExhausted
		}

		if doctorID != 0 {
			var doctor models.Doctor
			err := tx.First(&doctor, doctorID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidDoctor
			}
			if err != nil {
				return err
			}
			if doctor.HospitalID != hospital.ID {
				return ErrInvalidDoctor
			}
			if doctor.Available <= 0 {
				return ErrDoctorUnavailable
			}
		}

		res := tx.Model(&models.Hospital{}).
			Where("id = ? AND "+col+" > 0", hospital.ID).
			UpdateColumn(col, gorm.Expr(col+" - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrCapacityExhausted
		}

		if doctorID != 0 {
			res := tx.Model(&models.Doctor{}).
				Where("id = ? AND available > 0", doctorID).
				UpdateColumn("available", gorm.Expr("available - 1"))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrDoctorUnavailable
			}
			booking.DoctorID = &doctorID
		}

		booking.Status = models.BookingConfirmed
		return tx.Create(booking).Error
	})
}

// GetByID retrieves a booking with its hospital and doctor
func (r *BookingRepository) GetByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Preload("Hospital").
		Preload("Doctor").
		First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// ListByPatient retrieves a patient's bookings, newest first
func (r *BookingRepository) ListByPatient(ctx context.Context, patientID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Preload("Hospital").
		Order("created_at DESC, id DESC").
		Find(&bookings).Error
	return bookings, err
}

// CountByHospital counts bookings made at a hospital
func (r *BookingRepository) CountByHospital(ctx context.Context, hospitalID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("hospital_id = ?", hospitalID).
		Count(&count).Error
	return count, err
}
