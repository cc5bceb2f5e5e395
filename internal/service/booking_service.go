package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hospital-bed-booking/internal/events"
	"hospital-bed-booking/internal/metrics"
	"hospital-bed-booking/internal/models"
	"hospital-bed-booking/internal/repository"

	"github.com/sirupsen/logrus"
)

type BookingService struct {
	bookingRepo  *repository.BookingRepository
	hospitalRepo *repository.HospitalRepository
	doctorRepo   *repository.DoctorRepository
	auditRepo    *repository.AuditRepository
	publisher    events.Publisher
	metrics      *metrics.Metrics
	log          *logrus.Logger
}

func NewBookingService(
	bookingRepo *repository.BookingRepository,
	hospitalRepo *repository.HospitalRepository,
	doctorRepo *repository.DoctorRepository,
	auditRepo *repository.AuditRepository,
	publisher events.Publisher,
	m *metrics.Metrics,
	log *logrus.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		hospitalRepo: hospitalRepo,
		doctorRepo:   doctorRepo,
		auditRepo:    auditRepo,
		publisher:    publisher,
		metrics:      m,
		log:          log,
	}
}

// BookingInput carries the booking form
type BookingInput struct {
	BedType  models.BedType
	Name     string
	Contact  string
	Symptoms string
	IDProof  string
	DoctorID uint
}

// DoctorChoice is one entry of the optional doctor select
type DoctorChoice struct {
	ID        uint   `json:"id"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

// BedTypeChoice is one entry of the bed type select
type BedTypeChoice struct {
	Value     models.BedType `json:"value"`
	Label     string         `json:"label"`
	Available int            `json:"available"`
}

// BookingForm is what the booking page needs to render
type BookingForm struct {
	Hospital *models.Hospital `json:"hospital"`
	BedTypes []BedTypeChoice  `json:"bed_types"`
	Doctors  []DoctorChoice   `json:"doctors"`
}

// Form loads the hospital with its bed types and doctors
func (s *BookingService) Form(ctx context.Context, hospitalID uint) (*BookingForm, error) {
	hospital, err := s.hospitalRepo.GetByID(ctx, hospitalID)
	if err != nil {
		return nil, err
	}

	doctors, err := s.doctorRepo.ListByHospital(ctx, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}

	form := &BookingForm{
		Hospital: hospital,
		BedTypes: make([]BedTypeChoice, 0, len(models.BedTypes)),
		Doctors:  make([]DoctorChoice, 0, len(doctors)),
	}
	for _, bt := range models.BedTypes {
		form.BedTypes = append(form.BedTypes, BedTypeChoice{Value: bt, Label: bt.Label(), Available: hospital.Available(bt)})
	}
	for i := range doctors {
		form.Doctors = append(form.Doctors, DoctorChoice{
			ID:        doctors[i].ID,
			Label:     doctors[i].ChoiceLabel(),
			Available: doctors[i].Available > 0,
		})
	}
	return form, nil
}

// Book reserves a bed (and optionally a doctor) for the actor
func (s *BookingService) Book(ctx context.Context, actor Actor, hospitalID uint, in BookingInput) (*models.Booking, error) {
	fields := fieldErrors{}
	fields.require("name", in.Name)
	fields.require("contact", in.Contact)
	if !in.BedType.Valid() {
		fields["bed_type"] = "must be icu, oxygen, normal or ventilator"
	}
	if err := fields.err(); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		PatientID:  actor.UserID,
		HospitalID: hospitalID,
		BedType:    in.BedType,
		Name:       strings.TrimSpace(in.Name),
		Contact:    strings.TrimSpace(in.Contact),
		Symptoms:   strings.TrimSpace(in.Symptoms),
		IDProof:    strings.TrimSpace(in.IDProof),
	}

	logger := s.log.WithFields(logrus.Fields{
		"hospital_id": hospitalID,
		"user_id":     actor.UserID,
		"bed_type":    in.BedType,
	})

	err := s.bookingRepo.Book(ctx, booking, in.DoctorID)
	switch {
	case err == nil:
		s.metrics.ObserveBooking(string(in.BedType), metrics.ResultConfirmed)
	case errors.Is(err, repository.ErrCapacityExhausted):
		s.metrics.ObserveBooking(string(in.BedType), metrics.ResultExhausted)
		logger.Info("booking rejected: no beds available")
		return nil, err
	case errors.Is(err, repository.ErrInvalidDoctor), errors.Is(err, repository.ErrDoctorUnavailable):
		s.metrics.ObserveBooking(string(in.BedType), metrics.ResultDoctorRejected)
		logger.WithField("doctor_id", in.DoctorID).Info("booking rejected: " + err.Error())
		return nil, err
	case errors.Is(err, repository.ErrNotFound):
		return nil, err
	default:
		s.metrics.ObserveBooking(string(in.BedType), metrics.ResultError)
		return nil, fmt.Errorf("failed to book bed: %w", err)
	}

	event := events.BookingEvent{
		Type:       events.TypeBookingConfirmed,
		BookingID:  booking.ID,
		HospitalID: booking.HospitalID,
		PatientID:  booking.PatientID,
		DoctorID:   booking.DoctorID,
		BedType:    string(booking.BedType),
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishBooking(ctx, event); err != nil {
		logger.WithError(err).Warn("failed to publish booking event")
	}

	_ = s.auditRepo.CreateAuditLog(ctx, &actor.UserID, "bed_booked", fmt.Sprintf("Booking %d: %s bed at hospital %d", booking.ID, booking.BedType, hospitalID))
	logger.WithField("booking_id", booking.ID).Info("booking confirmed")

	return booking, nil
}

// Get retrieves a booking. Patients only see their own.
func (s *BookingService) Get(ctx context.Context, actor Actor, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role == models.RolePatient && booking.PatientID != actor.UserID {
		return nil, ErrUnauthorized
	}
	return booking, nil
}

// ListMine retrieves the actor's bookings, newest first
func (s *BookingService) ListMine(ctx context.Context, actor Actor) ([]models.Booking, error) {
	bookings, err := s.bookingRepo.ListByPatient(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}
