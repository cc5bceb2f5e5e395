package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hospital-bed-booking/internal/models"
	"hospital-bed-booking/internal/repository"

	"github.com/sirupsen/logrus"
)

type HospitalService struct {
	hospitalRepo *repository.HospitalRepository
	userRepo     *repository.UserRepository
	auditRepo    *repository.AuditRepository
	log          *logrus.Logger
}

func NewHospitalService(hospitalRepo *repository.HospitalRepository, userRepo *repository.UserRepository, auditRepo *repository.AuditRepository, log *logrus.Logger) *HospitalService {
	return &HospitalService{
		hospitalRepo: hospitalRepo,
		userRepo:     userRepo,
		auditRepo:    auditRepo,
		log:          log,
	}
}

// HospitalInput carries the create/edit form
type HospitalInput struct {
	Name    string
	Address string
	City    string
	Contact string
	Beds    models.BedCounts
}

func (in HospitalInput) validate() error {
	fields := fieldErrors{}
	fields.require("name", in.Name)
	for _, bt := range models.BedTypes {
		if in.Beds.Get(bt) < 0 {
			fields[bt.TotalColumn()] = "must not be negative"
		}
	}
	return fields.err()
}

// List retrieves hospitals, optionally filtered by city
func (s *HospitalService) List(ctx context.Context, city string) ([]models.Hospital, error) {
	hospitals, err := s.hospitalRepo.List(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("failed to list hospitals: %w", err)
	}
	return hospitals, nil
}

// Get retrieves a hospital by ID
func (s *HospitalService) Get(ctx context.Context, id uint) (*models.Hospital, error) {
	return s.hospitalRepo.GetByID(ctx, id)
}

// Availability returns the current free beds per type
func (s *HospitalService) Availability(ctx context.Context, id uint) (*models.Availability, error) {
	hospital, err := s.hospitalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	availability := models.AvailabilityOf(hospital)
	return &availability, nil
}

// GetForEdit retrieves a hospital the actor is allowed to edit
func (s *HospitalService) GetForEdit(ctx context.Context, actor Actor, id uint) (*models.Hospital, error) {
	hospital, err := s.hospitalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeEdit(ctx, actor, id); err != nil {
		return nil, err
	}
	return hospital, nil
}

// Create registers a hospital with every bed free. A hospital-role creator
// becomes the hospital's staff account.
func (s *HospitalService) Create(ctx context.Context, actor Actor, in HospitalInput) (*models.Hospital, error) {
	if actor.Role != models.RoleHospital && actor.Role != models.RoleAdmin {
		return nil, ErrUnauthorized
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	hospital := &models.Hospital{
		Name:                strings.TrimSpace(in.Name),
		Address:             strings.TrimSpace(in.Address),
		City:                strings.TrimSpace(in.City),
		Contact:             strings.TrimSpace(in.Contact),
		ICUTotal:            in.Beds.ICU,
		OxygenTotal:         in.Beds.Oxygen,
		NormalTotal:         in.Beds.Normal,
		VentilatorTotal:     in.Beds.Ventilator,
		ICUAvailable:        in.Beds.ICU,
		OxygenAvailable:     in.Beds.Oxygen,
		NormalAvailable:     in.Beds.Normal,
		VentilatorAvailable: in.Beds.Ventilator,
	}

	var owner *uint
	if actor.Role == models.RoleHospital {
		owner = &actor.UserID
	}
	if err := s.hospitalRepo.Create(ctx, hospital, owner); err != nil {
		return nil, fmt.Errorf("failed to create hospital: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, &actor.UserID, "hospital_created", fmt.Sprintf("Hospital %d (%s) created", hospital.ID, hospital.Name))
	s.log.WithFields(logrus.Fields{"hospital_id": hospital.ID, "user_id": actor.UserID}).Info("hospital created")

	return hospital, nil
}

// Edit replaces a hospital's details and totals. Free counters follow the
// change in total and never drop below zero.
func (s *HospitalService) Edit(ctx context.Context, actor Actor, id uint, in HospitalInput) (*models.Hospital, error) {
	if _, err := s.hospitalRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.authorizeEdit(ctx, actor, id); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	hospital := &models.Hospital{
		ID:      id,
		Name:    strings.TrimSpace(in.Name),
		Address: strings.TrimSpace(in.Address),
		City:    strings.TrimSpace(in.City),
		Contact: strings.TrimSpace(in.Contact),
	}
	if err := s.hospitalRepo.UpdateInventory(ctx, hospital, in.Beds); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update hospital: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, &actor.UserID, "hospital_updated", fmt.Sprintf("Hospital %d totals icu=%d oxygen=%d normal=%d ventilator=%d",
		id, in.Beds.ICU, in.Beds.Oxygen, in.Beds.Normal, in.Beds.Ventilator))
	s.log.WithFields(logrus.Fields{"hospital_id": id, "user_id": actor.UserID}).Info("hospital updated")

	return hospital, nil
}

// authorizeEdit allows admins, and hospital staff on their own hospital
func (s *HospitalService) authorizeEdit(ctx context.Context, actor Actor, hospitalID uint) error {
	switch actor.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleHospital:
		user, err := s.userRepo.FindByID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrUnauthorized
			}
			return fmt.Errorf("failed to load user: %w", err)
		}
		if user.OwnsHospital(hospitalID) {
			return nil
		}
	}
	return ErrUnauthorized
}
