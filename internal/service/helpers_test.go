package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"hospital-bed-booking/internal/events"
	"hospital-bed-booking/internal/metrics"
	"hospital-bed-booking/internal/repository"
	"hospital-bed-booking/internal/testutil"
	"hospital-bed-booking/pkg/utils"

	"gorm.io/gorm"
)

type fakePublisher struct {
	events []events.BookingEvent
	err    error
}

func (p *fakePublisher) PublishBooking(_ context.Context, e events.BookingEvent) error {
	p.events = append(p.events, e)
	return p.err
}

func (p *fakePublisher) Close() error { return nil }

type fixture struct {
	db        *gorm.DB
	auth      *AuthService
	hospitals *HospitalService
	bookings  *BookingService
	sweeper   *TokenSweeper
	publisher *fakePublisher
	metrics   *metrics.Metrics
	users     *repository.UserRepository
	doctors   *repository.DoctorRepository
	audit     *repository.AuditRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	log := testutil.NewLogger()

	userRepo := repository.NewUserRepo(db)
	hospitalRepo := repository.NewHospitalRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	issuer := utils.NewTokenIssuer("test-secret", time.Hour, 24*time.Hour)
	pub := &fakePublisher{}
	m := metrics.New()

	return &fixture{
		db:        db,
		auth:      NewAuthService(userRepo, auditRepo, issuer, log),
		hospitals: NewHospitalService(hospitalRepo, userRepo, auditRepo, log),
		bookings:  NewBookingService(bookingRepo, hospitalRepo, doctorRepo, auditRepo, pub, m, log),
		sweeper:   NewTokenSweeper(userRepo, m, log, "@every 1h"),
		publisher: pub,
		metrics:   m,
		users:     userRepo,
		doctors:   doctorRepo,
		audit:     auditRepo,
	}
}

func assertValidationField(t *testing.T, err error, field string) {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("expected field %q in %v", field, verr.Fields)
	}
}
