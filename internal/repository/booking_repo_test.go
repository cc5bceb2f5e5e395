package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"hospital-bed-booking/internal/models"
	"hospital-bed-booking/internal/testutil"
)

func TestBook_DecrementsAndConfirms(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewBookingRepo(db)
	hospital := testutil.CreateHospital(t, db, "STAR Hospital", 5, 10, 20, 2)
	patient := testutil.CreateUser(t, db, "p@example.com", models.RolePatient)

	booking := &models.Booking{PatientID: patient.ID, HospitalID: hospital.ID, BedType: models.BedICU, Name: "A", Contact: "1"}
	if err := repo.Book(context.Background(), booking, 0); err != nil {
		t.Fatalf("book: %v", err)
	}

	if booking.ID == 0 || booking.Status != models.BookingConfirmed {
		t.Errorf("expected a confirmed booking, got %+v", booking)
	}

	var after models.Hospital
	db.First(&after, hospital.ID)
	if after.ICUAvailable != 4 {
		t.Errorf("expected icu_available 4, got %d", after.ICUAvailable)
	}
	if after.OxygenAvailable != 10 || after.NormalAvailable != 20 || after.VentilatorAvailable != 2 {
		t.Errorf("other counters changed: %+v", after)
	}
}

func TestBook_ExhaustedLeavesStateUnchanged(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewBookingRepo(db)
	hospital := testutil.CreateHospital(t, db, "Empty", 0, 1, 1, 0)
	patient := testutil.CreateUser(t, db, "p@example.com", models.RolePatient)

	for _, bt := range []models.BedType{models.BedICU, models.BedVentilator} {
		booking := &models.Booking{PatientID: patient.ID, HospitalID: hospital.ID, BedType: bt}
		err := repo.Book(context.Background(), booking, 0)
		if !errors.Is(err, ErrCapacityExhausted) {
			t.Errorf("%s: expected ErrCapacityExhausted, got %v", bt, err)
		}
	}

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no bookings, got %d", count)
	}
	var waiting int64
	db.Model(&models.Waitlist{}).Count(&waiting)
	if waiting != 0 {
		t.Errorf("expected no waitlist rows, got %d", waiting)
	}
}

func TestBook_UnknownHospital(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewBookingRepo(db)

	err := repo.Book(context.Background(), &models.Booking{PatientID: 1, HospitalID: 999, BedType: models.BedNormal}, 0)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBook_DoctorChecks(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewBookingRepo(db)
	ctx := context.Background()
	hospital := testutil.CreateHospital(t, db, "Apollo", 3, 3, 3, 3)
	other := testutil.CreateHospital(t, db, "Other", 3, 3, 3, 3)
	patient := testutil.CreateUser(t, db, "p@example.com", models.RolePatient)

	doctors := NewDoctorRepo(db)
	here := &models.Doctor{Name: "Dr Here", HospitalID: hospital.ID, Available: 1}
	elsewhere := &models.Doctor{Name: "Dr Elsewhere", HospitalID: other.ID, Available: 1}
	for _, d := range []*models.Doctor{here, elsewhere} {
		if err := doctors.Create(ctx, d); err != nil {
			t.Fatalf("create doctor: %v", err)
		}
	}

	tests := []struct {
		name     string
		doctorID uint
		wantErr  error
	}{
		{"missing_doctor", 999, ErrInvalidDoctor},
		{"doctor_at_other_hospital", elsewhere.ID, ErrInvalidDoctor},
		{"doctor_free", here.ID, nil},
		{"doctor_now_busy", here.ID, ErrDoctorUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := &models.Booking{PatientID: patient.ID, HospitalID: hospital.ID, BedType: models.BedOxygen}
			err := repo.Book(ctx, booking, tt.doctorID)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil && (booking.DoctorID == nil || *booking.DoctorID != tt.doctorID) {
				t.Errorf("expected doctor %d on booking, got %v", tt.doctorID, booking.DoctorID)
			}
		})
	}

	var h models.Hospital
	db.First(&h, hospital.ID)
	if h.OxygenAvailable != 2 {
		t.Errorf("expected only the successful booking to consume a bed, got oxygen_available %d", h.OxygenAvailable)
	}
	d, _ := doctors.GetByID(ctx, here.ID)
	if d.Available != 0 {
		t.Errorf("expected doctor slot consumed, got %d", d.Available)
	}
}

func TestBook_ConcurrentRequestsNeverOversell(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewBookingRepo(db)
	hospital := testutil.CreateHospital(t, db, "Scarce", 3, 0, 0, 0)
	patient := testutil.CreateUser(t, db, "p@example.com", models.RolePatient)

	const attempts = 10
	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.Book(context.Background(), &models.Booking{PatientID: patient.ID, HospitalID: hospital.ID, BedType: models.BedICU}, 0)
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case !errors.Is(err, ErrCapacityExhausted):
			t.Errorf("unexpected error: %v", err)
		}
	}
	if succeeded != 3 {
		t.Errorf("expected 3 successful bookings, got %d", succeeded)
	}

	var h models.Hospital
	db.First(&h, hospital.ID)
	if h.ICUAvailable != 0 {
		t.Errorf("expected icu_available 0, got %d", h.ICUAvailable)
	}
}

func TestListByPatient_NewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewBookingRepo(db)
	ctx := context.Background()
	hospital := testutil.CreateHospital(t, db, "STAR", 5, 5, 5, 5)
	alice := testutil.CreateUser(t, db, "alice@example.com", models.RolePatient)
	bob := testutil.CreateUser(t, db, "bob@example.com", models.RolePatient)

	for _, bt := range []models.BedType{models.BedICU, models.BedNormal} {
		if err := repo.Book(ctx, &models.Booking{PatientID: alice.ID, HospitalID: hospital.ID, BedType: bt}, 0); err != nil {
			t.Fatalf("book: %v", err)
		}
	}
	if err := repo.Book(ctx, &models.Booking{PatientID: bob.ID, HospitalID: hospital.ID, BedType: models.BedOxygen}, 0); err != nil {
		t.Fatalf("book: %v", err)
	}

	bookings, err := repo.ListByPatient(ctx, alice.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(bookings) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(bookings))
	}
	if bookings[0].BedType != models.BedNormal {
		t.Errorf("expected newest booking first, got %s", bookings[0].BedType)
	}
	if bookings[0].Hospital == nil || bookings[0].Hospital.Name != "STAR" {
		t.Errorf("expected hospital to be preloaded")
	}

	count, err := repo.CountByHospital(ctx, hospital.ID)
	if err != nil || count != 3 {
		t.Errorf("expected 3 bookings at hospital, got %d (%v)", count, err)
	}
}
