// Package testutil provides an in-memory store for package tests.
package testutil

import (
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"testing"

	"hospital-bed-booking/internal/database"
	"hospital-bed-booking/internal/models"
	"hospital-bed-booking/pkg/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

func init() {
	utils.BcryptCost = 4
}

// NewTestDB opens a private migrated in-memory SQLite database that lives
// until the test finishes.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, dbSeq.Add(1))

	db, err := database.Open(database.Target{Driver: database.DriverSQLite, DSN: dsn}, logger.Silent)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// CreateHospital inserts a hospital whose available counters equal its totals
func CreateHospital(t testing.TB, db *gorm.DB, name string, icu, oxygen, normal, ventilator int) *models.Hospital {
	t.Helper()
	h := &models.Hospital{
		Name:                name,
		Address:             "1 Test Rd",
		City:                "Pune",
		Contact:             "000",
		ICUTotal:            icu,
		OxygenTotal:         oxygen,
		NormalTotal:         normal,
		VentilatorTotal:     ventilator,
		ICUAvailable:        icu,
		OxygenAvailable:     oxygen,
		NormalAvailable:     normal,
		VentilatorAvailable: ventilator,
	}
	if err := db.Create(h).Error; err != nil {
		t.Fatalf("create hospital: %v", err)
	}
	return h
}

// CreateUser inserts a user with the given role and a throwaway password hash
func CreateUser(t testing.TB, db *gorm.DB, email string, role models.Role) *models.User {
	t.Helper()
	hash, err := utils.HashPassword("password123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := &models.User{Name: "Test " + string(role), Email: email, PasswordHash: hash, Role: role}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

// NewLogger returns a logger that discards output
func NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
