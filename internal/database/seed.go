package database

import (
	"errors"
	"fmt"

	"hospital-bed-booking/internal/models"
	"hospital-bed-booking/pkg/utils"

	"gorm.io/gorm"
)

// SeedAdmin is the account created by Seed when no admin exists yet
var SeedAdmin = models.User{
	Name:  "Admin User",
	Email: "admin@example.com",
	Phone: "9999999999",
	Role:  models.RoleAdmin,
}

// SampleHospitals are inserted by Seed with every bed available
var SampleHospitals = []models.Hospital{
	{Name: "STAR Hospital", Address: "123 Star Rd", City: "Pune", Contact: "+91-20-12345678", ICUTotal: 5, OxygenTotal: 10, NormalTotal: 20, VentilatorTotal: 2},
	{Name: "Apollo General", Address: "45 Apollo Ave", City: "Pune", Contact: "+91-20-87654321", ICUTotal: 3, OxygenTotal: 8, NormalTotal: 15, VentilatorTotal: 1},
	{Name: "City Care", Address: "12 City St", City: "Pune", Contact: "+91-20-11112222", ICUTotal: 2, OxygenTotal: 5, NormalTotal: 10},
	{Name: "Green Valley Hospital", Address: "9 Green Ln", City: "Pune", Contact: "+91-20-33334444", ICUTotal: 4, OxygenTotal: 6, NormalTotal: 12, VentilatorTotal: 1},
	{Name: "Oceanview Clinic", Address: "77 Sea Blvd", City: "Pune", Contact: "+91-20-55556666", ICUTotal: 1, OxygenTotal: 3, NormalTotal: 6},
	{Name: "Sunrise Health", Address: "101 Sunrise Dr", City: "Pune", Contact: "+91-20-77778888", ICUTotal: 6, OxygenTotal: 12, NormalTotal: 25, VentilatorTotal: 3},
}

// SeedResult reports what Seed inserted
type SeedResult struct {
	AdminCreated     bool
	HospitalsCreated int
}

// Seed inserts the admin account and the sample hospitals. Existing rows
// (matched by email or hospital name) are left untouched.
func Seed(db *gorm.DB, adminPassword string) (*SeedResult, error) {
	result := &SeedResult{}

	err := db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.Where("email = ?", SeedAdmin.Email).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			hash, err := utils.HashPassword(adminPassword)
			if err != nil {
				return fmt.Errorf("hash admin password: %w", err)
			}
			admin := SeedAdmin
			admin.PasswordHash = hash
			if err := tx.Create(&admin).Error; err != nil {
				return fmt.Errorf("create admin: %w", err)
			}
			result.AdminCreated = true
		case err != nil:
			return err
		}

		for _, sample := range SampleHospitals {
			var count int64
			if err := tx.Model(&models.Hospital{}).Where("name = ?", sample.Name).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			h := sample
			h.ICUAvailable = h.ICUTotal
			h.OxygenAvailable = h.OxygenTotal
			h.NormalAvailable = h.NormalTotal
			h.VentilatorAvailable = h.VentilatorTotal
			if err := tx.Create(&h).Error; err != nil {
				return fmt.Errorf("create hospital %s: %w", h.Name, err)
			}
			result.HospitalsCreated++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
