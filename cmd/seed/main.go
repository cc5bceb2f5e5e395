package main

import (
	"flag"
	"os"

	"hospital-bed-booking/internal/config"
	"hospital-bed-booking/internal/database"
	"hospital-bed-booking/pkg/logger"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.LoadConfig()

	adminPassword := flag.String("admin-password", envOr("ADMIN_PASSWORD", "adminpass"), "password for the seeded admin account")
	flag.Parse()

	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	db := database.Connect(cfg, log)

	result, err := database.Seed(db, *adminPassword)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.WithFields(logrus.Fields{
		"admin_created":     result.AdminCreated,
		"hospitals_created": result.HospitalsCreated,
	}).Info("Seed complete")
	if result.AdminCreated {
		log.Infof("Admin login: %s", database.SeedAdmin.Email)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
