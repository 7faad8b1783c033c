package db

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fabclean/laundry-api/internal/config"
	"github.com/fabclean/laundry-api/internal/models"
)

// Seed provisions the default catalog and the bootstrap admin account when
// the corresponding tables are empty.
func Seed(db *gorm.DB, cfg *config.Config, log *logrus.Logger) error {
	if err := seedServices(db, log); err != nil {
		return err
	}
	return seedAdmin(db, cfg, log)
}

func seedServices(db *gorm.DB, log *logrus.Logger) error {
	var count int64
	if err := db.Model(&models.Service{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	services := []models.Service{
		{ID: "s1", Name: "Laundry", Price: 200, Duration: "24h", Status: "Active"},
		{ID: "s2", Name: "Dry Cleaning", Price: 300, Duration: "48h", Status: "Active"},
		{ID: "s3", Name: "Ironing", Price: 100, Duration: "12h", Status: "Active"},
		{ID: "s4", Name: "Premium Laundry", Price: 500, Duration: "24h", Status: "Active"},
	}

	if err := db.Create(&services).Error; err != nil {
		return err
	}

	log.WithField("count", len(services)).Info("seeded service catalog")
	return nil
}

func seedAdmin(db *gorm.DB, cfg *config.Config, log *logrus.Logger) error {
	var count int64
	if err := db.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.AdminUser{
		Name:         cfg.AdminName,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hashed),
		Role:         "admin",
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.WithField("email", admin.Email).Info("seeded bootstrap admin")
	return nil
}
