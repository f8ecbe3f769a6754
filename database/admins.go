package database

import (
	"errors"
	"log"

	"waitlist/models"
	"waitlist/services"

	"gorm.io/gorm"
)

type AdminStore struct {
	db *gorm.DB
}

func NewAdminStore(db *gorm.DB) *AdminStore {
	return &AdminStore{db: db}
}

func (s *AdminStore) FindByEmail(email string) (*models.Admin, error) {
	var a models.Admin
	if err := s.db.First(&a, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// SeedAdmin upserts the backoffice account configured through the
// environment. Without a password nothing is seeded, which leaves the
// backoffice unreachable.
func SeedAdmin(db *gorm.DB, email, name, password string) error {
	if password == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	admin := models.Admin{Email: email, Name: name}
	if err := admin.SetPassword(password); err != nil {
		return err
	}

	var existing models.Admin
	err := db.First(&existing, "email = ?", email).Error
	switch {
	case err == nil:
		return db.Model(&existing).Updates(map[string]interface{}{
			"name":     name,
			"password": admin.Password,
		}).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Printf("Admin user created: %s", email)
		return nil
	default:
		return err
	}
}
