package database

import (
	"errors"

	"waitlist/models"
	"waitlist/services"

	"gorm.io/gorm"
)

type trackableStore struct {
	db *gorm.DB
}

func NewTrackableStore(db *gorm.DB) services.TrackableStore {
	return &trackableStore{db: db}
}

func (s *trackableStore) SlugExists(slug string) (bool, error) {
	var count int64
	if err := s.db.Model(&models.TrackableURL{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *trackableStore) Create(u *models.TrackableURL) error {
	return s.db.Create(u).Error
}

func (s *trackableStore) ListWithClicks() ([]models.TrackableURL, error) {
	var urls []models.TrackableURL
	err := s.db.Preload("Clicks", func(db *gorm.DB) *gorm.DB {
		return db.Order("clicked_at asc")
	}).Order("created_at desc").Find(&urls).Error
	if err != nil {
		return nil, err
	}
	return urls, nil
}

func (s *trackableStore) Delete(id string) error {
	result := s.db.Delete(&models.TrackableURL{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return services.ErrNotFound
	}
	return nil
}

func (s *trackableStore) FindBySlug(slug string) (*models.TrackableURL, error) {
	var u models.TrackableURL
	if err := s.db.First(&u, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *trackableStore) AddClick(c *models.Click) error {
	return s.db.Create(c).Error
}
