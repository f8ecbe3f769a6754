package database

import (
	"errors"
	"time"

	"waitlist/models"
	"waitlist/services"

	"gorm.io/gorm"
)

type memberStore struct {
	db *gorm.DB
}

func NewMemberStore(db *gorm.DB) services.MemberStore {
	return &memberStore{db: db}
}

func (s *memberStore) List() ([]models.Member, error) {
	var members []models.Member
	if err := s.db.Order("created_at desc").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (s *memberStore) FindByID(id string) (*models.Member, error) {
	var m models.Member
	if err := s.db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (s *memberStore) FindByEmail(email string) (*models.Member, error) {
	var m models.Member
	if err := s.db.First(&m, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (s *memberStore) Create(m *models.Member) error {
	return s.db.Create(m).Error
}

func (s *memberStore) Update(id string, updates map[string]interface{}) (*models.Member, error) {
	result := s.db.Model(&models.Member{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, services.ErrNotFound
	}
	return s.FindByID(id)
}

func (s *memberStore) CountByStatus(status string) (int64, error) {
	var count int64
	err := s.db.Model(&models.Member{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (s *memberStore) CreatedSince(t time.Time) ([]models.Member, error) {
	var members []models.Member
	err := s.db.Where("created_at >= ?", t).Order("created_at asc").Find(&members).Error
	return members, err
}
