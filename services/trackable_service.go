package services

import (
	"crypto/rand"
	"math/big"
	"strings"
	"time"

	"waitlist/models"
)

const (
	slugCharset  = "abcdefghijklmnopqrstuvwxyz0123456789"
	slugLength   = 8
	maxSlugTries = 10
)

// TrackableStore is the persistence surface for campaign links and clicks.
type TrackableStore interface {
	SlugExists(slug string) (bool, error)
	Create(u *models.TrackableURL) error
	ListWithClicks() ([]models.TrackableURL, error)
	Delete(id string) error
	FindBySlug(slug string) (*models.TrackableURL, error)
	AddClick(c *models.Click) error
}

type TrackableService struct {
	store TrackableStore
}

func NewTrackableService(store TrackableStore) *TrackableService {
	return &TrackableService{store: store}
}

// Create makes a campaign link under a fresh random slug. Collisions trigger
// a regenerate, up to ten uniqueness checks; after that the operation fails
// with ErrSlugExhausted rather than looping forever.
func (s *TrackableService) Create(name string) (*models.TrackableURL, error) {
	slug, err := generateSlug()
	if err != nil {
		return nil, err
	}

	attempts := 0
	for attempts < maxSlugTries {
		exists, err := s.store.SlugExists(slug)
		if err != nil {
			return nil, err
		}
		if !exists {
			break
		}
		slug, err = generateSlug()
		if err != nil {
			return nil, err
		}
		attempts++
	}
	if attempts == maxSlugTries {
		return nil, ErrSlugExhausted
	}

	url := &models.TrackableURL{
		Slug: slug,
		Name: strings.TrimSpace(name),
	}
	if err := s.store.Create(url); err != nil {
		return nil, err
	}
	return url, nil
}

// TrackableURLStats is a campaign link with its click aggregates.
type TrackableURLStats struct {
	ID            string     `json:"id"`
	Slug          string     `json:"slug"`
	Name          string     `json:"name"`
	CreatedAt     time.Time  `json:"createdAt"`
	TotalClicks   int        `json:"totalClicks"`
	UniqueClicks  int        `json:"uniqueClicks"`
	LastClickedAt *time.Time `json:"lastClickedAt"`
}

func (s *TrackableService) List() ([]TrackableURLStats, error) {
	urls, err := s.store.ListWithClicks()
	if err != nil {
		return nil, err
	}

	stats := make([]TrackableURLStats, 0, len(urls))
	for _, u := range urls {
		row := TrackableURLStats{
			ID:          u.ID,
			Slug:        u.Slug,
			Name:        u.Name,
			CreatedAt:   u.CreatedAt,
			TotalClicks: len(u.Clicks),
		}
		uniqueIPs := make(map[string]struct{})
		for _, click := range u.Clicks {
			if click.IPAddress != nil {
				uniqueIPs[*click.IPAddress] = struct{}{}
			}
			if row.LastClickedAt == nil || click.ClickedAt.After(*row.LastClickedAt) {
				clickedAt := click.ClickedAt
				row.LastClickedAt = &clickedAt
			}
		}
		row.UniqueClicks = len(uniqueIPs)
		stats = append(stats, row)
	}
	return stats, nil
}

func (s *TrackableService) Delete(id string) error {
	return s.store.Delete(id)
}

// RecordClick stores one click against the link behind slug. Empty IP or
// user agent values are stored as NULL.
func (s *TrackableService) RecordClick(slug, ipAddress, userAgent string) (*models.TrackableURL, error) {
	url, err := s.store.FindBySlug(slug)
	if err != nil {
		return nil, err
	}

	click := &models.Click{TrackableURLID: url.ID}
	if ipAddress != "" {
		click.IPAddress = &ipAddress
	}
	if userAgent != "" {
		click.UserAgent = &userAgent
	}
	if err := s.store.AddClick(click); err != nil {
		return nil, err
	}
	return url, nil
}

func generateSlug() (string, error) {
	slug := make([]byte, slugLength)
	charsetLength := big.NewInt(int64(len(slugCharset)))

	for i := 0; i < slugLength; i++ {
		randomIndex, err := rand.Int(rand.Reader, charsetLength)
		if err != nil {
			return "", err
		}
		slug[i] = slugCharset[randomIndex.Int64()]
	}

	return string(slug), nil
}
