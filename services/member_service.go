package services

import (
	"errors"
	"sort"
	"time"

	"waitlist/models"
)

// MemberStore is the persistence surface the member service needs.
// Implementations translate their own missing-row errors to ErrNotFound.
type MemberStore interface {
	List() ([]models.Member, error)
	FindByID(id string) (*models.Member, error)
	FindByEmail(email string) (*models.Member, error)
	Create(m *models.Member) error
	Update(id string, updates map[string]interface{}) (*models.Member, error)
	CountByStatus(status string) (int64, error)
	CreatedSince(t time.Time) ([]models.Member, error)
}

type MemberService struct {
	store MemberStore
	now   func() time.Time
}

func NewMemberService(store MemberStore) *MemberService {
	return &MemberService{store: store, now: time.Now}
}

// Join adds a signup to the waitlist. The email must already be sanitized
// and validated by the caller; duplicates yield ErrDuplicateEmail.
func (s *MemberService) Join(email, name string) (*models.Member, error) {
	existing, err := s.store.FindByEmail(email)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	member := &models.Member{
		Email:  email,
		Name:   name,
		Status: models.StatusPending,
	}
	if err := s.store.Create(member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *MemberService) List() ([]models.Member, error) {
	return s.store.List()
}

// SetStatus applies a status transition. Every transition between the three
// statuses is legal, including reverting a denied or accepted entry back to
// pending. AcceptedAt is set when entering ACCEPTED and cleared when leaving
// it; status and acceptedAt change in a single write.
func (s *MemberService) SetStatus(id, status string) (*models.Member, error) {
	if !models.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	existing, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"status": status}
	if status == models.StatusAccepted {
		updates["accepted_at"] = s.now()
	} else if existing.AcceptedAt != nil {
		updates["accepted_at"] = nil
	}

	return s.store.Update(id, updates)
}

// DailyCount is one day's worth of signups for the dashboard chart.
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type MemberStats struct {
	Total    int64        `json:"total"`
	Pending  int64        `json:"pending"`
	Accepted int64        `json:"accepted"`
	Denied   int64        `json:"denied"`
	Signups  []DailyCount `json:"signups"`
}

// Stats aggregates status totals and per-day signup counts over the last
// 30 days.
func (s *MemberService) Stats() (*MemberStats, error) {
	stats := &MemberStats{}

	for _, pair := range []struct {
		status string
		dest   *int64
	}{
		{models.StatusPending, &stats.Pending},
		{models.StatusAccepted, &stats.Accepted},
		{models.StatusDenied, &stats.Denied},
	} {
		n, err := s.store.CountByStatus(pair.status)
		if err != nil {
			return nil, err
		}
		*pair.dest = n
	}
	stats.Total = stats.Pending + stats.Accepted + stats.Denied

	since := s.now().AddDate(0, 0, -30)
	recent, err := s.store.CreatedSince(since)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]int)
	for _, m := range recent {
		byDay[m.CreatedAt.Format("2006-01-02")]++
	}
	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		stats.Signups = append(stats.Signups, DailyCount{Date: day, Count: byDay[day]})
	}

	return stats, nil
}
