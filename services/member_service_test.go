package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"waitlist/models"
)

type fakeMemberStore struct {
	members   map[string]*models.Member
	findCalls int
}

func newFakeMemberStore(members ...*models.Member) *fakeMemberStore {
	s := &fakeMemberStore{members: make(map[string]*models.Member)}
	for _, m := range members {
		s.members[m.ID] = m
	}
	return s
}

func (s *fakeMemberStore) List() ([]models.Member, error) {
	var out []models.Member
	for _, m := range s.members {
		out = append(out, *m)
	}
	return out, nil
}

func (s *fakeMemberStore) FindByID(id string) (*models.Member, error) {
	s.findCalls++
	m, ok := s.members[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *m
	return &copied, nil
}

func (s *fakeMemberStore) FindByEmail(email string) (*models.Member, error) {
	for _, m := range s.members {
		if m.Email == email {
			copied := *m
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (s *fakeMemberStore) Create(m *models.Member) error {
	if m.ID == "" {
		m.ID = "generated-id"
	}
	m.CreatedAt = time.Now()
	copied := *m
	s.members[m.ID] = &copied
	return nil
}

func (s *fakeMemberStore) Update(id string, updates map[string]interface{}) (*models.Member, error) {
	m, ok := s.members[id]
	if !ok {
		return nil, ErrNotFound
	}
	if v, ok := updates["status"]; ok {
		m.Status = v.(string)
	}
	if v, ok := updates["accepted_at"]; ok {
		if v == nil {
			m.AcceptedAt = nil
		} else {
			ts := v.(time.Time)
			m.AcceptedAt = &ts
		}
	}
	m.UpdatedAt = time.Now()
	copied := *m
	return &copied, nil
}

func (s *fakeMemberStore) CountByStatus(status string) (int64, error) {
	var n int64
	for _, m := range s.members {
		if m.Status == status {
			n++
		}
	}
	return n, nil
}

func (s *fakeMemberStore) CreatedSince(t time.Time) ([]models.Member, error) {
	var out []models.Member
	for _, m := range s.members {
		if !m.CreatedAt.Before(t) {
			out = append(out, *m)
		}
	}
	return out, nil
}

func seedMember(id, status string) *models.Member {
	m := &models.Member{
		ID:        id,
		Email:     id + "@example.com",
		Name:      "Test Member",
		Status:    status,
		CreatedAt: time.Now(),
	}
	if status == models.StatusAccepted {
		at := time.Now().Add(-time.Hour)
		m.AcceptedAt = &at
	}
	return m
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	store := newFakeMemberStore(seedMember("m1", models.StatusPending))
	svc := NewMemberService(store)

	for _, status := range []string{"", "pending", "INVITED", "accepted"} {
		if _, err := svc.SetStatus("m1", status); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("SetStatus(%q) error = %v, want ErrInvalidStatus", status, err)
		}
	}
	if store.findCalls != 0 {
		t.Fatalf("store consulted %d times for invalid input, want 0", store.findCalls)
	}
}

func TestSetStatusUnknownMember(t *testing.T) {
	t.Parallel()

	svc := NewMemberService(newFakeMemberStore())
	if _, err := svc.SetStatus("missing", models.StatusAccepted); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestSetStatusAcceptedAtInvariant(t *testing.T) {
	t.Parallel()

	statuses := []string{models.StatusPending, models.StatusAccepted, models.StatusDenied}
	for _, from := range statuses {
		for _, to := range statuses {
			store := newFakeMemberStore(seedMember("m1", from))
			svc := NewMemberService(store)

			got, err := svc.SetStatus("m1", to)
			if err != nil {
				t.Fatalf("%s -> %s: unexpected error: %v", from, to, err)
			}
			if got.Status != to {
				t.Fatalf("%s -> %s: status = %q, want %q", from, to, got.Status, to)
			}
			wantAccepted := to == models.StatusAccepted
			if (got.AcceptedAt != nil) != wantAccepted {
				t.Fatalf("%s -> %s: acceptedAt = %v, want set=%v", from, to, got.AcceptedAt, wantAccepted)
			}
		}
	}
}

func TestSetStatusUsesServiceClock(t *testing.T) {
	t.Parallel()

	store := newFakeMemberStore(seedMember("m1", models.StatusPending))
	svc := NewMemberService(store)
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	got, err := svc.SetStatus("m1", models.StatusAccepted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.AcceptedAt == nil || !got.AcceptedAt.Equal(fixed) {
		t.Fatalf("acceptedAt = %v, want %v", got.AcceptedAt, fixed)
	}
}

func TestSetStatusIdempotent(t *testing.T) {
	t.Parallel()

	store := newFakeMemberStore(seedMember("m1", models.StatusDenied))
	svc := NewMemberService(store)

	first, err := svc.SetStatus("m1", models.StatusDenied)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := svc.SetStatus("m1", models.StatusDenied)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if first.Status != second.Status || second.AcceptedAt != nil {
		t.Fatalf("repeated transition changed state: %+v vs %+v", first, second)
	}
}

func TestJoinCreatesPendingMember(t *testing.T) {
	t.Parallel()

	store := newFakeMemberStore()
	svc := NewMemberService(store)

	m, err := svc.Join("new@example.com", "New Member")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Status != models.StatusPending {
		t.Fatalf("status = %q, want %q", m.Status, models.StatusPending)
	}
	if m.AcceptedAt != nil {
		t.Fatalf("acceptedAt = %v, want nil", m.AcceptedAt)
	}
}

type wrappedNotFoundStore struct {
	*fakeMemberStore
}

func (s *wrappedNotFoundStore) FindByEmail(email string) (*models.Member, error) {
	return nil, fmt.Errorf("member lookup: %w", ErrNotFound)
}

func TestJoinTreatsWrappedNotFoundAsNewSignup(t *testing.T) {
	t.Parallel()

	svc := NewMemberService(&wrappedNotFoundStore{newFakeMemberStore()})
	m, err := svc.Join("new@example.com", "New Member")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Status != models.StatusPending {
		t.Fatalf("status = %q, want %q", m.Status, models.StatusPending)
	}
}

func TestJoinDuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := NewMemberService(newFakeMemberStore(seedMember("m1", models.StatusPending)))
	if _, err := svc.Join("m1@example.com", "Someone Else"); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("error = %v, want ErrDuplicateEmail", err)
	}
}

func TestStats(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	store := newFakeMemberStore()
	for i, status := range []string{
		models.StatusPending, models.StatusPending,
		models.StatusAccepted, models.StatusDenied,
	} {
		m := seedMember(string(rune('a'+i)), status)
		m.CreatedAt = day.Add(time.Duration(i/2) * 24 * time.Hour)
		store.members[m.ID] = m
	}

	svc := NewMemberService(store)
	svc.now = func() time.Time { return day.Add(48 * time.Hour) }

	stats, err := svc.Stats()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 4 || stats.Pending != 2 || stats.Accepted != 1 || stats.Denied != 1 {
		t.Fatalf("stats = %+v, want total 4, pending 2, accepted 1, denied 1", stats)
	}
	if len(stats.Signups) != 2 {
		t.Fatalf("len(signups) = %d, want 2", len(stats.Signups))
	}
	if stats.Signups[0].Date != "2024-06-10" || stats.Signups[0].Count != 2 {
		t.Fatalf("signups[0] = %+v, want 2024-06-10 count 2", stats.Signups[0])
	}
}
