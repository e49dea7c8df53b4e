package astro

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/persistence"
	"github.com/google/uuid"
)

var errBoom = errors.New("boom")

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrEmailTaken
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetNatalChart(ctx context.Context, userID uuid.UUID) (*domain.NatalChartData, error) {
	u, err := r.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.NatalChart == nil {
		return nil, domain.ErrChartNotFound
	}
	return u.NatalChart, nil
}

func (r *fakeUserRepo) UpdateBirthData(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) WithTransaction(ctx context.Context, fn func(context.Context, persistence.Transaction) error) error {
	return fn(ctx, nil)
}

func (r *fakeUserRepo) GetByIDTx(ctx context.Context, _ persistence.Transaction, id uuid.UUID) (*domain.User, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeUserRepo) UpdateBirthDataTx(ctx context.Context, _ persistence.Transaction, user *domain.User) error {
	return r.UpdateBirthData(ctx, user)
}

type fakePreferencesRepo struct {
	mu    sync.Mutex
	prefs map[uuid.UUID]*domain.Preferences
}

func newFakePreferencesRepo() *fakePreferencesRepo {
	return &fakePreferencesRepo{prefs: make(map[uuid.UUID]*domain.Preferences)}
}

func (r *fakePreferencesRepo) Get(_ context.Context, userID uuid.UUID) (*domain.Preferences, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.prefs[userID]
	if !ok {
		return domain.DefaultPreferences(userID), nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePreferencesRepo) Upsert(_ context.Context, prefs *domain.Preferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *prefs
	if old, ok := r.prefs[prefs.UserID]; ok {
		cp.ComparisonCount = old.ComparisonCount
	}
	r.prefs[prefs.UserID] = &cp
	return nil
}

func (r *fakePreferencesRepo) IncrementComparisons(_ context.Context, userID uuid.UUID, limit int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.prefs[userID]
	if !ok {
		p = domain.DefaultPreferences(userID)
		r.prefs[userID] = p
	}
	if !p.IsPremium && p.ComparisonCount >= limit {
		return p.ComparisonCount, domain.ErrComparisonLimit
	}
	p.ComparisonCount++
	return p.ComparisonCount, nil
}

type fakeHistoryRepo struct {
	mu      sync.Mutex
	items   []domain.ChartHistory
	failErr error
}

func (r *fakeHistoryRepo) CreateTx(_ context.Context, _ persistence.Transaction, h *domain.ChartHistory) error {
	if r.failErr != nil {
		return r.failErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *h)
	return nil
}

func (r *fakeHistoryRepo) ListByUser(_ context.Context, userID uuid.UUID, limit int) ([]domain.ChartHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.ChartHistory
	for i := len(r.items) - 1; i >= 0 && len(out) < limit; i-- {
		if r.items[i].UserID == userID {
			out = append(out, r.items[i])
		}
	}
	return out, nil
}

func (r *fakeHistoryRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	items, _ := r.ListByUser(ctx, userID, len(r.items))
	return len(items), nil
}

type fakeStorage struct {
	mu      sync.Mutex
	files   map[string][]byte
	putErr  error
	expires time.Duration
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{files: make(map[string][]byte)}
}

func (s *fakeStorage) PutFile(_ context.Context, path string, data []byte, _ string) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = data
	return nil
}

func (s *fakeStorage) GetFile(_ context.Context, path string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[path]
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

func (s *fakeStorage) ListFiles(_ context.Context, prefix string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for path := range s.files {
		if strings.HasPrefix(path, prefix) {
			out = append(out, path)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (s *fakeStorage) GetPresignedURL(_ context.Context, path string, expires time.Duration) (string, error) {
	s.expires = expires
	return "https://s3.local/" + path + "?signed", nil
}

type publishedEvent struct {
	userID uuid.UUID
	source domain.ChartSource
	chart  *domain.NatalChartData
}

type fakeEvents struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (e *fakeEvents) PublishChartCalculated(_ context.Context, userID uuid.UUID, source domain.ChartSource, chart *domain.NatalChartData) error {
	if e.err != nil {
		return e.err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, publishedEvent{userID: userID, source: source, chart: chart})
	return nil
}

func (e *fakeEvents) Close() error { return nil }
