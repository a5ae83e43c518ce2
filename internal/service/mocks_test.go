package service

import (
	"context"
	"sync"
	"time"

	"catboard/internal/domain"

	"github.com/stretchr/testify/mock"
)

// ManualMockCache is an in-memory domain.Cache for tests that need
// real get/set semantics rather than scripted expectations.
type ManualMockCache struct {
	mu    sync.Mutex
	store map[string]string

	GetErr    error
	SetErr    error
	DeleteErr error

	SetCalls    int
	DeleteCalls int
}

func NewManualMockCache() *ManualMockCache {
	return &ManualMockCache{store: make(map[string]string)}
}

func (m *ManualMockCache) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return "", m.GetErr
	}
	value, ok := m.store[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return value, nil
}

func (m *ManualMockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls++
	if m.SetErr != nil {
		return m.SetErr
	}
	m.store[key] = value
	return nil
}

func (m *ManualMockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls++
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.store, key)
	return nil
}

func (m *ManualMockCache) Ping(ctx context.Context) error {
	return nil
}

func (m *ManualMockCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.store)
}

// --- MockCatCatalog ---
type MockCatCatalog struct {
	mock.Mock
}

func (m *MockCatCatalog) GetCats(ctx context.Context, limit int) ([]domain.RawCat, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RawCat), args.Error(1)
}

// --- MockTriviaAPI ---
type MockTriviaAPI struct {
	mock.Mock
}

func (m *MockTriviaAPI) GetQuizQuestions(ctx context.Context, amount, category int) ([]domain.QuizQuestion, error) {
	args := m.Called(ctx, amount, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuizQuestion), args.Error(1)
}

// --- MockSignupGateway ---
type MockSignupGateway struct {
	mock.Mock
}

func (m *MockSignupGateway) SubmitUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
