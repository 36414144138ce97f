package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"ankibot/internal/domain"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) IsAuthorized(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AuthorizeUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockCardLogRepository is a mock for CardLogRepository
type MockCardLogRepository struct {
	mock.Mock
}

func (m *MockCardLogRepository) SaveCard(userID int64, word, translation string, noteID int64) error {
	args := m.Called(userID, word, translation, noteID)
	return args.Error(0)
}

func (m *MockCardLogRepository) GetRecentCards(userID int64, limit int) ([]domain.CardEntry, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CardEntry), args.Error(1)
}

func (m *MockCardLogRepository) GetDaysWithCards(userID int64, limit, offset int) ([]domain.Day, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Day), args.Error(1)
}

func (m *MockCardLogRepository) GetCardsByDate(userID int64, date time.Time) ([]domain.CardEntry, error) {
	args := m.Called(userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CardEntry), args.Error(1)
}

func (m *MockCardLogRepository) GetTotalDaysCount(userID int64) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

func (m *MockCardLogRepository) CleanOldEntries(days int) error {
	args := m.Called(days)
	return args.Error(0)
}

// MockCardStore is a mock for the flashcard store client
type MockCardStore struct {
	mock.Mock
}

func (m *MockCardStore) Ping(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *MockCardStore) EnsureRunning(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCardStore) Exists(ctx context.Context, word string) (bool, error) {
	args := m.Called(ctx, word)
	return args.Bool(0), args.Error(1)
}

func (m *MockCardStore) Add(ctx context.Context, word, markup string) (int64, error) {
	args := m.Called(ctx, word, markup)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCardStore) Sync(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *MockCardStore) DeckStats(ctx context.Context) ([]domain.DeckStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeckStat), args.Error(1)
}

// MockCardBuilder is a mock for the card builder
type MockCardBuilder struct {
	mock.Mock
}

func (m *MockCardBuilder) Build(ctx context.Context, word string, notify domain.Notify) domain.Card {
	args := m.Called(ctx, word, notify)
	return args.Get(0).(domain.Card)
}

// MockProvider is a mock for the text backend provider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockProvider) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockProvider) Available(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}
