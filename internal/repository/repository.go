package repository

import (
	"time"

	"ankibot/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	EnsureUserExists(userID int64) error
}

// CardLogRepository records which cards each user has added, so the bot
// can answer history queries without talking to the flashcard store.
type CardLogRepository interface {
	SaveCard(userID int64, word, translation string, noteID int64) error
	GetRecentCards(userID int64, limit int) ([]domain.CardEntry, error)
	GetDaysWithCards(userID int64, limit, offset int) ([]domain.Day, error)
	GetCardsByDate(userID int64, date time.Time) ([]domain.CardEntry, error)
	GetTotalDaysCount(userID int64) (int, error)
	CleanOldEntries(days int) error
}
