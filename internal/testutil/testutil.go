package testutil

import (
	"time"

	"go.uber.org/zap"

	"ankibot/internal/domain"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64, authorized bool) *domain.User {
	return &domain.User{
		UserID:     userID,
		Authorized: authorized,
		CreatedAt:  time.Now(),
	}
}

// NewTestCard creates a fully populated card that passes validation
func NewTestCard(word string) domain.Card {
	c := domain.EmptyCard(word)
	c.Translation = domain.NewField("noun — слово, термін")
	c.PartOfSpeech = domain.NewField("Noun (іменник)")
	c.Pronunciation = domain.NewField("/wɜːd/ (BrE), /wɝd/ (AmE)")
	c.ExplanationNoun = domain.NewField("A unit of language (слово)")
	c.ExampleNoun = domain.NewField("She wrote a " + word + " on the board. (Вона написала слово на дошці.)")
	return c
}

// NewTestEntry creates a test card log entry
func NewTestEntry(id int, userID int64, word, translation string) *domain.CardEntry {
	return &domain.CardEntry{
		ID:          id,
		UserID:      userID,
		Word:        word,
		Translation: translation,
		NoteID:      1000 + int64(id),
		CreatedAt:   time.Now(),
	}
}

// NewTestDay creates a test day
func NewTestDay(date time.Time, cardCount int) domain.Day {
	return domain.Day{
		Date:      date,
		CardCount: cardCount,
	}
}
