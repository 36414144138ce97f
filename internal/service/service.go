package service

import (
	"context"

	"ankibot/internal/domain"
)

// CardStore is the flashcard store the services talk to. anki.Client
// implements it.
type CardStore interface {
	Ping(ctx context.Context) bool
	EnsureRunning(ctx context.Context) error
	Exists(ctx context.Context, word string) (bool, error)
	Add(ctx context.Context, word, markup string) (int64, error)
	Sync(ctx context.Context) bool
	DeckStats(ctx context.Context) ([]domain.DeckStat, error)
}

// CardBuilder produces flashcard content for a word. card.Builder
// implements it.
type CardBuilder interface {
	Build(ctx context.Context, word string, notify domain.Notify) domain.Card
}
