package service

import (
	"context"
	"errors"
	"fmt"

	"ankibot/internal/anki"
	"ankibot/internal/card"
	"ankibot/internal/domain"
	"ankibot/internal/repository"

	"go.uber.org/zap"
)

// Errors AddWord callers branch on.
var (
	// ErrCardExists means the deck already holds a card for the word.
	ErrCardExists = errors.New("card already exists in the deck")
	// ErrStoreUnavailable means the flashcard store could not be reached
	// or started.
	ErrStoreUnavailable = errors.New("flashcard store is unavailable")
	// ErrGenerationFailed means every generation attempt failed, leaving
	// nothing to merge.
	ErrGenerationFailed = errors.New("generation produced no card content")
)

// AddResult is the outcome of a successful AddWord call.
type AddResult struct {
	Card   domain.Card
	NoteID int64
}

// CardService runs the add-word pipeline: duplicate check, content
// generation, formatting, store write, history log.
type CardService struct {
	store   CardStore
	builder CardBuilder
	cardLog repository.CardLogRepository
	logger  *zap.Logger
}

// NewCardService creates a new card service
func NewCardService(store CardStore, builder CardBuilder, cardLog repository.CardLogRepository, logger *zap.Logger) *CardService {
	return &CardService{
		store:   store,
		builder: builder,
		cardLog: cardLog,
		logger:  logger,
	}
}

// AddWord turns a word into a flashcard and saves it to the store.
// The word is assumed to have passed spelling resolution already.
func (s *CardService) AddWord(ctx context.Context, userID int64, word string, notify domain.Notify) (*AddResult, error) {
	s.logger.Info("Processing word",
		zap.String("word", word),
		zap.Int64("user_id", userID),
	)

	if err := s.store.EnsureRunning(ctx); err != nil {
		s.logger.Warn("Flashcard store is not available", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	exists, err := s.store.Exists(ctx, word)
	if err != nil {
		return nil, fmt.Errorf("check for existing card: %w", err)
	}
	if exists {
		s.logger.Info("Word already in deck, skipping", zap.String("word", word))
		return nil, ErrCardExists
	}

	built := s.builder.Build(ctx, word, notify)
	if built.IsEmpty() {
		return nil, ErrGenerationFailed
	}

	noteID, err := s.store.Add(ctx, word, card.FormatAnki(built))
	if err != nil {
		if errors.Is(err, anki.ErrDuplicateNote) {
			return nil, ErrCardExists
		}
		return nil, fmt.Errorf("add card to store: %w", err)
	}

	// The card is in Anki at this point; a failed history write only
	// degrades /stats and /recent.
	if err := s.cardLog.SaveCard(userID, word, built.Translation.OrNA(), noteID); err != nil {
		s.logger.Warn("Failed to record card in history",
			zap.Error(err),
			zap.String("word", word),
		)
	}

	s.logger.Info("Card added",
		zap.String("word", word),
		zap.Int64("note_id", noteID),
		zap.Int64("user_id", userID),
	)

	return &AddResult{Card: built, NoteID: noteID}, nil
}

// StoreRunning reports whether the flashcard store currently answers.
func (s *CardService) StoreRunning(ctx context.Context) bool {
	return s.store.Ping(ctx)
}

// StartStore brings the flashcard store up if it is not already running.
func (s *CardService) StartStore(ctx context.Context) error {
	return s.store.EnsureRunning(ctx)
}

// SyncCollection triggers a store sync and reports whether it succeeded.
func (s *CardService) SyncCollection(ctx context.Context) bool {
	return s.store.Sync(ctx)
}
