package service

import (
	"context"
	"fmt"
	"time"

	"ankibot/internal/domain"
	"ankibot/internal/repository"

	"go.uber.org/zap"
)

// StatsService reads deck statistics and the local card history
type StatsService struct {
	store   CardStore
	cardLog repository.CardLogRepository
	logger  *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(store CardStore, cardLog repository.CardLogRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		store:   store,
		cardLog: cardLog,
		logger:  logger,
	}
}

// Deck returns live counters for the configured deck.
func (s *StatsService) Deck(ctx context.Context) ([]domain.DeckStat, error) {
	return s.store.DeckStats(ctx)
}

// RecentDays returns one page of days that had cards added, newest
// first, along with the total page count.
func (s *StatsService) RecentDays(userID int64, page int) ([]domain.Day, int, error) {
	const pageSize = 7

	if page < 1 {
		page = 1
	}

	offset := (page - 1) * pageSize
	days, err := s.cardLog.GetDaysWithCards(userID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}

	totalDays, err := s.cardLog.GetTotalDaysCount(userID)
	if err != nil {
		return nil, 0, err
	}

	totalPages := (totalDays + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	return days, totalPages, nil
}

// CardsOn returns the cards added on a specific day (YYYYMMDD).
func (s *StatsService) CardsOn(userID int64, dateStr string) ([]domain.CardEntry, error) {
	date, err := time.Parse("20060102", dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %w", err)
	}

	return s.cardLog.GetCardsByDate(userID, date)
}

// Recent returns the user's latest history entries, newest first.
func (s *StatsService) Recent(userID int64, limit int) ([]domain.CardEntry, error) {
	if limit < 1 {
		limit = 10
	}
	return s.cardLog.GetRecentCards(userID, limit)
}

// CleanupOldData removes card history entries older than the retention window
func (s *StatsService) CleanupOldData() error {
	const retentionDays = 180

	s.logger.Info("Starting cleanup of old card history", zap.Int("retention_days", retentionDays))

	err := s.cardLog.CleanOldEntries(retentionDays)
	if err != nil {
		s.logger.Error("Failed to clean old card history", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully")
	return nil
}
