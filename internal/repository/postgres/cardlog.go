package postgres

import (
	"database/sql"
	"time"

	"ankibot/internal/domain"
)

// historyWindowDays bounds how far back the day browser reaches. Older
// entries still exist until the retention cleanup removes them.
const historyWindowDays = 60

// CardLogRepo implements repository.CardLogRepository
type CardLogRepo struct {
	db *sql.DB
}

// NewCardLogRepo creates a new card log repository
func NewCardLogRepo(db *sql.DB) *CardLogRepo {
	return &CardLogRepo{db: db}
}

// SaveCard records a card that was added to the flashcard store
func (r *CardLogRepo) SaveCard(userID int64, word, translation string, noteID int64) error {
	query := `
		INSERT INTO cards (user_id, word, translation, note_id)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(query, userID, word, translation, noteID)
	return err
}

// GetRecentCards returns the user's latest cards, newest first
func (r *CardLogRepo) GetRecentCards(userID int64, limit int) ([]domain.CardEntry, error) {
	query := `
		SELECT id, user_id, word, translation, note_id, created_at
		FROM cards
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.CardEntry
	for rows.Next() {
		var e domain.CardEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Word, &e.Translation, &e.NoteID, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// GetDaysWithCards returns recent days that have cards, with counts.
// Days are bounded by UTC midnights.
func (r *CardLogRepo) GetDaysWithCards(userID int64, limit, offset int) ([]domain.Day, error) {
	query := `
		SELECT DATE(created_at AT TIME ZONE 'UTC') as day, COUNT(*) as count
		FROM cards
		WHERE user_id = $1
			AND created_at >= NOW() - INTERVAL '1 day' * $2
		GROUP BY DATE(created_at AT TIME ZONE 'UTC')
		ORDER BY day DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(query, userID, historyWindowDays, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []domain.Day
	for rows.Next() {
		var d domain.Day
		if err := rows.Scan(&d.Date, &d.CardCount); err != nil {
			return nil, err
		}
		days = append(days, d)
	}

	return days, rows.Err()
}

// GetTotalDaysCount returns the number of recent days that have cards
func (r *CardLogRepo) GetTotalDaysCount(userID int64) (int, error) {
	query := `
		SELECT COUNT(DISTINCT DATE(created_at AT TIME ZONE 'UTC'))
		FROM cards
		WHERE user_id = $1
			AND created_at >= NOW() - INTERVAL '1 day' * $2
	`

	var count int
	err := r.db.QueryRow(query, userID, historyWindowDays).Scan(&count)
	return count, err
}

// GetCardsByDate returns all cards the user added on a specific UTC day
func (r *CardLogRepo) GetCardsByDate(userID int64, date time.Time) ([]domain.CardEntry, error) {
	query := `
		SELECT id, user_id, word, translation, note_id, created_at
		FROM cards
		WHERE user_id = $1
			AND DATE(created_at AT TIME ZONE 'UTC') = DATE($2 AT TIME ZONE 'UTC')
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, userID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.CardEntry
	for rows.Next() {
		var e domain.CardEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Word, &e.Translation, &e.NoteID, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// CleanOldEntries deletes log entries older than the specified number of
// days
func (r *CardLogRepo) CleanOldEntries(days int) error {
	query := `
		DELETE FROM cards
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`
	_, err := r.db.Exec(query, days)
	return err
}
