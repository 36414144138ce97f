package domain

import "time"

// CardEntry is one row of the local card history log, recorded after a
// card is added to Anki.
type CardEntry struct {
	ID          int
	UserID      int64
	Word        string
	Translation string
	NoteID      int64
	CreatedAt   time.Time
}

// DeckStat is the per-deck counter set reported by the flashcard store.
type DeckStat struct {
	Name        string
	NewCount    int
	LearnCount  int
	ReviewCount int
	TotalInDeck int
}
