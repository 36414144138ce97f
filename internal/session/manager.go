package session

import (
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Correction is a spelling suggestion awaiting the user's yes/no reply.
type Correction struct {
	Original   string
	Suggestion string
}

// Manager holds per-user conversation state with a sliding expiry, so an
// abandoned correction dialog disappears on its own instead of hijacking
// the user's next word.
type Manager struct {
	sessions *gocache.Cache
	logger   *zap.Logger
}

// NewManager creates a session manager whose entries expire ttl after
// the last touch.
func NewManager(ttl time.Duration, logger *zap.Logger) *Manager {
	return &Manager{
		sessions: gocache.New(ttl, 2*ttl),
		logger:   logger,
	}
}

// SetPendingCorrection stores a correction offer for the user, replacing
// any previous one.
func (m *Manager) SetPendingCorrection(userID int64, original, suggestion string) {
	m.sessions.Set(sessionKey(userID), Correction{Original: original, Suggestion: suggestion}, gocache.DefaultExpiration)
	m.logger.Info("Set pending correction",
		zap.Int64("user_id", userID),
		zap.String("original", original),
		zap.String("suggestion", suggestion),
	)
}

// PendingCorrection returns the user's outstanding correction offer, if
// any. Reading refreshes the expiry window.
func (m *Manager) PendingCorrection(userID int64) (Correction, bool) {
	val, found := m.sessions.Get(sessionKey(userID))
	if !found {
		return Correction{}, false
	}
	correction := val.(Correction)
	m.sessions.Set(sessionKey(userID), correction, gocache.DefaultExpiration)
	return correction, true
}

// ClearPendingCorrection drops the user's outstanding offer.
func (m *Manager) ClearPendingCorrection(userID int64) {
	m.sessions.Delete(sessionKey(userID))
	m.logger.Info("Cleared pending correction", zap.Int64("user_id", userID))
}

// ActiveCount reports how many users hold an unexpired session.
func (m *Manager) ActiveCount() int {
	return len(m.sessions.Items())
}

func sessionKey(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
