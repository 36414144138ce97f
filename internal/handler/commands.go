package handler

import (
	"context"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// recentLimit is how many cards /recent shows.
const recentLimit = 10

// handleSync handles /sync command
func (h *Handler) handleSync(c tele.Context) error {
	ctx := context.Background()

	if !h.cardService.StoreRunning(ctx) {
		return c.Send(msgStoreDown)
	}

	if err := c.Send("🔄 Syncing Anki collection..."); err != nil {
		return err
	}

	if h.cardService.SyncCollection(ctx) {
		return c.Send("✅ Sync completed successfully!")
	}
	return c.Send("❌ Sync failed!\nPlease check your Anki sync settings.")
}

// handleStats handles /stats and the back-to-stats button. Deck counters
// come live from the store; recent activity comes from the card log.
func (h *Handler) handleStats(c tele.Context) error {
	userID := c.Sender().ID
	ctx := context.Background()

	if !h.cardService.StoreRunning(ctx) {
		if c.Callback() != nil {
			return c.Respond(&tele.CallbackResponse{Text: msgStoreDown, ShowAlert: true})
		}
		return c.Send(msgStoreDown)
	}

	stats, err := h.statsService.Deck(ctx)
	if err != nil {
		h.logger.Error("Failed to get deck stats", zap.Error(err))
		return c.Send("❌ Failed to load deck statistics. Please try again later.")
	}

	// History is auxiliary here; show what we have.
	days, _, err := h.statsService.RecentDays(userID, 1)
	if err != nil {
		h.logger.Warn("Failed to get recent days", zap.Error(err))
	}

	text := statsText(stats, days, h.sessions.ActiveCount())

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnBrowseDays))

	// Edit in place when arriving from the day browser, send otherwise.
	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}

// handleRecent handles /recent command
func (h *Handler) handleRecent(c tele.Context) error {
	userID := c.Sender().ID

	entries, err := h.statsService.Recent(userID, recentLimit)
	if err != nil {
		h.logger.Error("Failed to get recent cards", zap.Error(err))
		return c.Send("❌ Failed to load your recent cards. Please try again later.")
	}

	return c.Send(recentText(entries))
}
