package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ankibot/internal/domain"
	"ankibot/internal/service"
	"ankibot/internal/session"
	"ankibot/internal/spelling"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles plain text messages. A pending correction dialog
// consumes the reply; anything else is treated as a new candidate word.
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	if pending, ok := h.sessions.PendingCorrection(userID); ok {
		return h.handleCorrectionReply(c, pending, text)
	}

	return h.handleNewWord(c, text)
}

// handleCorrectionReply resolves an open suggestion dialog from a
// yes/no/cancel text reply. Anything else re-prompts and keeps the
// dialog open.
func (h *Handler) handleCorrectionReply(c tele.Context, pending session.Correction, reply string) error {
	userID := c.Sender().ID

	switch strings.ToLower(reply) {
	case "yes", "y":
		h.sessions.ClearPendingCorrection(userID)
		h.logger.Info("User accepted correction",
			zap.Int64("user_id", userID),
			zap.String("original", pending.Original),
			zap.String("suggestion", pending.Suggestion),
		)
		if err := c.Send(fmt.Sprintf("✅ Using corrected word: %s", pending.Suggestion)); err != nil {
			return err
		}
		return h.processWord(c, pending.Suggestion)

	case "no", "n":
		h.sessions.ClearPendingCorrection(userID)
		h.logger.Info("User kept original word",
			zap.Int64("user_id", userID),
			zap.String("original", pending.Original),
		)
		if err := c.Send(fmt.Sprintf("✅ Keeping original word: %s", pending.Original)); err != nil {
			return err
		}
		return h.processWord(c, pending.Original)

	case "cancel", "c":
		h.sessions.ClearPendingCorrection(userID)
		return c.Send("❌ Cancelled")

	default:
		return c.Send("Please reply with:\n" +
			"• yes - to use the suggestion\n" +
			"• no - to keep your word\n" +
			"• cancel - to forget it")
	}
}

// handleNewWord runs the format gate and spelling resolution, then
// either opens a suggestion dialog or starts the card pipeline.
func (h *Handler) handleNewWord(c tele.Context, word string) error {
	userID := c.Sender().ID

	if err := spelling.ValidateFormat(word); err != nil {
		// Greetings get a greeting, not an error.
		if spelling.IsStopword(err) {
			return c.Send(msgGreeting)
		}
		h.logger.Info("Word rejected by format gate",
			zap.Int64("user_id", userID),
			zap.String("word", word),
			zap.Error(err),
		)
		return c.Send(fmt.Sprintf("⚠️ %v\nPlease send an English word you'd like to learn.", err))
	}

	result := h.checker.Check(context.Background(), word)
	if !result.Valid {
		if result.Suggestion == "" {
			return c.Send(fmt.Sprintf("⚠️ '%s' doesn't appear to be a valid vocabulary word.", word))
		}

		h.sessions.SetPendingCorrection(userID, word, result.Suggestion)
		return c.Send(suggestionText(word, result.Suggestion), correctionMarkup())
	}

	return h.processWord(c, word)
}

// processWord drives the pipeline for a spelling-resolved word and
// reports progress and the outcome to the chat.
func (h *Handler) processWord(c tele.Context, word string) error {
	userID := c.Sender().ID
	word = strings.ToLower(word)
	ctx := context.Background()

	h.logger.Info("Processing word",
		zap.Int64("user_id", userID),
		zap.String("word", word),
	)

	if !h.cardService.StoreRunning(ctx) {
		if err := c.Send("🚀 Starting Anki..."); err != nil {
			return err
		}
	}

	notify := func(p domain.Progress) {
		if text := progressText(p); text != "" {
			if err := c.Send(text); err != nil {
				h.logger.Warn("Failed to send progress message", zap.Error(err))
			}
		}
	}

	result, err := h.cardService.AddWord(ctx, userID, word, notify)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCardExists):
			return c.Send(fmt.Sprintf("⚠️ Word '%s' already exists in your Anki deck!", word))
		case errors.Is(err, service.ErrStoreUnavailable):
			return c.Send("❌ Failed to start Anki!\n" +
				"Please make sure Anki is installed with the AnkiConnect add-on.")
		case errors.Is(err, service.ErrGenerationFailed):
			return c.Send(fmt.Sprintf("❌ Could not generate card content for '%s'.\nPlease try again later.", word))
		default:
			h.logger.Error("Failed to add word",
				zap.Error(err),
				zap.Int64("user_id", userID),
				zap.String("word", word),
			)
			return c.Send(fmt.Sprintf("❌ An error occurred while processing '%s'.\nPlease try again later.", word))
		}
	}

	if err := c.Send(successText(result.Card)); err != nil {
		return err
	}

	// Auto-sync so the card reaches other devices right away.
	if err := c.Send("🔄 Auto-syncing..."); err != nil {
		return err
	}
	if h.cardService.SyncCollection(ctx) {
		return c.Send("✅ Sync completed!")
	}
	return c.Send("⚠️ Sync failed (card still saved locally)")
}
