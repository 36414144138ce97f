package handler

import (
	"context"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start, including the authentication code payload
// ("/start <code>"). The auth middleware lets /start through unchecked.
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send("❌ Something went wrong. Please try again later.")
	}

	if !authorized {
		code := ""
		if c.Message() != nil {
			code = strings.TrimSpace(c.Message().Payload)
		}

		if code == "" {
			return c.Send(msgAuthRequired)
		}
		if !h.authService.CheckAuthCode(code) {
			h.logger.Warn("Invalid auth code submitted", zap.Int64("user_id", userID))
			return c.Send("❌ Invalid authentication code.")
		}
		if err := h.authService.AuthorizeUser(userID); err != nil {
			h.logger.Error("Failed to authorize user", zap.Error(err))
			return c.Send("❌ Something went wrong. Please try again later.")
		}

		h.logger.Info("User authorized", zap.Int64("user_id", userID))
		if err := c.Send("✅ Access granted!"); err != nil {
			return err
		}
	}

	return h.greet(c)
}

// greet reports flashcard store status, starting the desktop app when it
// is down, and explains what the bot does.
func (h *Handler) greet(c tele.Context) error {
	ctx := context.Background()

	if h.cardService.StoreRunning(ctx) {
		return c.Send("✅ Anki is already running!\n\n" + msgUsage)
	}

	if err := c.Send("🚀 Starting Anki..."); err != nil {
		return err
	}

	if err := h.cardService.StartStore(ctx); err != nil {
		h.logger.Warn("Failed to start flashcard store", zap.Error(err))
		return c.Send("❌ Failed to start Anki!\n" +
			"Please make sure Anki is installed with the AnkiConnect add-on.\n\n" + msgUsage)
	}

	return c.Send("✅ Anki started successfully!\n\n" + msgUsage)
}

// handleHelp handles /help command
func (h *Handler) handleHelp(c tele.Context) error {
	return c.Send(msgHelp)
}
