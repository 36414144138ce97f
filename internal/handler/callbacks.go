package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"ankibot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit(). If the message is not
// modified, the callback is just acknowledged. Otherwise the callback is
// acknowledged and the error returned, so the caller can send a new
// message instead.
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Another callback already edited this message; nothing to resend.
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles callback queries the named buttons don't cover:
// dynamic day-browser data, plus buttons whose Unique didn't come through.
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Data arrives with a leading form feed when the unique isn't routed.
	data := cleanCallbackData(callback.Data)
	h.logger.Info("Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	if callback.Unique == "" {
		switch data {
		case btnUseSuggestion.Unique:
			return h.handleUseSuggestion(c)
		case btnKeepOriginal.Unique:
			return h.handleKeepOriginal(c)
		case btnCancelWord.Unique:
			return h.handleCancelWord(c)
		case btnBrowseDays.Unique, btnBackToDays.Unique:
			return h.handleBrowseDays(c)
		case btnBackToStats.Unique:
			return h.handleStats(c)
		}
	}

	// Dynamic buttons carry their payload in the data itself.
	switch {
	case strings.HasPrefix(data, "days_"):
		return h.handleDaysPage(c, data)
	case strings.HasPrefix(data, "day_"):
		return h.handleDaySelection(c, data)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// resolveDialog replaces the correction dialog message with the outcome,
// dropping its buttons, and acknowledges the callback.
func (h *Handler) resolveDialog(c tele.Context, text string) {
	userID := c.Sender().ID

	if err := c.Edit(text); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr != nil {
			if sendErr := c.Send(text); sendErr != nil {
				h.logger.Warn("Failed to send dialog outcome", zap.Error(sendErr))
			}
		}
		return
	}
	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
}

// handleUseSuggestion resolves the correction dialog in favor of the
// suggested spelling.
func (h *Handler) handleUseSuggestion(c tele.Context) error {
	userID := c.Sender().ID

	pending, ok := h.sessions.PendingCorrection(userID)
	if !ok {
		return c.Respond(&tele.CallbackResponse{
			Text:      "This suggestion has expired. Send the word again.",
			ShowAlert: true,
		})
	}

	h.sessions.ClearPendingCorrection(userID)
	h.logger.Info("User accepted correction",
		zap.Int64("user_id", userID),
		zap.String("original", pending.Original),
		zap.String("suggestion", pending.Suggestion),
	)

	h.resolveDialog(c, fmt.Sprintf("✅ Using corrected word: %s", pending.Suggestion))
	return h.processWord(c, pending.Suggestion)
}

// handleKeepOriginal resolves the correction dialog keeping the user's
// own spelling.
func (h *Handler) handleKeepOriginal(c tele.Context) error {
	userID := c.Sender().ID

	pending, ok := h.sessions.PendingCorrection(userID)
	if !ok {
		return c.Respond(&tele.CallbackResponse{
			Text:      "This suggestion has expired. Send the word again.",
			ShowAlert: true,
		})
	}

	h.sessions.ClearPendingCorrection(userID)
	h.logger.Info("User kept original word",
		zap.Int64("user_id", userID),
		zap.String("original", pending.Original),
	)

	h.resolveDialog(c, fmt.Sprintf("✅ Keeping original word: %s", pending.Original))
	return h.processWord(c, pending.Original)
}

// handleCancelWord dismisses the correction dialog
func (h *Handler) handleCancelWord(c tele.Context) error {
	userID := c.Sender().ID

	h.sessions.ClearPendingCorrection(userID)
	h.resolveDialog(c, "❌ Cancelled")
	return nil
}

// handleBrowseDays opens the day browser at its first page
func (h *Handler) handleBrowseDays(c tele.Context) error {
	return h.sendDaysPage(c, 1)
}

// handleDaysPage turns a days_<page> callback into that page
func (h *Handler) handleDaysPage(c tele.Context, data string) error {
	page, err := strconv.Atoi(strings.TrimPrefix(data, "days_"))
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid page"})
	}
	return h.sendDaysPage(c, page)
}

// sendDaysPage renders one page of days that had cards added, one button
// per day, with pagination arrows when there is more.
func (h *Handler) sendDaysPage(c tele.Context, page int) error {
	userID := c.Sender().ID

	days, totalPages, err := h.statsService.RecentDays(userID, page)
	if err != nil {
		h.logger.Error("Failed to get days list", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Failed to load your history"})
	}

	if len(days) == 0 {
		return c.Respond(&tele.CallbackResponse{
			Text:      "You haven't added any cards yet",
			ShowAlert: true,
		})
	}

	text := "📅 Days with new cards:"
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	for _, day := range days {
		btnText := fmt.Sprintf("%s (%d)", day.DisplayString(), day.CardCount)
		btn := markup.Data(btnText, "day_"+day.DateString())
		rows = append(rows, markup.Row(btn))
	}

	if totalPages > 1 {
		navRow := tele.Row{}
		if page > 1 {
			navRow = append(navRow, markup.Data("⬅️", fmt.Sprintf("days_%d", page-1)))
		}
		if page < totalPages {
			navRow = append(navRow, markup.Data("➡️", fmt.Sprintf("days_%d", page+1)))
		}
		if len(navRow) > 0 {
			rows = append(rows, navRow)
		}
	}

	rows = append(rows, markup.Row(btnBackToStats))
	markup.Inline(rows...)

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

// handleDaySelection shows the cards added on the selected day
func (h *Handler) handleDaySelection(c tele.Context, data string) error {
	userID := c.Sender().ID
	dateStr := strings.TrimPrefix(data, "day_")

	date, err := time.Parse("20060102", dateStr)
	if err != nil {
		h.logger.Warn("Invalid day callback", zap.String("data", data))
		return c.Respond(&tele.CallbackResponse{Text: "Invalid day"})
	}

	entries, err := h.statsService.CardsOn(userID, dateStr)
	if err != nil {
		h.logger.Error("Failed to get cards for day",
			zap.Error(err),
			zap.String("date", dateStr),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Failed to load that day"})
	}

	if len(entries) == 0 {
		return c.Respond(&tele.CallbackResponse{Text: "No cards on that day"})
	}

	text := dayText(domain.Day{Date: date, CardCount: len(entries)}, entries)

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnBackToDays, btnBackToStats))

	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}
