package middleware

import (
	"strings"

	"ankibot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Auth creates authentication middleware. /start passes through so the
// authentication code can be submitted with it.
func Auth(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return nil
			}
			userID := sender.ID

			// Ensure user exists
			if err := authService.EnsureUserExists(userID); err != nil {
				logger.Error("Failed to ensure user exists in middleware", zap.Error(err))
				return c.Send("❌ Something went wrong. Please try again later.")
			}

			// /start handles its own authentication
			if strings.HasPrefix(strings.TrimSpace(c.Text()), "/start") {
				return next(c)
			}

			// Check authorization
			authorized, err := authService.IsAuthorized(userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return c.Send("❌ Something went wrong. Please try again later.")
			}

			if !authorized {
				logger.Warn("Unauthorized access attempt",
					zap.Int64("user_id", userID),
					zap.String("username", sender.Username),
				)
				return c.Send(
					"🚫 This bot is private and requires authentication.\n" +
						"If you have an authentication code, use:\n" +
						"/start YOUR_AUTH_CODE",
				)
			}

			return next(c)
		}
	}
}
