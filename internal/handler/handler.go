package handler

import (
	"ankibot/internal/service"
	"ankibot/internal/session"
	"ankibot/internal/spelling"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot          *tele.Bot
	authService  *service.AuthService
	cardService  *service.CardService
	statsService *service.StatsService
	checker      *spelling.Checker
	sessions     *session.Manager
	logger       *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	cardService *service.CardService,
	statsService *service.StatsService,
	checker *spelling.Checker,
	sessions *session.Manager,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:          bot,
		authService:  authService,
		cardService:  cardService,
		statsService: statsService,
		checker:      checker,
		sessions:     sessions,
		logger:       logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/help", h.handleHelp)
	h.bot.Handle("/sync", h.handleSync)
	h.bot.Handle("/stats", h.handleStats)
	h.bot.Handle("/recent", h.handleRecent)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnUseSuggestion, h.handleUseSuggestion)
	h.bot.Handle(&btnKeepOriginal, h.handleKeepOriginal)
	h.bot.Handle(&btnCancelWord, h.handleCancelWord)
	h.bot.Handle(&btnBrowseDays, h.handleBrowseDays)
	h.bot.Handle(&btnBackToDays, h.handleBrowseDays)
	h.bot.Handle(&btnBackToStats, h.handleStats)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// Inline keyboard buttons
var (
	btnUseSuggestion = tele.Btn{
		Unique: "use_suggestion",
		Text:   "✅ Yes, use it",
	}
	btnKeepOriginal = tele.Btn{
		Unique: "keep_original",
		Text:   "✏️ No, keep mine",
	}
	btnCancelWord = tele.Btn{
		Unique: "cancel_word",
		Text:   "❌ Cancel",
	}
	btnBrowseDays = tele.Btn{
		Unique: "browse_days",
		Text:   "📅 Recent days",
	}
	btnBackToDays = tele.Btn{
		Unique: "back_to_days",
		Text:   "◀️ Back to days",
	}
	btnBackToStats = tele.Btn{
		Unique: "back_to_stats",
		Text:   "📊 Back to stats",
	}
)

// correctionMarkup returns the keyboard for a spelling suggestion dialog
func correctionMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnUseSuggestion, btnKeepOriginal),
		menu.Row(btnCancelWord),
	)
	return menu
}
