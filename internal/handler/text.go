package handler

import (
	"fmt"
	"strings"

	"ankibot/internal/domain"
)

const (
	msgUsage = "Send me any English word and I'll create an Anki flashcard for it.\n\n" +
		"Commands:\n" +
		"/sync - sync the Anki collection\n" +
		"/stats - deck statistics and recent days\n" +
		"/recent - last added cards\n" +
		"/help - full help"

	msgGreeting = "👋 Hello! I'm here to help you learn vocabulary.\n\n" +
		"Send me any English word you'd like to learn, and I'll create a flashcard for you!\n\n" +
		"For example: 'serendipity', 'eloquent', 'perseverance'"

	msgAuthRequired = "🚫 This bot is private and requires authentication.\n" +
		"If you have an authentication code, use:\n" +
		"/start YOUR_AUTH_CODE"

	msgStoreDown = "❌ Anki is not running! Use /start first."

	msgHelp = "🤖 Anki Vocabulary Bot\n\n" +
		"Send me any English word and I'll create an English-Ukrainian flashcard:\n" +
		"• spelling check with suggestions\n" +
		"• translation, part of speech, pronunciation (BrE/AmE)\n" +
		"• explanations and example sentences\n" +
		"• quality validation with retries\n" +
		"• automatic addition to Anki and sync\n\n" +
		"Commands:\n" +
		"/start - authorize and start Anki\n" +
		"/sync - sync the Anki collection\n" +
		"/stats - deck statistics and recent days\n" +
		"/recent - last added cards\n" +
		"/help - this message\n\n" +
		"If I suggest a spelling correction, use the buttons or reply 'yes', 'no', or 'cancel'."
)

// suggestionText renders the spelling correction dialog
func suggestionText(original, suggestion string) string {
	return fmt.Sprintf(
		"🔍 Did you mean '%s' instead of '%s'?\n\n"+
			"Tap a button below, or reply with 'yes', 'no', or 'cancel'.",
		suggestion, original,
	)
}

// progressText renders a build progress event for the chat. An empty
// result means nothing should be sent.
func progressText(p domain.Progress) string {
	switch p.Stage {
	case domain.StageGenerating:
		return fmt.Sprintf("🔄 Generating flashcard... (attempt %d/%d)", p.Attempt, p.MaxAttempts)
	case domain.StageRejected:
		issues := p.Issues
		if len(issues) > 2 {
			issues = issues[:2]
		}
		return fmt.Sprintf("⚠️ Issues found: %s...", strings.Join(issues, ", "))
	case domain.StageMerging:
		return "🔧 Merging best parts from all attempts..."
	}
	return ""
}

// successText renders the post-add confirmation with a short preview:
// the translation and the first pronunciation variant only.
func successText(c domain.Card) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ Added '%s' to Anki!\n\n", c.Word)
	if c.Translation.Valid {
		fmt.Fprintf(&b, "📝 Translation: %s\n", c.Translation.Text)
	}
	if c.Pronunciation.Valid {
		first := strings.TrimSpace(strings.SplitN(c.Pronunciation.Text, ",", 2)[0])
		fmt.Fprintf(&b, "🔊 Pronunciation: %s", first)
	}
	return strings.TrimRight(b.String(), "\n")
}

// statsText renders deck counters, recent activity from the card log,
// and the number of open correction dialogs.
func statsText(stats []domain.DeckStat, days []domain.Day, pending int) string {
	var b strings.Builder
	b.WriteString("📊 Anki Statistics\n")

	for _, s := range stats {
		fmt.Fprintf(&b, "\nDeck: %s\n", s.Name)
		fmt.Fprintf(&b, "🆕 New: %d\n", s.NewCount)
		fmt.Fprintf(&b, "📖 Learning: %d\n", s.LearnCount)
		fmt.Fprintf(&b, "🔁 Review: %d\n", s.ReviewCount)
		fmt.Fprintf(&b, "🗂 Total: %d\n", s.TotalInDeck)
	}

	if len(days) > 0 {
		b.WriteString("\nRecent activity:\n")
		for _, d := range days {
			fmt.Fprintf(&b, "• %s (%d)\n", d.DisplayString(), d.CardCount)
		}
	}

	fmt.Fprintf(&b, "\n✏️ Pending corrections: %d", pending)
	return b.String()
}

// recentText renders the latest card log entries, newest first
func recentText(entries []domain.CardEntry) string {
	if len(entries) == 0 {
		return "You haven't added any cards yet. Send me a word to get started!"
	}

	var b strings.Builder
	b.WriteString("🕘 Recently added cards:\n\n")
	for i, e := range entries {
		fmt.Fprintf(&b, "%d. %s — %s (%s)\n", i+1, e.Word, e.Translation, e.CreatedAt.Format("2 Jan"))
	}
	return strings.TrimRight(b.String(), "\n")
}

// dayText renders the cards added on one day
func dayText(day domain.Day, entries []domain.CardEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📝 Cards for %s (%d):\n\n", day.DisplayString(), len(entries))
	for i, e := range entries {
		fmt.Fprintf(&b, "%d. %s — %s\n", i+1, e.Word, e.Translation)
	}
	return strings.TrimRight(b.String(), "\n")
}
