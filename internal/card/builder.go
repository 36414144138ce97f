package card

import (
	"context"
	"time"

	"go.uber.org/zap"

	"ankibot/internal/domain"
	"ankibot/internal/llm"
)

// augmentTimeout bounds the single follow-up call that fills a missing
// example field.
const augmentTimeout = 30 * time.Second

// Builder runs the generate/validate/merge loop that turns a word into a
// card. Retry policy lives here and only here; the backend is called
// once per attempt with no internal retries.
type Builder struct {
	backend     llm.Provider
	maxAttempts int
	timeout     time.Duration
	logger      *zap.Logger
}

// NewBuilder creates a card builder. timeout bounds each individual
// generation call, not the whole run.
func NewBuilder(backend llm.Provider, maxAttempts int, timeout time.Duration, logger *zap.Logger) *Builder {
	return &Builder{
		backend:     backend,
		maxAttempts: maxAttempts,
		timeout:     timeout,
		logger:      logger,
	}
}

// Build generates a card for word, retrying up to the attempt budget and
// falling back to a field-wise merge of all parsed attempts when none
// passes validation. It is total: backend failures are logged and
// skipped, and when nothing usable was produced at all the result is an
// all-absent card rather than an error. Cancelling ctx stops the loop
// early; whatever history exists is still merged.
func (b *Builder) Build(ctx context.Context, word string, notify domain.Notify) domain.Card {
	var history []domain.Card

	for attempt := 1; attempt <= b.maxAttempts; attempt++ {
		if ctx.Err() != nil {
			b.logger.Warn("Generation cancelled",
				zap.String("word", word),
				zap.Int("attempt", attempt),
				zap.Error(ctx.Err()),
			)
			break
		}

		emit(notify, domain.Progress{Stage: domain.StageGenerating, Attempt: attempt, MaxAttempts: b.maxAttempts})
		b.logger.Info("Generation attempt",
			zap.String("word", word),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", b.maxAttempts),
		)

		raw, err := b.complete(ctx, buildPrompt(word))
		if err != nil {
			b.logger.Error("Generation attempt failed",
				zap.String("word", word),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			continue
		}

		parsed := Parse(raw, word)
		history = append(history, parsed)

		cleaned := CleanCard(parsed)
		validation := Validate(word, cleaned)
		if validation.Valid {
			b.logger.Info("Valid card generated",
				zap.String("word", word),
				zap.Int("attempt", attempt),
				zap.Float64("score", validation.Score),
			)
			return b.augmentExamples(ctx, word, cleaned)
		}

		b.logger.Warn("Attempt failed validation",
			zap.String("word", word),
			zap.Int("attempt", attempt),
			zap.Float64("score", validation.Score),
			zap.Strings("issues", validation.Issues),
		)
		emit(notify, domain.Progress{
			Stage:       domain.StageRejected,
			Attempt:     attempt,
			MaxAttempts: b.maxAttempts,
			Issues:      validation.Issues,
		})
	}

	if len(history) > 0 {
		emit(notify, domain.Progress{Stage: domain.StageMerging, Attempt: len(history), MaxAttempts: b.maxAttempts})
		b.logger.Info("Merging attempt history",
			zap.String("word", word),
			zap.Int("attempts", len(history)),
		)
		merged := CleanCard(Merge(word, history))
		return b.augmentExamples(ctx, word, merged)
	}

	b.logger.Error("All generation attempts failed", zap.String("word", word))
	return domain.EmptyCard(word)
}

func (b *Builder) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()
	return b.backend.Complete(ctx, prompt)
}

// augmentExamples fills in an example when the card has none, with one
// extra backend call scoped to the word class the explanations suggest.
// Best effort: any failure leaves the card as it was.
func (b *Builder) augmentExamples(ctx context.Context, word string, c domain.Card) domain.Card {
	if c.ExampleNoun.Valid || c.ExampleVerb.Valid {
		return c
	}

	class := "verb"
	if c.ExplanationNoun.Valid {
		class = "noun"
	}
	b.logger.Info("Generating missing example",
		zap.String("word", word),
		zap.String("class", class),
	)

	ctx, cancel := context.WithTimeout(ctx, augmentTimeout)
	defer cancel()

	raw, err := b.backend.Complete(ctx, buildExamplePrompt(word, class))
	if err != nil {
		b.logger.Error("Failed to generate example",
			zap.String("word", word),
			zap.Error(err),
		)
		return c
	}

	example := domain.NewField(CleanMarkdown(raw))
	if !example.Valid {
		return c
	}
	if class == "noun" {
		c.ExampleNoun = example
	} else {
		c.ExampleVerb = example
	}
	return c
}

func emit(notify domain.Notify, p domain.Progress) {
	if notify != nil {
		notify(p)
	}
}
