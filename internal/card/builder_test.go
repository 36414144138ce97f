package card

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ankibot/internal/domain"
	"ankibot/internal/testutil"
)

const validResponse = `TRANSLATION: verb — бігти/бігати, noun — біг/пробіжка
PART_OF_SPEECH: Verb (дієслово), Noun (іменник)
PRONUNCIATION: /rʌn/ (BrE), /rʌn/ (AmE)
EXPLANATION_NOUN: An act of running (біг)
EXPLANATION_VERB: To move rapidly on foot (бігти)
EXAMPLE_NOUN: I went for a morning run. (Я пішов на пробіжку.)
EXAMPLE_VERB: She likes to run every evening. (Вона любить бігати щовечора.)`

// Misses part of speech, pronunciation, and explanations.
const partialTranslation = `TRANSLATION: дуже довгий переклад слова
EXAMPLE_VERB: He can run fast. (Він може швидко бігати.)`

// Misses translation, explanations, and examples.
const partialPronunciation = `PART_OF_SPEECH: Verb (дієслово)
PRONUNCIATION: /rʌn/ (BrE), /rʌn/ (AmE)`

func isCardPrompt(prompt string) bool {
	return strings.Contains(prompt, "Create a vocabulary card")
}

func isExamplePrompt(prompt string) bool {
	return strings.Contains(prompt, "Generate ONE example sentence")
}

func newTestBuilder(backend *testutil.MockProvider, maxAttempts int) *Builder {
	return NewBuilder(backend, maxAttempts, time.Second, testutil.NewTestLogger())
}

func TestBuilder_Build_ValidFirstAttempt(t *testing.T) {
	mockBackend := new(testutil.MockProvider)
	mockBackend.On("Complete", mock.Anything, mock.MatchedBy(isCardPrompt)).Return(validResponse, nil).Once()

	builder := newTestBuilder(mockBackend, 4)

	c := builder.Build(context.Background(), "run", nil)

	assert.Equal(t, "run", c.Word)
	assert.Equal(t, "verb — бігти/бігати, noun — біг/пробіжка", c.Translation.Text)
	assert.Equal(t, "/rʌn/ (BrE), /rʌn/ (AmE)", c.Pronunciation.Text)
	assert.True(t, c.ExampleVerb.Valid)
	mockBackend.AssertExpectations(t)
	mockBackend.AssertNumberOfCalls(t, "Complete", 1)
}

func TestBuilder_Build_PromptNamesTheWord(t *testing.T) {
	mockBackend := new(testutil.MockProvider)
	mockBackend.On("Complete", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return isCardPrompt(prompt) && strings.Contains(prompt, `"serendipity"`)
	})).Return(validResponse, nil).Once()

	builder := newTestBuilder(mockBackend, 1)

	builder.Build(context.Background(), "serendipity", nil)

	mockBackend.AssertExpectations(t)
}

func TestBuilder_Build_MergesRejectedAttempts(t *testing.T) {
	mockBackend := new(testutil.MockProvider)
	mockBackend.On("Complete", mock.Anything, mock.MatchedBy(isCardPrompt)).Return(partialTranslation, nil).Once()
	mockBackend.On("Complete", mock.Anything, mock.MatchedBy(isCardPrompt)).Return(partialPronunciation, nil).Once()

	builder := newTestBuilder(mockBackend, 2)

	c := builder.Build(context.Background(), "run", nil)

	assert.Equal(t, "дуже довгий переклад слова", c.Translation.Text)
	assert.Equal(t, "Verb (дієслово)", c.PartOfSpeech.Text)
	assert.Equal(t, "/rʌn/ (BrE), /rʌn/ (AmE)", c.Pronunciation.Text)
	assert.Equal(t, "He can run fast. (Він може швидко бігати.)", c.ExampleVerb.Text)
	mockBackend.AssertExpectations(t)
	mockBackend.AssertNumberOfCalls(t, "Complete", 2)
}

func TestBuilder_Build_AugmentsMissingExampleAfterMerge(t *testing.T) {
	withExplanation := `TRANSLATION: довгий переклад слова
EXPLANATION_NOUN: An act of running (біг)`
	bare := `PART_OF_SPEECH: Noun (іменник)`

	mockBackend := new(testutil.MockProvider)
	mockBackend.On("Complete", mock.Anything, mock.MatchedBy(isCardPrompt)).Return(withExplanation, nil).Once()
	mockBackend.On("Complete", mock.Anything, mock.MatchedBy(isCardPrompt)).Return(bare, nil).Once()
	mockBackend.On("Complete", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return isExamplePrompt(prompt) && strings.Contains(prompt, "as a noun")
	})).Return("The morning run helped. (Ранкова пробіжка допомогла.)", nil).Once()

	builder := newTestBuilder(mockBackend, 2)

	c := builder.Build(context.Background(), "run", nil)

	assert.Equal(t, "The morning run helped. (Ранкова пробіжка допомогла.)", c.ExampleNoun.Text)
	assert.False(t, c.ExampleVerb.Valid)
	mockBackend.AssertExpectations(t)
}

func TestBuilder_Build_AugmentsValidCardWithoutExamples(t *testing.T) {
	noExamples := `TRANSLATION: verb — бігти/бігати
PART_OF_SPEECH: Verb (дієслово)
PRONUNCIATION: /rʌn/ (BrE), /rʌn/ (AmE)
EXPLANATION_VERB: To move rapidly on foot (бігти)
EXAMPLE_NOUN: N/A
EXAMPLE_VERB: N/A`

	mockBackend := new(testutil.MockProvider)
	mockBackend.On("Complete", mock.Anything, mock.MatchedBy(isCardPrompt)).Return(noExamples, nil).Once()
	mockBackend.On("Complete", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return isExamplePrompt(prompt) && strings.Contains(prompt, "as a verb")
	})).Return("", errors.New("backend went away")).Once()

	builder := newTestBuilder(mockBackend, 4)

	c := builder.Build(context.Background(), "run", nil)

	// The augmentation failure is swallowed; the accepted card survives.
	assert.Equal(t, "verb — бігти/бігати", c.Translation.Text)
	assert.False(t, c.ExampleNoun.Valid)
	assert.False(t, c.ExampleVerb.Valid)
	mockBackend.AssertExpectations(t)
}

func TestBuilder_Build_TotalBackendFailure(t *testing.T) {
	mockBackend := new(testutil.MockProvider)
	mockBackend.On("Complete", mock.Anything, mock.Anything).Return("", errors.New("connection refused"))

	builder := newTestBuilder(mockBackend, 3)

	c := builder.Build(context.Background(), "run", nil)

	assert.True(t, c.IsEmpty())
	assert.Equal(t, "run", c.Word)
	mockBackend.AssertNumberOfCalls(t, "Complete", 3)
}

func TestBuilder_Build_CancelledContext(t *testing.T) {
	mockBackend := new(testutil.MockProvider)
	builder := newTestBuilder(mockBackend, 4)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := builder.Build(ctx, "run", nil)

	assert.True(t, c.IsEmpty())
	mockBackend.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestBuilder_Build_EmitsProgress(t *testing.T) {
	mockBackend := new(testutil.MockProvider)
	mockBackend.On("Complete", mock.Anything, mock.MatchedBy(isCardPrompt)).Return(partialTranslation, nil).Once()
	mockBackend.On("Complete", mock.Anything, mock.MatchedBy(isCardPrompt)).Return(partialTranslation, nil).Once()

	builder := newTestBuilder(mockBackend, 2)

	var events []domain.Progress
	builder.Build(context.Background(), "run", func(p domain.Progress) {
		events = append(events, p)
	})

	stages := make([]domain.ProgressStage, 0, len(events))
	for _, e := range events {
		stages = append(stages, e.Stage)
	}
	assert.Equal(t, []domain.ProgressStage{
		domain.StageGenerating,
		domain.StageRejected,
		domain.StageGenerating,
		domain.StageRejected,
		domain.StageMerging,
	}, stages)

	assert.Equal(t, 1, events[0].Attempt)
	assert.Equal(t, 2, events[0].MaxAttempts)
	assert.Equal(t, 2, events[2].Attempt)
	assert.NotEmpty(t, events[1].Issues)
}

func TestBuilder_Build_ValidAttemptEmitsNoRejection(t *testing.T) {
	mockBackend := new(testutil.MockProvider)
	mockBackend.On("Complete", mock.Anything, mock.MatchedBy(isCardPrompt)).Return(validResponse, nil).Once()

	builder := newTestBuilder(mockBackend, 4)

	var events []domain.Progress
	builder.Build(context.Background(), "run", func(p domain.Progress) {
		events = append(events, p)
	})

	assert.Len(t, events, 1)
	assert.Equal(t, domain.StageGenerating, events[0].Stage)
}
