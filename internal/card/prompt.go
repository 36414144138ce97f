package card

import "fmt"

// fewShotExamples anchors the backend to the labeled plain-text schema.
// The examples double as the format reference the model copies, so their
// wording is part of the prompt contract.
const fewShotExamples = `
Example 1 for word "received":
TRANSLATION: verb — отримав/отримала, past participle — отриманий
PART_OF_SPEECH: Verb (дієслово)
PRONUNCIATION: /rɪˈsiːvd/ (BrE), /rɪˈsiːvd/ (AmE)
EXPLANATION_NOUN: N/A
EXPLANATION_VERB: Past tense of receive; to have gotten or obtained something (отримав; одержав щось)
EXAMPLE_NOUN: N/A
EXAMPLE_VERB: I received your letter yesterday. (Я отримав твого листа вчора.)

Example 2 for word "run":
TRANSLATION: verb — бігти/бігати, noun — біг/пробіжка
PART_OF_SPEECH: Verb (дієслово), Noun (іменник)
PRONUNCIATION: /rʌn/ (BrE), /rʌn/ (AmE)
EXPLANATION_NOUN: An act of running or a period of running (біг, пробіжка)
EXPLANATION_VERB: To move rapidly on foot (бігти, рухатися швидко)
EXAMPLE_NOUN: I went for a morning run in the park. (Я пішов на ранкову пробіжку в парк.)
EXAMPLE_VERB: She likes to run every evening. (Вона любить бігати щовечора.)
`

// buildPrompt renders the full card-generation prompt. Label spelling,
// the trailing colon, and one-label-per-line are the response contract
// Parse depends on.
func buildPrompt(word string) string {
	return fmt.Sprintf(`Create a vocabulary card for the English word "%s".

CRITICAL RULES:
1. Use ONLY plain text. Do NOT use ** or * or any markdown formatting.
2. Each line must start with the exact label shown below.
3. If the word cannot be used as noun or verb, write "N/A" for those fields.
4. Always include Ukrainian translations in Cyrillic script.

%s

Now create a card for "%s" following this EXACT format:
TRANSLATION: [part of speech] — [Ukrainian translation]
PART_OF_SPEECH: [Primary part of speech in English] ([Ukrainian translation])
PRONUNCIATION: /[IPA British]/ (BrE), /[IPA American]/ (AmE)
EXPLANATION_NOUN: [IF word can be a noun: English explanation] ([Ukrainian explanation])
EXPLANATION_VERB: [IF word can be a verb: English explanation] ([Ukrainian explanation])
EXAMPLE_NOUN: [IF word can be a noun: English sentence with the word] ([Ukrainian translation])
EXAMPLE_VERB: [IF word can be a verb: English sentence with the word] ([Ukrainian translation])`,
		word, fewShotExamples, word)
}

// buildExamplePrompt renders the follow-up prompt that fills a missing
// example field, scoped to one word class.
func buildExamplePrompt(word, class string) string {
	return fmt.Sprintf(`Generate ONE example sentence using the word "%s" as a %s.
Format: [English sentence] ([Ukrainian translation])
The sentence should be simple and clearly demonstrate the word's meaning.
Do not use any markdown formatting.`, word, class)
}
