package spelling

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Reason tags why a word failed the format gate.
type Reason int

const (
	ReasonInvalidChars Reason = iota + 1
	ReasonTooShort
	ReasonTooLong
	ReasonStopword
)

// FormatError reports a word rejected by the format gate. The Reason lets
// callers route stopword hits to a greeting reply instead of an error.
type FormatError struct {
	Word   string
	Reason Reason
}

func (e *FormatError) Error() string {
	switch e.Reason {
	case ReasonInvalidChars:
		return fmt.Sprintf("'%s' contains invalid characters (only letters, hyphens, and apostrophes allowed)", e.Word)
	case ReasonTooShort:
		return fmt.Sprintf("'%s' is too short (minimum 2 characters)", e.Word)
	case ReasonTooLong:
		return fmt.Sprintf("'%s' is too long (maximum 30 characters)", e.Word)
	case ReasonStopword:
		return fmt.Sprintf("'%s' is a greeting or interjection, not a vocabulary word", e.Word)
	}
	return fmt.Sprintf("'%s' is not a valid word", e.Word)
}

var wordPattern = regexp.MustCompile(`^[a-zA-Z\-']+$`)

// stopwords are greetings and fillers that are never vocabulary entries.
var stopwords = map[string]struct{}{
	"hi": {}, "hello": {}, "hey": {}, "bye": {}, "goodbye": {},
	"ok": {}, "okay": {}, "yes": {}, "no": {}, "yeah": {}, "nah": {},
}

// ValidateFormat checks a candidate word's character set, length, and
// stoplist membership. Rules apply in order; the first failure wins.
func ValidateFormat(word string) error {
	if !wordPattern.MatchString(word) {
		return &FormatError{Word: word, Reason: ReasonInvalidChars}
	}
	if len(word) < 2 {
		return &FormatError{Word: word, Reason: ReasonTooShort}
	}
	if len(word) > 30 {
		return &FormatError{Word: word, Reason: ReasonTooLong}
	}
	if _, ok := stopwords[strings.ToLower(word)]; ok {
		return &FormatError{Word: word, Reason: ReasonStopword}
	}
	return nil
}

// IsStopword reports whether err is a stoplist rejection.
func IsStopword(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe) && fe.Reason == ReasonStopword
}
