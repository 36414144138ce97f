package spelling

import (
	"bufio"
	_ "embed"
	"strings"
)

//go:embed words.txt
var wordsData string

// Dictionary is a frequency-ordered word list that produces
// edit-distance correction candidates. Rank follows file order:
// earlier lines are more frequent and win frequency tie-breaks.
type Dictionary struct {
	ranks map[string]int
	next  int
}

// NewDictionary loads the embedded word list.
func NewDictionary() *Dictionary {
	d := &Dictionary{ranks: make(map[string]int, 1024)}
	scanner := bufio.NewScanner(strings.NewReader(wordsData))
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		d.add(strings.ToLower(word))
	}
	return d
}

// AddWords appends extra vocabulary after the embedded list, at the
// lowest frequency ranks.
func (d *Dictionary) AddWords(words []string) {
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			d.add(w)
		}
	}
}

func (d *Dictionary) add(word string) {
	if _, ok := d.ranks[word]; ok {
		return
	}
	d.ranks[word] = d.next
	d.next++
}

// Known reports whether the word is in the dictionary, case-insensitively.
func (d *Dictionary) Known(word string) bool {
	_, ok := d.ranks[strings.ToLower(word)]
	return ok
}

// Suggest returns the best correction for an unknown word and whether the
// choice was ambiguous: several candidates equally close, or nothing
// closer than two edits. An empty best means no candidate exists within
// two edits. The best candidate is the most frequent one at the smallest
// edit distance, so the result is deterministic.
func (d *Dictionary) Suggest(word string) (best string, ambiguous bool) {
	w := strings.ToLower(word)

	candidates := d.knownOf(edits1(w))
	distance := 1
	if len(candidates) == 0 {
		candidates = d.knownEdits2(w)
		distance = 2
	}
	if len(candidates) == 0 {
		return "", false
	}

	best = candidates[0]
	for _, c := range candidates[1:] {
		if d.ranks[c] < d.ranks[best] {
			best = c
		}
	}
	return best, len(candidates) > 1 || distance == 2
}

// knownOf filters candidates down to distinct dictionary words.
func (d *Dictionary) knownOf(candidates []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, c := range candidates {
		if _, dup := seen[c]; dup {
			continue
		}
		if _, ok := d.ranks[c]; ok {
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

// knownEdits2 collects dictionary words exactly two edits away without
// materializing the full second-edit set.
func (d *Dictionary) knownEdits2(word string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, e1 := range edits1(word) {
		for _, e2 := range edits1(e1) {
			if _, dup := seen[e2]; dup {
				continue
			}
			if _, ok := d.ranks[e2]; ok {
				seen[e2] = struct{}{}
				out = append(out, e2)
			}
		}
	}
	return out
}

const letters = "abcdefghijklmnopqrstuvwxyz'-"

// edits1 generates every string one edit away from word: deletes,
// adjacent transposes, replaces, and inserts.
func edits1(word string) []string {
	out := make([]string, 0, 58*len(word)+30)
	for i := 0; i <= len(word); i++ {
		left, right := word[:i], word[i:]
		if right != "" {
			out = append(out, left+right[1:])
		}
		if len(right) > 1 {
			out = append(out, left+string(right[1])+string(right[0])+right[2:])
		}
		for _, ch := range letters {
			if right != "" {
				out = append(out, left+string(ch)+right[1:])
			}
			out = append(out, left+string(ch)+right)
		}
	}
	return out
}
