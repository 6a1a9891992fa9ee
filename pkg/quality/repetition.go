package quality

import (
	"strings"
	"unicode"
)

// Phrase bounds for the repetition rule: the "no exact phrase longer than
// three words" rule means n-grams of at least four words. Exact repeats
// longer than twelve words are not worth chasing, so tracking stops there.
const (
	minPhraseWords = 4
	maxPhraseWords = 12
)

// tokenize lowercases text, strips punctuation and returns the bare words.
// Apostrophes stay inside words so contractions survive as single tokens.
func tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r), unicode.IsNumber(r), r == '\'':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Fields(b.String())
}

// repeatedPhrases counts every contiguous n-gram of minPhraseWords to
// maxPhraseWords words across the full token stream and returns those whose
// count exceeds maxRepeat. Each distinct starting position counts once, so
// overlapping occurrences of the same underlying sentence are not collapsed.
func repeatedPhrases(words []string, maxRepeat int) map[string]int {
	counts := make(map[string]int)
	for n := minPhraseWords; n <= maxPhraseWords; n++ {
		if n > len(words) {
			break
		}
		for i := 0; i+n <= len(words); i++ {
			counts[strings.Join(words[i:i+n], " ")]++
		}
	}

	flagged := make(map[string]int)
	for phrase, c := range counts {
		if c > maxRepeat {
			flagged[phrase] = c
		}
	}
	return flagged
}

// terminologyCounts counts case-insensitive whole-phrase occurrences of each
// tracked term in the token stream. Terms that never occur are omitted.
func terminologyCounts(words []string, terms []string) map[string]int {
	counts := make(map[string]int)
	for _, term := range terms {
		termWords := tokenize(term)
		if len(termWords) == 0 {
			continue
		}

		n := 0
		for i := 0; i+len(termWords) <= len(words); i++ {
			if matchAt(words, i, termWords) {
				n++
			}
		}
		if n > 0 {
			counts[term] = n
		}
	}
	return counts
}

func matchAt(words []string, start int, term []string) bool {
	for j, tw := range term {
		if words[start+j] != tw {
			return false
		}
	}
	return true
}
