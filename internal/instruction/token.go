package instruction

import "strings"

// Tokenize splits text into words on ASCII spaces, dropping the empty words
// produced by repeated spaces. The parser runs it twice per instruction, on
// a lower-cased and an original-case copy; lower-casing never changes word
// boundaries, so the two streams stay positionally aligned.
func Tokenize(text string) []string {
	var words []string
	for _, word := range strings.Split(text, " ") {
		word = strings.TrimSpace(word)
		if word != "" {
			words = append(words, word)
		}
	}
	return words
}
