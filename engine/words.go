package engine

import "strings"

// MinPromptWords is how many words the door prompt requires.
const MinPromptWords = 2

// WordCount returns the number of non-empty whitespace-separated tokens in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
