// wrap.go — Greedy caption word-wrapping under a pixel width constraint.
package layout

import "strings"

// Wrap breaks caption into lines that each fit within maxWidth pixels,
// according to the measure callback. Words are separated by single ASCII
// spaces; empty tokens produced by consecutive spaces are skipped.
//
// The policy is greedy: a word that would push the current line past
// maxWidth starts a new line. A single word wider than maxWidth is kept on
// its own line unbroken — no hyphenation. The final line is always emitted,
// so the result has at least one line (a lone empty line for an empty
// caption). No word is ever dropped or duplicated.
func Wrap(caption string, maxWidth int, measure func(string) int) []string {
	var lines []string
	var current string

	for _, word := range strings.Split(caption, " ") {
		if word == "" {
			continue
		}
		candidate := current
		if candidate != "" {
			candidate += " "
		}
		candidate += word

		if measure(candidate) > maxWidth {
			lines = append(lines, current)
			current = word
		} else {
			current = candidate
		}
	}
	return append(lines, current)
}
