//    FeedTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"strings"
	"unicode/utf8"
)

// OneLine - collapse newlines, tabs and runs of spaces so a post prints on a single line
func OneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// AvoidLongLines - insert brk into strings wider than maxlen runes; words are never split
func AvoidLongLines(untrimmed string, maxlen int, brk string) string {
	if maxlen < 1 || utf8.RuneCountInString(untrimmed) <= maxlen {
		return untrimmed
	}

	var b strings.Builder
	width := 0
	for i, w := range strings.Fields(untrimmed) {
		wl := utf8.RuneCountInString(w)
		if i > 0 {
			if width+1+wl > maxlen {
				b.WriteString(brk)
				width = 0
			} else {
				b.WriteString(" ")
				width++
			}
		}
		b.WriteString(w)
		width += wl
	}
	return b.String()
}
