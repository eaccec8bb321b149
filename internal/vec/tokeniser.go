//    FeedTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"github.com/e-gun/FeedTopics/internal/lnch"
	"github.com/e-gun/FeedTopics/internal/vv"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
	"regexp"
	"strings"
)

var (
	Msg      = lnch.Msg
	tokenrex = regexp.MustCompile(vv.TOKENPATTERN)
)

// NgramTokeniser - satisfies nlp.Tokeniser; lowercases, drops stops, then emits every n-gram for n in [MinN, MaxN]
type NgramTokeniser struct {
	MinN  int
	MaxN  int
	Stops map[string]struct{}
}

func NewNgramTokeniser(minn int, maxn int, stops map[string]struct{}) *NgramTokeniser {
	if minn < 1 {
		minn = 1
	}
	if maxn < minn {
		maxn = minn
	}
	if stops == nil {
		stops = make(map[string]struct{})
	}
	return &NgramTokeniser{MinN: minn, MaxN: maxn, Stops: stops}
}

// words - the surviving unigrams in document order
func (t *NgramTokeniser) words(text string) []string {
	lc := cases.Lower(language.Und).String(norm.NFC.String(text))
	found := tokenrex.FindAllString(lc, -1)
	kept := found[:0]
	for _, w := range found {
		if _, stop := t.Stops[w]; !stop {
			kept = append(kept, w)
		}
	}
	return kept
}

// ForEachIn - invoke f for every token in text
func (t *NgramTokeniser) ForEachIn(text string, f func(token string)) {
	ww := t.words(text)
	for n := t.MinN; n <= t.MaxN; n++ {
		for i := 0; i+n <= len(ww); i++ {
			if n == 1 {
				f(ww[i])
			} else {
				f(strings.Join(ww[i:i+n], " "))
			}
		}
	}
}

// Tokenise - all tokens in text as a slice
func (t *NgramTokeniser) Tokenise(text string) []string {
	var tt []string
	t.ForEachIn(text, func(tk string) {
		tt = append(tt, tk)
	})
	return tt
}
