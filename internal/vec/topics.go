//    FeedTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"fmt"
	"sort"
	"strings"
)

//
// REPORTING
//

// TopicTerm - a vocabulary term and its weight within one topic
type TopicTerm struct {
	W string
	V float64
	I int
}

// TopTerms - the n highest weighted terms of each topic; ties are broken by vocabulary order
func TopTerms(tm *TopicModel, n int) [][]TopicTerm {
	tr, tc := tm.TopicsOverWords.Dims()

	top := n
	if top > tc {
		top = tc
	}
	if top < 0 {
		top = 0
	}

	tops := make([][]TopicTerm, tr)
	for topic := 0; topic < tr; topic++ {
		tss := make([]TopicTerm, tc)
		for word := 0; word < tc; word++ {
			tss[word] = TopicTerm{
				W: tm.Vocab[word],
				V: tm.TopicsOverWords.At(topic, word),
				I: word,
			}
		}
		sort.SliceStable(tss, func(i, j int) bool {
			return tss[i].V > tss[j].V
		})
		tops[topic] = tss[0:top]
	}
	return tops
}

// Report - one line per topic: "Topic  1: word, word, word"
func Report(tm *TopicModel, n int) []string {
	const (
		LINE = "Topic %2d: %s"
	)
	tops := TopTerms(tm, n)
	lines := make([]string, len(tops))
	for i := range tops {
		ww := make([]string, len(tops[i]))
		for j := range tops[i] {
			ww[j] = tops[i][j].W
		}
		lines[i] = fmt.Sprintf(LINE, i+1, strings.Join(ww, ", "))
	}
	return lines
}

// DocsPerTopic - how many documents have topic X as their dominant topic
func DocsPerTopic(tm *TopicModel) []int {
	counter := make([]int, tm.K)
	dr, dc := tm.DocsOverTopics.Dims()
	for doc := 0; doc < dc; doc++ {
		max := float64(-1)
		winner := 0
		for topic := 0; topic < dr; topic++ {
			if v := tm.DocsOverTopics.At(topic, doc); v > max {
				winner = topic
				max = v
			}
		}
		counter[winner] += 1
	}
	return counter
}
