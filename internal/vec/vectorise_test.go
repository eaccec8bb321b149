//    FeedTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"errors"
	"testing"

	"github.com/e-gun/FeedTopics/internal/gen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var foxes = []string{"the quick brown fox", "the lazy dog sleeps", "quick fox jumps"}

func TestTokeniserUnigramsAndBigrams(t *testing.T) {
	tok := NewNgramTokeniser(1, 2, gen.ToSet([]string{"the"}))
	assert.Equal(t, []string{"quick", "brown", "fox", "quick brown", "brown fox"}, tok.Tokenise("The QUICK, brown fox!"))
}

func TestTokeniserDropsSingleCharactersAndKeepsUnicode(t *testing.T) {
	tok := NewNgramTokeniser(1, 1, nil)
	assert.Equal(t, []string{"café", "ελληνικά", "2018"}, tok.Tokenise("a Café; Ελληνικά 2018 x"))
}

func TestBuildStopSet(t *testing.T) {
	ss := BuildStopSet(FeedExtra, []string{"maga"}, nil)
	for _, w := range []string{"the", "yourselves", "https", "amp", "maga"} {
		_, ok := ss[w]
		assert.True(t, ok, w)
	}
	_, ok := ss["america"]
	assert.False(t, ok)
}

func TestBuildStopSetKeep(t *testing.T) {
	ss := BuildStopSet(nil, nil, []string{"you", "we"})
	_, ok := ss["you"]
	assert.False(t, ok)
	_, ok = ss["we"]
	assert.False(t, ok)
	_, ok = ss["the"]
	assert.True(t, ok)
	// the shared list is not disturbed
	assert.Contains(t, EnglishStop, "you")
}

func TestVectoriseFoxes(t *testing.T) {
	tdm, err := Vectorise(foxes, NewNgramTokeniser(1, 1, gen.ToSet([]string{"the"})))
	require.NoError(t, err)
	assert.Equal(t, 3, tdm.Documents())
	assert.Equal(t, []string{"brown", "dog", "fox", "jumps", "lazy", "quick", "sleeps"}, tdm.Vocab)
	assert.NotContains(t, tdm.Vocab, "the")
	assert.Equal(t, 1.0, tdm.Count("fox", 0))
	assert.Equal(t, 0.0, tdm.Count("fox", 1))
	assert.Equal(t, 1.0, tdm.Count("jumps", 2))
}

func TestVectoriseCountsRepeats(t *testing.T) {
	tdm, err := Vectorise([]string{"fox fox fox", "dog"}, NewNgramTokeniser(1, 2, nil))
	require.NoError(t, err)
	assert.Equal(t, 3.0, tdm.Count("fox", 0))
	assert.Equal(t, 2.0, tdm.Count("fox fox", 0))
}

func TestVectoriseIsDeterministic(t *testing.T) {
	stops := BuildStopSet(FeedExtra, nil, nil)
	a, err := Vectorise(foxes, NewNgramTokeniser(1, 2, stops))
	require.NoError(t, err)

	rev := []string{foxes[2], foxes[1], foxes[0]}
	b, err := Vectorise(rev, NewNgramTokeniser(1, 2, stops))
	require.NoError(t, err)
	assert.Equal(t, a.Vocab, b.Vocab)

	c, err := Vectorise(foxes, NewNgramTokeniser(1, 2, stops))
	require.NoError(t, err)
	assert.Equal(t, a.Vocab, c.Vocab)
	r, k := a.Counts.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < k; j++ {
			assert.Equal(t, a.Counts.At(i, j), c.Counts.At(i, j))
		}
	}
}

func TestVectoriseEmptyVocabulary(t *testing.T) {
	_, err := Vectorise([]string{"the", "and of"}, NewNgramTokeniser(1, 2, BuildStopSet(nil, nil, nil)))
	assert.ErrorIs(t, err, ErrEmptyVocabulary)

	_, err = Vectorise(nil, NewNgramTokeniser(1, 2, nil))
	assert.ErrorIs(t, err, ErrNoDocuments)
}

func TestCheckRows(t *testing.T) {
	tdm, err := Vectorise(foxes, NewNgramTokeniser(1, 1, nil))
	require.NoError(t, err)
	assert.NoError(t, CheckRows(tdm, 3))

	err = CheckRows(tdm, 4)
	var rm *RowMismatchError
	require.True(t, errors.As(err, &rm))
	assert.Equal(t, 3, rm.Docs)
	assert.Equal(t, 4, rm.Corpus)
}
