//    FeedTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"errors"
	"fmt"
	"github.com/e-gun/FeedTopics/internal/gen"
	"github.com/e-gun/nlp"
	"gonum.org/v1/gonum/mat"
)

//
// TERM-DOCUMENT MATRIX
//

var (
	ErrNoDocuments     = errors.New("no documents to vectorise")
	ErrEmptyVocabulary = errors.New("vocabulary is empty after stop word removal")
)

// RowMismatchError - the matrix does not have one document per corpus entry
type RowMismatchError struct {
	Docs   int
	Corpus int
}

func (e *RowMismatchError) Error() string {
	return fmt.Sprintf("term-document matrix has %d documents but the corpus has %d", e.Docs, e.Corpus)
}

// TermDocMatrix - raw counts; nlp orientation: rows are vocabulary terms and columns are documents
type TermDocMatrix struct {
	Counts mat.Matrix
	Vocab  []string // Vocab[i] is the term for row i
}

// Documents - the number of documents in the matrix
func (m *TermDocMatrix) Documents() int {
	_, c := m.Counts.Dims()
	return c
}

// Count - occurrences of term in document doc; 0 if the term is not in the vocabulary
func (m *TermDocMatrix) Count(term string, doc int) float64 {
	for i := range m.Vocab {
		if m.Vocab[i] == term {
			return m.Counts.At(i, doc)
		}
	}
	return 0
}

// Vectorise - build a lexically ordered vocabulary from docs and count every term in every doc
func Vectorise(docs []string, tok nlp.Tokeniser) (*TermDocMatrix, error) {
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}

	vectoriser := nlp.NewCountVectoriser()
	vectoriser.Tokeniser = tok
	vectoriser.Fit(docs...)

	if len(vectoriser.Vocabulary) == 0 {
		return nil, ErrEmptyVocabulary
	}

	// the vectoriser indexes terms in order of discovery; column order should not depend on document order
	vocab := gen.SortedKeys(vectoriser.Vocabulary)
	for i, w := range vocab {
		vectoriser.Vocabulary[w] = i
	}

	counts, err := vectoriser.Transform(docs...)
	if err != nil {
		return nil, fmt.Errorf("counting terms: %w", err)
	}

	tdm := &TermDocMatrix{Counts: counts, Vocab: vocab}
	if err = CheckRows(tdm, len(docs)); err != nil {
		return nil, err
	}
	return tdm, nil
}

// CheckRows - one document per corpus entry or a *RowMismatchError
func CheckRows(tdm *TermDocMatrix, corpus int) error {
	if d := tdm.Documents(); d != corpus {
		return &RowMismatchError{Docs: d, Corpus: corpus}
	}
	return nil
}
