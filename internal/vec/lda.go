//    FeedTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"context"
	"errors"
	"fmt"
	"github.com/e-gun/nlp"
	"gonum.org/v1/gonum/mat"
	"time"
)

//
// LATENT DIRICHLET ALLOCATION
//

var (
	ErrBadTopicCount = errors.New("topic count must be at least 1")
	ErrTooManyTopics = errors.New("more topics requested than the corpus can support")
)

// TopicModel - the fitted model; never persisted
type TopicModel struct {
	K               int
	Vocab           []string
	TopicsOverWords mat.Matrix // K x len(Vocab)
	DocsOverTopics  mat.Matrix // K x documents
}

// FitTopics - fit K topics over tdm; a single unit of work: cancellation or failure discards everything
func FitTopics(ctx context.Context, tdm *TermDocMatrix, cfg LDAConfig) (*TopicModel, error) {
	const (
		WARN1 = "FitTopics() abandoned a %d topic fit (%v); it keeps using CPU until it finishes on its own"
	)

	k := cfg.Topics
	if k < 1 {
		return nil, ErrBadTopicCount
	}
	if d := tdm.Documents(); k > d {
		return nil, fmt.Errorf("%w: %d topics for %d documents", ErrTooManyTopics, k, d)
	}
	if k > len(tdm.Vocab) {
		return nil, fmt.Errorf("%w: %d topics for %d terms", ErrTooManyTopics, k, len(tdm.Vocab))
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("topic model abandoned: %w", err)
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	lda := nlp.NewLatentDirichletAllocation(k)
	lda.Iterations = cfg.LDAIterations
	lda.TransformationPasses = cfg.LDAXformPasses
	lda.BurnInPasses = cfg.BurnInPasses
	lda.ChangeEvaluationFrequency = cfg.ChangeEvalFrq
	lda.PerplexityEvaluationFrequency = cfg.PerplexEvalFrq
	lda.PerplexityTolerance = cfg.PerplexTol
	if cfg.Goroutines > 0 {
		lda.Processes = cfg.Goroutines
	}

	type fitted struct {
		dot mat.Matrix
		err error
	}

	// the library offers no way to interrupt a fit: abandon it instead
	done := make(chan fitted, 1)
	go func() {
		dot, err := lda.FitTransform(tdm.Counts)
		done <- fitted{dot: dot, err: err}
	}()

	select {
	case <-ctx.Done():
		Msg.WARN(fmt.Sprintf(WARN1, k, ctx.Err()))
		return nil, fmt.Errorf("topic model abandoned: %w", ctx.Err())
	case f := <-done:
		if f.err != nil {
			return nil, fmt.Errorf("fitting %d topics: %w", k, f.err)
		}
		return &TopicModel{
			K:               k,
			Vocab:           tdm.Vocab,
			TopicsOverWords: lda.Components(),
			DocsOverTopics:  f.dot,
		}, nil
	}
}

// timeout - seconds as a duration; 0 stays 0
func timeout(sec int) time.Duration {
	return time.Duration(sec) * time.Second
}
