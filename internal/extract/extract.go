//    FeedTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package extract

import (
	"context"
	"fmt"
	"github.com/e-gun/FeedTopics/internal/corpus"
	"github.com/e-gun/FeedTopics/internal/lnch"
	"github.com/e-gun/FeedTopics/internal/str"
	"github.com/e-gun/FeedTopics/internal/vec"
	"github.com/google/uuid"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

//
// TOPIC EXTRACTION FOR A SET OF CORPORA
//

const (
	STAGELOAD   = "load"
	STAGEVECTOR = "vectorise"
	STAGEFIT    = "fit"
	STAGECHART  = "chart"
)

var (
	Msg = lnch.Msg
	// ConfDir - where the tuning files live; "" means ~/.config
	ConfDir = ""
)

// CorpusError - one corpus failed one check; the other corpora are unaffected
type CorpusError struct {
	Corpus string
	Stage  string
	Err    error
}

func (e *CorpusError) Error() string {
	return fmt.Sprintf("corpus '%s' failed at the %s stage: %s", e.Corpus, e.Stage, e.Err.Error())
}

func (e *CorpusError) Unwrap() error {
	return e.Err
}

// Outcome - what happened to a single corpus
type Outcome struct {
	RunID        string
	Corpus       string
	Documents    int
	Terms        int
	Report       []string
	DocsPerTopic []int
	Chart        string // "" if no chart was written
	Err          error  // nil or a *CorpusError
}

// Run - model every source in turn; a failure is reported and the next source still runs
func Run(ctx context.Context, cfg *str.CurrentConfiguration, sources []str.CorpusSource) []Outcome {
	const (
		MSG1 = "%d corpora to model; stop list has %s entries"
	)

	stops := vec.BuildStopSet(vec.ReadStopConfig(ConfDir), cfg.StopWords, cfg.StopKeep)
	ldacfg := vec.LDAVecConfig(ConfDir, cfg)
	Msg.PEEK(fmt.Sprintf(MSG1, len(sources), Msg.Count(len(stops))))

	outcomes := make([]Outcome, len(sources))
	for i := range sources {
		outcomes[i] = one(ctx, cfg, ldacfg, stops, sources[i])
	}
	return outcomes
}

// Failed - how many outcomes carry an error
func Failed(oo []Outcome) int {
	n := 0
	for i := range oo {
		if oo[i].Err != nil {
			n++
		}
	}
	return n
}

// one - load, vectorise, fit and report a single corpus
func one(ctx context.Context, cfg *str.CurrentConfiguration, ldacfg vec.LDAConfig, stops map[string]struct{}, src str.CorpusSource) Outcome {
	const (
		BANNER = "\nGenerating %d topics for %s...\n"
		MSG1   = "[%s] %s rows read from '%s'; %s dropped"
		MSG2   = "[%s] %s documents; %s terms in the vocabulary"
		MSG3   = "[%s] topic %d is dominant in %s documents"
		MSG4   = "[%s] chart written to %s"
		TMR1   = "corpus loaded"
		TMR2   = "term-document matrix built"
		TMR3   = "topic model fitted"
		FAIL1  = "[%s] %s"
	)

	start := time.Now()
	previous := time.Now()

	o := Outcome{
		RunID:  strings.Replace(uuid.New().String(), "-", "", -1),
		Corpus: src.Name,
	}
	short := o.RunID[:8]

	fail := func(stage string, err error) Outcome {
		o.Err = &CorpusError{Corpus: src.Name, Stage: stage, Err: err}
		Msg.CRIT(fmt.Sprintf(FAIL1, short, o.Err.Error()))
		return o
	}

	Msg.Plain(fmt.Sprintf(BANNER, ldacfg.Topics, src.Name))

	c, err := corpus.Load(src)
	if err != nil {
		return fail(STAGELOAD, err)
	}
	Msg.PEEK(fmt.Sprintf(MSG1, short, Msg.Count(c.Rows), src.Path, Msg.Count(c.Dropped)))
	Msg.Timer("A1", TMR1, start, previous)
	previous = time.Now()

	tdm, err := vec.Vectorise(c.Texts(), vec.NewNgramTokeniser(cfg.NgramMin, cfg.NgramMax, stops))
	if err != nil {
		return fail(STAGEVECTOR, err)
	}
	o.Documents = tdm.Documents()
	o.Terms = len(tdm.Vocab)
	Msg.FYI(fmt.Sprintf(MSG2, short, Msg.Count(o.Documents), Msg.Count(o.Terms)))
	Msg.Timer("A2", TMR2, start, previous)
	previous = time.Now()

	tm, err := vec.FitTopics(ctx, tdm, ldacfg)
	if err != nil {
		return fail(STAGEFIT, err)
	}
	Msg.Timer("A3", TMR3, start, previous)

	o.Report = vec.Report(tm, cfg.LdaTopWords)
	for _, l := range o.Report {
		Msg.Plain(l)
	}

	o.DocsPerTopic = vec.DocsPerTopic(tm)
	for i, n := range o.DocsPerTopic {
		Msg.NOTE(fmt.Sprintf(MSG3, short, i+1, Msg.Count(n)))
	}

	if cfg.LdaChart != "" {
		fn := ChartName(cfg.LdaChart, src.Name)
		if err = writechart(fn, src.Name, tm, cfg.LdaTopWords); err != nil {
			return fail(STAGECHART, err)
		}
		o.Chart = fn
		Msg.FYI(fmt.Sprintf(MSG4, short, fn))
	}

	return o
}

// ChartName - "topics.html" + "Barack Obama" ==> "topics-barack-obama.html"
func ChartName(base string, name string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			return unicode.ToLower(r)
		case unicode.IsSpace(r) || r == '-' || r == '_':
			return '-'
		default:
			return -1
		}
	}, name)

	ext := filepath.Ext(base)
	if ext == "" {
		ext = ".html"
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if slug == "" {
		return stem + ext
	}
	return stem + "-" + slug + ext
}

func writechart(fn string, name string, tm *vec.TopicModel, n int) error {
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	if err = vec.WriteTopicChart(f, name, tm, n); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
