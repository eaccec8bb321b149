//    FeedTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"encoding/json"
	"fmt"
	"github.com/e-gun/FeedTopics/internal/str"
	"github.com/e-gun/FeedTopics/internal/vv"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

//
// LDA CONFIGURATION
//

type LDAConfig struct {
	Topics         int `json:"-"`
	LDAIterations  int
	LDAXformPasses int
	BurnInPasses   int
	ChangeEvalFrq  int
	PerplexEvalFrq int
	PerplexTol     float64
	Goroutines     int
	Timeout        time.Duration `json:"-"`
}

var DefaultLDAVectors = LDAConfig{
	Topics:         vv.LDATOPICS,
	LDAIterations:  vv.LDAITER,
	LDAXformPasses: vv.LDAXFORMPASSES,
	BurnInPasses:   vv.LDABURNINPASSES,
	ChangeEvalFrq:  vv.LDACHGEVALFRQ,
	PerplexEvalFrq: vv.LDAPERPEVALFRQ,
	PerplexTol:     vv.LDAPERPTOL,
}

// LDAVecConfig - the tuning values from dir (~/.config if ""); written there with defaults if absent
func LDAVecConfig(dir string, cc *str.CurrentConfiguration) LDAConfig {
	const (
		ERR1 = "LDAVecConfig() cannot find UserHomeDir"
		ERR2 = "LDAVecConfig() failed to parse %s; using defaults"
		MSG1 = "wrote default vector configuration file %s"
		MSG2 = "read vector configuration from %s"
	)

	cfg := DefaultLDAVectors
	cfg.Goroutines = runtime.NumCPU()

	if dir == "" {
		h, e := os.UserHomeDir()
		if e != nil {
			Msg.MAND(ERR1)
			return withrun(cfg, cc)
		}
		dir = fmt.Sprintf(vv.CONFIGALTAPTH, h)
	}
	fn := filepath.Join(dir, vv.CONFIGVECTORLDA)

	content, err := os.ReadFile(fn)
	if err != nil {
		js, e := json.MarshalIndent(cfg, vv.JSONINDENT, vv.JSONINDENT)
		if e == nil {
			if e = os.WriteFile(fn, js, vv.WRITEPERMS); e == nil {
				Msg.PEEK(fmt.Sprintf(MSG1, fn))
			}
		}
		return withrun(cfg, cc)
	}

	loaded := cfg
	if e := json.Unmarshal(content, &loaded); e != nil {
		Msg.CRIT(fmt.Sprintf(ERR2, fn))
		return withrun(cfg, cc)
	}
	Msg.TMI(fmt.Sprintf(MSG2, fn))
	return withrun(loaded, cc)
}

// withrun - per-run settings always come from the current configuration
func withrun(cfg LDAConfig, cc *str.CurrentConfiguration) LDAConfig {
	cfg.Topics = cc.LdaTopics
	cfg.Timeout = timeout(cc.LdaTimeoutSec)
	if cc.WorkerCount > 0 {
		cfg.Goroutines = cc.WorkerCount
	}
	return cfg
}
