//    FeedTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	CONFIGVECTORLDA   = "ft-vector-conf-lda.json"
	CONFIGVECTORSTOPS = "ft-vector-stops.json"
	DEFAULTCHRTWIDTH  = "900px"
	DEFAULTCHRTHEIGHT = "400px"
	LDATOPICS         = 5
	LDATOPWORDS       = 5
	LDAMAXTOPICS      = 30
	LDAITER           = 200
	LDAXFORMPASSES    = 100
	LDABURNINPASSES   = 2
	LDACHGEVALFRQ     = 10
	LDAPERPEVALFRQ    = 10
	LDAPERPTOL        = 1e-2
	NGRAMMIN          = 1
	NGRAMMAX          = 2
	TOKENPATTERN      = `[\p{L}\p{M}\p{N}_]{2,}`
)
