//    FeedTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

type CurrentConfiguration struct {
	BlackAndWhite bool
	Collect       CollectRequest
	Corpora       []CorpusSource
	FeedLogin     FeedLogin
	LdaChart      string // write an html chart here if not ""
	LdaTimeoutSec int    // 0 means no limit
	LdaTopics     int
	LdaTopWords   int
	LogLevel      int
	NgramMax      int
	NgramMin      int
	ProfileCPU    bool
	ProfileMEM    bool
	StopKeep      []string // members of the built-in english list to keep as terms
	StopWords     []string // extra stops on top of the built-in sets
	WorkerCount   int
}

// FeedLogin - credentials for the remote feed; there are deliberately no defaults
type FeedLogin struct {
	BearerToken string
	Host        string
}

type CollectRequest struct {
	Account     string
	Since       string
	Until       string
	Language    string
	OutFile     string
	WritePolicy string
}

// CorpusSource - where and how to find one corpus of historical posts
type CorpusSource struct {
	Name       string
	Path       string
	TextColumn string // a header name or a 0-based position
	DateColumn string
	DateLayout string // go time layout; "" means guess
	NoHeader   bool
}
