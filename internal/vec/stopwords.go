//    FeedTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"encoding/json"
	"fmt"
	"github.com/e-gun/FeedTopics/internal/gen"
	"github.com/e-gun/FeedTopics/internal/vv"
	"os"
	"path/filepath"
	"sort"
)

//
// STOPWORDS
//

var (
	// EnglishStop - general purpose english stop list (the same 318 words scikit-learn ships)
	EnglishStop = []string{"a", "about", "above", "across", "after", "afterwards", "again", "against", "all",
		"almost", "alone", "along", "already", "also", "although", "always", "am", "among", "amongst", "amoungst",
		"amount", "an", "and", "another", "any", "anyhow", "anyone", "anything", "anyway", "anywhere", "are",
		"around", "as", "at", "back", "be", "became", "because", "become", "becomes", "becoming", "been", "before",
		"beforehand", "behind", "being", "below", "beside", "besides", "between", "beyond", "bill", "both",
		"bottom", "but", "by", "call", "can", "cannot", "cant", "co", "con", "could", "couldnt", "cry", "de",
		"describe", "detail", "do", "done", "down", "due", "during", "each", "eg", "eight", "either", "eleven",
		"else", "elsewhere", "empty", "enough", "etc", "even", "ever", "every", "everyone", "everything",
		"everywhere", "except", "few", "fifteen", "fifty", "fill", "find", "fire", "first", "five", "for",
		"former", "formerly", "forty", "found", "four", "from", "front", "full", "further", "get", "give", "go",
		"had", "has", "hasnt", "have", "he", "hence", "her", "here", "hereafter", "hereby", "herein", "hereupon",
		"hers", "herself", "him", "himself", "his", "how", "however", "hundred", "i", "ie", "if", "in", "inc",
		"indeed", "interest", "into", "is", "it", "its", "itself", "keep", "last", "latter", "latterly", "least",
		"less", "ltd", "made", "many", "may", "me", "meanwhile", "might", "mill", "mine", "more", "moreover",
		"most", "mostly", "move", "much", "must", "my", "myself", "name", "namely", "neither", "never",
		"nevertheless", "next", "nine", "no", "nobody", "none", "noone", "nor", "not", "nothing", "now",
		"nowhere", "of", "off", "often", "on", "once", "one", "only", "onto", "or", "other", "others",
		"otherwise", "our", "ours", "ourselves", "out", "over", "own", "part", "per", "perhaps", "please", "put",
		"rather", "re", "same", "see", "seem", "seemed", "seeming", "seems", "serious", "several", "she",
		"should", "show", "side", "since", "sincere", "six", "sixty", "so", "some", "somehow", "someone",
		"something", "sometime", "sometimes", "somewhere", "still", "such", "system", "take", "ten", "than",
		"that", "the", "their", "them", "themselves", "then", "thence", "there", "thereafter", "thereby",
		"therefore", "therein", "thereupon", "these", "they", "thick", "thin", "third", "this", "those",
		"though", "three", "through", "throughout", "thru", "thus", "to", "together", "too", "top", "toward",
		"towards", "twelve", "twenty", "two", "un", "under", "until", "up", "upon", "us", "very", "via", "was",
		"we", "well", "were", "what", "whatever", "when", "whence", "whenever", "where", "whereafter", "whereas",
		"whereby", "wherein", "whereupon", "wherever", "whether", "which", "while", "whither", "who", "whoever",
		"whole", "whom", "whose", "why", "will", "with", "within", "without", "would", "yet", "you", "your",
		"yours", "yourself", "yourselves"}
	// FeedExtra - platform jargon, url debris, truncated numbers, and handles
	FeedExtra = []string{"retweet", "http", "twitter", "com", "pic", "rt", "ofa", "president", "bo", "10", "000",
		"www", "don", "wh", "00", "et", "11", "ed", "op", "ve", "https", "amp", "realdonaldtrump", "ly"}
)

// BuildStopSet - the built-in english list minus keep; plus the domain list plus any extras
func BuildStopSet(domain []string, extra []string, keep []string) map[string]struct{} {
	es := gen.SetSubtraction(EnglishStop, keep)
	ss := append(es, domain...)
	ss = append(ss, extra...)
	return gen.ToSet(ss)
}

// ReadStopConfig - read the domain stop list from dir (~/.config if ""); if it does not exist, write FeedExtra there
func ReadStopConfig(dir string) []string {
	const (
		ERR1 = "ReadStopConfig() cannot find UserHomeDir"
		ERR2 = "ReadStopConfig() failed to parse %s; using the built-in list"
		MSG1 = "ReadStopConfig() wrote vector stop configuration file: %s"
		MSG2 = "ReadStopConfig() read %d stops from %s"
	)

	stops := append([]string{}, FeedExtra...)

	if dir == "" {
		h, e := os.UserHomeDir()
		if e != nil {
			Msg.MAND(ERR1)
			return stops
		}
		dir = fmt.Sprintf(vv.CONFIGALTAPTH, h)
	}
	fn := filepath.Join(dir, vv.CONFIGVECTORSTOPS)

	content, err := os.ReadFile(fn)
	if err != nil {
		sort.Strings(stops)
		js, e := json.MarshalIndent(stops, vv.JSONINDENT, vv.JSONINDENT)
		if e == nil {
			if e = os.WriteFile(fn, js, vv.WRITEPERMS); e == nil {
				Msg.PEEK(fmt.Sprintf(MSG1, fn))
			}
		}
		return stops
	}

	var stp []string
	if e := json.Unmarshal(content, &stp); e != nil {
		Msg.CRIT(fmt.Sprintf(ERR2, fn))
		return stops
	}
	Msg.TMI(fmt.Sprintf(MSG2, len(stp), fn))
	return stp
}
