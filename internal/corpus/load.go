//    FeedTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"errors"
	"fmt"
	"github.com/araddon/dateparse"
	"github.com/e-gun/FeedTopics/internal/csvio"
	"github.com/e-gun/FeedTopics/internal/str"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

//
// LOADING AND FILTERING A CORPUS OF HISTORICAL POSTS
//

var (
	ErrEmptyCorpus   = errors.New("corpus is empty after filtering")
	ErrMissingColumn = errors.New("required column not found")
)

type Document struct {
	Created time.Time
	Text    string
}

// Corpus - the posts that survived filtering, in file order
type Corpus struct {
	Name    string
	Docs    []Document
	Rows    int // data rows seen
	Dropped int // data rows discarded for a missing or unreadable field
}

// Texts - one entry per Document; never contains a blank entry
func (c *Corpus) Texts() []string {
	tt := make([]string, len(c.Docs))
	for i := range c.Docs {
		tt[i] = c.Docs[i].Text
	}
	return tt
}

// Load - read and filter the file described by src
func Load(src str.CorpusSource) (*Corpus, error) {
	f, err := os.Open(src.Path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus '%s': %w", src.Name, err)
	}
	defer func() { _ = f.Close() }()
	return LoadFrom(f, src)
}

// LoadFrom - as Load() but from any reader
func LoadFrom(r io.Reader, src str.CorpusSource) (*Corpus, error) {
	const (
		FAIL1 = "corpus '%s' row %d: %w"
	)

	cr := csvio.NewReader(r)

	tcol, dcol := -1, -1
	var err error

	if src.NoHeader {
		if tcol, err = position(src.TextColumn); err != nil {
			return nil, fmt.Errorf("corpus '%s' text column: %w", src.Name, err)
		}
		if dcol, err = position(src.DateColumn); err != nil {
			return nil, fmt.Errorf("corpus '%s' date column: %w", src.Name, err)
		}
	} else {
		hdr, e := cr.Read()
		if e == io.EOF {
			return nil, fmt.Errorf("corpus '%s': %w", src.Name, ErrEmptyCorpus)
		}
		if e != nil {
			return nil, fmt.Errorf("corpus '%s' header: %w", src.Name, e)
		}
		if tcol, err = lookup(hdr, src.TextColumn); err != nil {
			return nil, fmt.Errorf("corpus '%s' text column: %w", src.Name, err)
		}
		if dcol, err = lookup(hdr, src.DateColumn); err != nil {
			return nil, fmt.Errorf("corpus '%s' date column: %w", src.Name, err)
		}
	}

	c := &Corpus{Name: src.Name}
	for {
		rec, e := cr.Read()
		if e == io.EOF {
			break
		}
		if e != nil {
			return nil, fmt.Errorf(FAIL1, src.Name, c.Rows+1, e)
		}
		c.Rows++

		if tcol >= len(rec) || dcol >= len(rec) {
			c.Dropped++
			continue
		}

		txt := rec[tcol]
		if strings.TrimSpace(txt) == "" {
			c.Dropped++
			continue
		}

		when, ok := parsedate(rec[dcol], src.DateLayout)
		if !ok {
			c.Dropped++
			continue
		}

		c.Docs = append(c.Docs, Document{Created: when, Text: txt})
	}

	if len(c.Docs) == 0 {
		return c, fmt.Errorf("corpus '%s' (%d rows read, %d dropped): %w", src.Name, c.Rows, c.Dropped, ErrEmptyCorpus)
	}
	return c, nil
}

// lookup - find a column by header name (exact, then case-insensitive) or else by position
func lookup(hdr []string, want string) (int, error) {
	for i := range hdr {
		if strings.TrimSpace(hdr[i]) == want {
			return i, nil
		}
	}
	for i := range hdr {
		if strings.EqualFold(strings.TrimSpace(hdr[i]), want) {
			return i, nil
		}
	}
	if p, err := position(want); err == nil && p < len(hdr) {
		return p, nil
	}
	return -1, fmt.Errorf("%w: '%s' not in %v", ErrMissingColumn, want, hdr)
}

func position(col string) (int, error) {
	p, err := strconv.Atoi(strings.TrimSpace(col))
	if err != nil || p < 0 {
		return -1, fmt.Errorf("%w: '%s' is not a column position", ErrMissingColumn, col)
	}
	return p, nil
}

// parsedate - use the layout if one was configured; otherwise let dateparse guess; zoneless stamps are UTC
func parsedate(s string, layout string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	var t time.Time
	var err error
	if layout != "" {
		t, err = time.Parse(layout, s)
	} else {
		t, err = dateparse.ParseIn(s, time.UTC)
	}
	return t, err == nil
}
