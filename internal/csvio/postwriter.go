//    FeedTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"github.com/e-gun/FeedTopics/internal/str"
	"github.com/e-gun/FeedTopics/internal/vv"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

//
// DELIMITED FILE OUTPUT
//

const (
	POLICYAPPEND   = "append"
	POLICYDEDUP    = "dedup"
	POLICYTRUNCATE = "truncate"
)

// PostWriter - writes (timestamp, text) rows; every row is flushed as soon as it is written
type PostWriter struct {
	Path     string
	Policy   string
	Written  int
	Skipped  int
	Repaired int
	f        *os.File
	w        *csv.Writer
	seen     map[string]struct{}
}

// NewPostWriter - nothing touches the disk until the first Write(); "dedup" reads the existing rows first
func NewPostWriter(path string, policy string) (*PostWriter, error) {
	pw := &PostWriter{Path: path, Policy: policy}
	switch policy {
	case POLICYAPPEND, POLICYTRUNCATE:
	case POLICYDEDUP:
		seen, err := ReadPostKeys(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if seen == nil {
			seen = make(map[string]struct{})
		}
		pw.seen = seen
	default:
		return nil, fmt.Errorf("unknown write policy '%s'", policy)
	}
	return pw, nil
}

func (pw *PostWriter) open() error {
	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if pw.Policy == POLICYTRUNCATE {
		flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	}
	f, err := os.OpenFile(pw.Path, flags, vv.WRITEPERMS)
	if err != nil {
		return err
	}
	pw.f = f
	pw.w = csv.NewWriter(f)
	return nil
}

// Write - append one post; false if "dedup" decided it was already on file
func (pw *PostWriter) Write(p str.Post) (bool, error) {
	// encoding/csv reads a quoted "\r\n" back as "\n"; store what will be read
	txt := p.Text
	fixed := false
	if !utf8.ValidString(txt) {
		txt = strings.ToValidUTF8(txt, string(utf8.RuneError))
		fixed = true
	}
	if strings.Contains(txt, "\r\n") {
		txt = strings.ReplaceAll(txt, "\r\n", "\n")
		fixed = true
	}
	if fixed {
		pw.Repaired++
	}

	row := []string{p.Created.UTC().Format(vv.POSTTIMELAYOUT), txt}

	if pw.seen != nil {
		k := PostKey(row[0], row[1])
		if _, dup := pw.seen[k]; dup {
			pw.Skipped++
			return false, nil
		}
		pw.seen[k] = struct{}{}
	}

	if pw.f == nil {
		if err := pw.open(); err != nil {
			return false, err
		}
	}

	if err := pw.w.Write(row); err != nil {
		return false, fmt.Errorf("writing post to %s: %w", pw.Path, err)
	}
	pw.w.Flush()
	if err := pw.w.Error(); err != nil {
		return false, fmt.Errorf("flushing %s: %w", pw.Path, err)
	}
	pw.Written++
	return true, nil
}

func (pw *PostWriter) Close() error {
	if pw.f == nil {
		return nil
	}
	pw.w.Flush()
	err := pw.w.Error()
	if e := pw.f.Close(); err == nil {
		err = e
	}
	pw.f = nil
	return err
}

// PostKey - identity of a row for deduplication purposes
func PostKey(stamp string, text string) string {
	return stamp + "\x00" + text
}

// ReadPostKeys - the PostKey of every (timestamp, text) row already in the file
func ReadPostKeys(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	r := NewReader(f)
	seen := make(map[string]struct{})
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if len(rec) < 2 {
			continue
		}
		seen[PostKey(rec[0], rec[1])] = struct{}{}
	}
	return seen, nil
}

// NewReader - a csv.Reader that is forgiving about ragged rows and stray quotes
func NewReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr
}
