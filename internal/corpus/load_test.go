//    FeedTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/e-gun/FeedTopics/internal/csvio"
	"github.com/e-gun/FeedTopics/internal/str"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithHeaderDropsMissingText(t *testing.T) {
	in := "Text,Date\n" +
		"\"Four more years.\",2012-11-07 04:16:00\n" +
		",2012-11-08 04:16:00\n"
	src := str.CorpusSource{Name: "obama", TextColumn: "Text", DateColumn: "Date"}

	c, err := LoadFrom(strings.NewReader(in), src)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Rows)
	assert.Equal(t, 1, c.Dropped)
	require.Len(t, c.Docs, 1)
	assert.Equal(t, []string{"Four more years."}, c.Texts())
	assert.Equal(t, time.Date(2012, 11, 7, 4, 16, 0, 0, time.UTC), c.Docs[0].Created)
}

func TestLoadDropsUnparseableDates(t *testing.T) {
	in := "text,created_at,source\n" +
		"one,12-01-2017 10:00:00,Twitter for iPhone\n" +
		"two,not a date,Twitter for iPhone\n"
	src := str.CorpusSource{Name: "trump", TextColumn: "text", DateColumn: "created_at", DateLayout: "01-02-2006 15:04:05"}

	c, err := LoadFrom(strings.NewReader(in), src)
	require.NoError(t, err)
	assert.Equal(t, []string{"one"}, c.Texts())
	assert.Equal(t, 1, c.Dropped)
}

func TestLoadCaseInsensitiveAndPositionalColumns(t *testing.T) {
	in := "TEXT,DATE\nhello there,2016-01-01\n"
	c, err := LoadFrom(strings.NewReader(in), str.CorpusSource{Name: "x", TextColumn: "text", DateColumn: "1"})
	require.NoError(t, err)
	assert.Len(t, c.Docs, 1)
}

func TestLoadMissingColumn(t *testing.T) {
	_, err := LoadFrom(strings.NewReader("a,b\nx,y\n"), str.CorpusSource{Name: "x", TextColumn: "Text", DateColumn: "b"})
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestLoadEmptyCorpus(t *testing.T) {
	_, err := LoadFrom(strings.NewReader("Text,Date\n ,2016-01-01\n"), str.CorpusSource{Name: "x", TextColumn: "Text", DateColumn: "Date"})
	assert.ErrorIs(t, err, ErrEmptyCorpus)

	_, err = LoadFrom(strings.NewReader(""), str.CorpusSource{Name: "x", TextColumn: "Text", DateColumn: "Date"})
	assert.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestRoundTripThroughPostWriter(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "result.csv")
	texts := []string{
		"Ça va? Très bien 😀",
		"Κύριε ἐλέησον",
		"line one\nline two",
		"she said \"no\"",
		"lone\rcr",
		"trailing cr\r",
	}

	pw, err := csvio.NewPostWriter(fn, csvio.POLICYAPPEND)
	require.NoError(t, err)
	for i, tx := range texts {
		_, err = pw.Write(str.Post{Created: time.Date(2018, 1, i+1, 0, 0, 0, 0, time.UTC), Text: tx})
		require.NoError(t, err)
	}
	require.NoError(t, pw.Close())

	c, err := Load(str.CorpusSource{Name: "rt", Path: fn, NoHeader: true, TextColumn: "1", DateColumn: "0",
		DateLayout: "2006-01-02 15:04:05"})
	require.NoError(t, err)
	assert.Equal(t, texts, c.Texts())
	assert.Equal(t, time.Date(2018, 1, 4, 0, 0, 0, 0, time.UTC), c.Docs[3].Created)
}

func TestCRLFReloadsAsLF(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "result.csv")
	pw, err := csvio.NewPostWriter(fn, csvio.POLICYAPPEND)
	require.NoError(t, err)
	_, err = pw.Write(str.Post{Created: time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC), Text: "windows line\r\nbreak"})
	require.NoError(t, err)
	require.NoError(t, pw.Close())
	assert.Equal(t, 1, pw.Repaired)

	c, err := Load(str.CorpusSource{Name: "crlf", Path: fn, NoHeader: true, TextColumn: "1", DateColumn: "0",
		DateLayout: "2006-01-02 15:04:05"})
	require.NoError(t, err)
	assert.Equal(t, []string{"windows line\nbreak"}, c.Texts())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(str.CorpusSource{Name: "gone", Path: filepath.Join(t.TempDir(), "gone.csv")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
