//    FeedTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package csvio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/e-gun/FeedTopics/internal/str"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(day int, txt string) str.Post {
	return str.Post{Created: time.Date(2018, 12, day, 18, 12, 3, 0, time.UTC), Text: txt}
}

func readall(t *testing.T, fn string) [][]string {
	t.Helper()
	f, err := os.Open(fn)
	require.NoError(t, err)
	defer f.Close()
	rows, err := NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestAppendAccumulates(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "result.csv")
	for i := 0; i < 2; i++ {
		pw, err := NewPostWriter(fn, POLICYAPPEND)
		require.NoError(t, err)
		_, err = pw.Write(post(25, "Merry Christmas"))
		require.NoError(t, err)
		require.NoError(t, pw.Close())
	}
	rows := readall(t, fn)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"2018-12-25 18:12:03", "Merry Christmas"}, rows[0])
}

func TestDedupSkipsRowsAlreadyOnFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "result.csv")
	for i := 0; i < 2; i++ {
		pw, err := NewPostWriter(fn, POLICYDEDUP)
		require.NoError(t, err)
		_, err = pw.Write(post(25, "Merry Christmas"))
		require.NoError(t, err)
		ok, err := pw.Write(post(24, "a comma, inside"))
		require.NoError(t, err)
		assert.Equal(t, i == 0, ok)
		require.NoError(t, pw.Close())
	}
	assert.Len(t, readall(t, fn), 2)
}

func TestTruncateReplaces(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "result.csv")
	require.NoError(t, os.WriteFile(fn, []byte("old,row\nold,row\n"), 0644))
	pw, err := NewPostWriter(fn, POLICYTRUNCATE)
	require.NoError(t, err)
	_, err = pw.Write(post(1, "new"))
	require.NoError(t, err)
	require.NoError(t, pw.Close())
	assert.Len(t, readall(t, fn), 1)
}

func TestNoWritesLeavesFileUntouched(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "result.csv")
	require.NoError(t, os.WriteFile(fn, []byte("a,b\n"), 0644))

	pw, err := NewPostWriter(fn, POLICYTRUNCATE)
	require.NoError(t, err)
	require.NoError(t, pw.Close())

	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(b))

	missing := filepath.Join(dir, "never.csv")
	pw, err = NewPostWriter(missing, POLICYAPPEND)
	require.NoError(t, err)
	require.NoError(t, pw.Close())
	_, err = os.Stat(missing)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInvalidUTF8IsRepairedNotDropped(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "result.csv")
	pw, err := NewPostWriter(fn, POLICYAPPEND)
	require.NoError(t, err)
	ok, err := pw.Write(post(2, "bad \xff byte"))
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, pw.Close())
	assert.Equal(t, 1, pw.Repaired)
	assert.Equal(t, "bad � byte", readall(t, fn)[0][1])
}

func TestCRLFIsNormalised(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "result.csv")
	pw, err := NewPostWriter(fn, POLICYDEDUP)
	require.NoError(t, err)
	_, err = pw.Write(post(1, "a\r\nb\r\nc"))
	require.NoError(t, err)
	// both faults in one post count once
	_, err = pw.Write(post(2, "bad \xff\r\nbyte"))
	require.NoError(t, err)
	_, err = pw.Write(post(3, "lone\rcr"))
	require.NoError(t, err)
	require.NoError(t, pw.Close())

	assert.Equal(t, 2, pw.Repaired)
	rows := readall(t, fn)
	require.Len(t, rows, 3)
	assert.Equal(t, "a\nb\nc", rows[0][1])
	assert.Equal(t, "bad �\nbyte", rows[1][1])
	assert.Equal(t, "lone\rcr", rows[2][1])

	// the normalised text is what dedup remembers
	pw, err = NewPostWriter(fn, POLICYDEDUP)
	require.NoError(t, err)
	ok, err := pw.Write(post(1, "a\r\nb\r\nc"))
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, pw.Close())
}

func TestUnknownPolicy(t *testing.T) {
	_, err := NewPostWriter("x.csv", "overwrite")
	assert.Error(t, err)
}
