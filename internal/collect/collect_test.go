//    FeedTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package collect

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/e-gun/FeedTopics/internal/csvio"
	"github.com/e-gun/FeedTopics/internal/feed"
	"github.com/e-gun/FeedTopics/internal/str"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errFlaky = errors.New("network went away")

type fakecursor struct {
	posts []str.Post
	fail  error
}

func (c *fakecursor) Next(ctx context.Context) (str.Post, bool, error) {
	if len(c.posts) == 0 {
		if c.fail != nil {
			return str.Post{}, false, c.fail
		}
		return str.Post{}, false, nil
	}
	p := c.posts[0]
	c.posts = c.posts[1:]
	return p, true, nil
}

type fakefeed struct {
	posts []str.Post
	fail  error
	auth  bool
	got   feed.Query
}

func (f *fakefeed) Timeline(ctx context.Context, q feed.Query) (feed.Cursor, error) {
	f.got = q
	if f.auth {
		return nil, feed.ErrAuth
	}
	return &fakecursor{posts: append([]str.Post{}, f.posts...), fail: f.fail}, nil
}

func when(s string) time.Time {
	t, _ := time.Parse("2006-01-02 15:04:05", s)
	return t
}

func window(t *testing.T) Request {
	r, err := RequestFrom(str.CollectRequest{Account: "realDonaldTrump", Since: "2018-01-01", Until: "2018-02-01", Language: "en"})
	require.NoError(t, err)
	return r
}

func TestRequestFrom(t *testing.T) {
	r := window(t)
	assert.Equal(t, "realDonaldTrump", r.Account)
	assert.Equal(t, when("2018-01-01 00:00:00"), r.Since)
	assert.Equal(t, when("2018-02-01 00:00:00"), r.Until)

	_, err := RequestFrom(str.CollectRequest{Since: "2018-02-01", Until: "2018-01-01"})
	assert.Error(t, err)
	_, err = RequestFrom(str.CollectRequest{Since: "yesterday", Until: "2018-01-01"})
	assert.Error(t, err)
}

func TestCollectWritesEveryPost(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "result.csv")
	w, err := csvio.NewPostWriter(fn, csvio.POLICYAPPEND)
	require.NoError(t, err)

	ff := &fakefeed{posts: []str.Post{
		{Created: when("2018-01-02 10:00:00"), Text: "MAKE AMERICA GREAT AGAIN!"},
		{Created: when("2018-01-03 11:30:00"), Text: "jobs, jobs, jobs"},
	}}
	res, err := Collect(context.Background(), ff, window(t), w)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.Equal(t, Result{Seen: 2, Written: 2}, res)
	assert.Equal(t, "en", ff.got.Language)

	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "2018-01-02 10:00:00,MAKE AMERICA GREAT AGAIN!\n2018-01-03 11:30:00,\"jobs, jobs, jobs\"\n", string(b))
}

func TestCollectEmptyWindowLeavesFileAlone(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "result.csv")
	require.NoError(t, os.WriteFile(fn, []byte("2017-12-31 23:59:59,old\n"), 0644))
	w, err := csvio.NewPostWriter(fn, csvio.POLICYTRUNCATE)
	require.NoError(t, err)

	res, err := Collect(context.Background(), &fakefeed{}, window(t), w)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Equal(t, Result{}, res)

	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "2017-12-31 23:59:59,old\n", string(b))
}

func TestCollectAuthFailureWritesNothing(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "result.csv")
	w, err := csvio.NewPostWriter(fn, csvio.POLICYAPPEND)
	require.NoError(t, err)

	_, err = Collect(context.Background(), &fakefeed{auth: true}, window(t), w)
	assert.ErrorIs(t, err, feed.ErrAuth)
	require.NoError(t, w.Close())

	_, err = os.Stat(fn)
	assert.True(t, os.IsNotExist(err))
}

func TestCollectKeepsPrefixOnFailure(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "result.csv")
	w, err := csvio.NewPostWriter(fn, csvio.POLICYAPPEND)
	require.NoError(t, err)

	ff := &fakefeed{posts: []str.Post{{Created: when("2018-01-02 10:00:00"), Text: "first"}}, fail: errFlaky}
	res, err := Collect(context.Background(), ff, window(t), w)
	assert.ErrorIs(t, err, errFlaky)
	assert.Equal(t, 1, res.Written)
	require.NoError(t, w.Close())

	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "2018-01-02 10:00:00,first\n", string(b))
}

func TestCollectDedupAndRepair(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "result.csv")
	require.NoError(t, os.WriteFile(fn, []byte("2018-01-02 10:00:00,first\n"), 0644))
	w, err := csvio.NewPostWriter(fn, csvio.POLICYDEDUP)
	require.NoError(t, err)

	ff := &fakefeed{posts: []str.Post{
		{Created: when("2018-01-02 10:00:00"), Text: "first"},
		{Created: when("2018-01-04 09:00:00"), Text: "bad \xff byte"},
	}}
	res, err := Collect(context.Background(), ff, window(t), w)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Equal(t, Result{Seen: 2, Written: 1, Skipped: 1, Repaired: 1}, res)

	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "2018-01-02 10:00:00,first\n2018-01-04 09:00:00,bad � byte\n", string(b))
}
