//    FeedTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package feed

import (
	"context"
	"fmt"
	"github.com/e-gun/FeedTopics/internal/str"
	"net/url"
	"strconv"
	"time"
)

type timelineCursor struct {
	c     *Client
	uid   string
	q     Query
	buf   []apitweet
	token string
	pages int
	done  bool
}

// Next - the next post in the feed's native (newest first) order; false when the window is exhausted
func (tc *timelineCursor) Next(ctx context.Context) (str.Post, bool, error) {
	for {
		for len(tc.buf) > 0 {
			t := tc.buf[0]
			tc.buf = tc.buf[1:]

			if tc.q.Language != "" && t.Lang != tc.q.Language {
				continue
			}

			created, err := time.Parse(time.RFC3339, t.CreatedAt)
			if err != nil {
				return str.Post{}, false, fmt.Errorf("post %s has an unreadable timestamp '%s': %w", t.ID, t.CreatedAt, err)
			}

			if !tc.q.Since.IsZero() && created.Before(tc.q.Since) {
				continue
			}
			if !tc.q.Until.IsZero() && !created.Before(tc.q.Until) {
				continue
			}

			return str.Post{ID: t.ID, Created: created.UTC(), Text: t.Text, Language: t.Lang}, true, nil
		}

		if tc.done {
			return str.Post{}, false, nil
		}

		if err := tc.fetch(ctx); err != nil {
			return str.Post{}, false, err
		}
	}
}

func (tc *timelineCursor) fetch(ctx context.Context) error {
	p := url.Values{}
	p.Set("max_results", strconv.Itoa(tc.c.PageSize))
	p.Set("tweet.fields", "created_at,lang")
	if !tc.q.Since.IsZero() {
		p.Set("start_time", tc.q.Since.UTC().Format(time.RFC3339))
	}
	if !tc.q.Until.IsZero() {
		p.Set("end_time", tc.q.Until.UTC().Format(time.RFC3339))
	}
	if tc.token != "" {
		p.Set("pagination_token", tc.token)
	}

	var page apitimeline
	if err := tc.c.get(ctx, "/2/users/"+url.PathEscape(tc.uid)+"/tweets", p, &page); err != nil {
		return err
	}

	tc.pages++
	tc.buf = page.Data
	tc.token = page.Meta.NextToken
	if tc.token == "" {
		tc.done = true
	}
	return nil
}
