//    FeedTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package collect

import (
	"context"
	"fmt"
	"github.com/e-gun/FeedTopics/internal/csvio"
	"github.com/e-gun/FeedTopics/internal/feed"
	"github.com/e-gun/FeedTopics/internal/gen"
	"github.com/e-gun/FeedTopics/internal/lnch"
	"github.com/e-gun/FeedTopics/internal/str"
	"github.com/e-gun/FeedTopics/internal/vv"
	"time"
)

//
// HARVESTING AN ACCOUNT INTO A DELIMITED FILE
//

var Msg = lnch.Msg

// Request - every post by Account in [Since, Until) written in Language
type Request struct {
	Account  string
	Since    time.Time
	Until    time.Time
	Language string
}

// Result - what a collection pass did to the output file
type Result struct {
	Seen     int
	Written  int
	Skipped  int
	Repaired int
}

// RequestFrom - dates in the configuration are plain days: "2018-01-01"
func RequestFrom(cr str.CollectRequest) (Request, error) {
	since, err := time.Parse(vv.WINDOWDATELAYOUT, cr.Since)
	if err != nil {
		return Request{}, fmt.Errorf("bad since date '%s': %w", cr.Since, err)
	}
	until, err := time.Parse(vv.WINDOWDATELAYOUT, cr.Until)
	if err != nil {
		return Request{}, fmt.Errorf("bad until date '%s': %w", cr.Until, err)
	}
	if !since.Before(until) {
		return Request{}, fmt.Errorf("since (%s) must come before until (%s)", cr.Since, cr.Until)
	}
	return Request{Account: cr.Account, Since: since, Until: until, Language: cr.Language}, nil
}

func (r Request) query() feed.Query {
	return feed.Query{Account: r.Account, Since: r.Since, Until: r.Until, Language: r.Language}
}

// Collect - walk the timeline and hand every post to w as soon as it arrives; rows already written stay written on failure
func Collect(ctx context.Context, f feed.Feed, req Request, w *csvio.PostWriter) (Result, error) {
	const (
		MSG1 = "Collecting posts by @%s from %s until %s"
		MSG2 = "%s %s"
		MSG3 = "%s posts seen; %s written to %s"
		MSG4 = "%s duplicate posts skipped"
		MSG5 = "%s posts contained text that could not be encoded; the bad bytes were replaced"
		FAIL = "collection stopped after %d posts: %w"
	)

	var res Result
	Msg.NOTE(fmt.Sprintf(MSG1, req.Account, req.Since.Format(vv.WINDOWDATELAYOUT), req.Until.Format(vv.WINDOWDATELAYOUT)))

	cur, err := f.Timeline(ctx, req.query())
	if err != nil {
		return res, err
	}

	for {
		p, ok, err := cur.Next(ctx)
		if err != nil {
			return tally(res, w), fmt.Errorf(FAIL, res.Seen, err)
		}
		if !ok {
			break
		}
		res.Seen++
		Msg.FYI(fmt.Sprintf(MSG2, p.Created.UTC().Format(vv.POSTTIMELAYOUT), gen.AvoidLongLines(gen.OneLine(p.Text), vv.ECHOWIDTH, vv.ECHOBREAK)))
		if _, err = w.Write(p); err != nil {
			return tally(res, w), fmt.Errorf(FAIL, res.Seen-1, err)
		}
	}

	res = tally(res, w)
	Msg.NOTE(fmt.Sprintf(MSG3, Msg.Count(res.Seen), Msg.Count(res.Written), w.Path))
	if res.Skipped > 0 {
		Msg.PEEK(fmt.Sprintf(MSG4, Msg.Count(res.Skipped)))
	}
	if res.Repaired > 0 {
		Msg.WARN(fmt.Sprintf(MSG5, Msg.Count(res.Repaired)))
	}
	return res, nil
}

func tally(res Result, w *csvio.PostWriter) Result {
	res.Written = w.Written
	res.Skipped = w.Skipped
	res.Repaired = w.Repaired
	return res
}
