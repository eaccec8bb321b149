//    FeedTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/e-gun/FeedTopics/internal/str"
	"github.com/e-gun/FeedTopics/internal/vv"
	"golang.org/x/time/rate"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

//
// A MINIMAL CLIENT FOR THE X/TWITTER V2 API
//

var (
	ErrAuth          = errors.New("feed rejected the credentials")
	ErrNoSuchAccount = errors.New("feed does not know this account")
)

// Query - every post by Account in [Since, Until) written in Language ("" = any language)
type Query struct {
	Account  string
	Since    time.Time
	Until    time.Time
	Language string
}

// Cursor - a lazy, finite, non-restartable walk through a timeline
type Cursor interface {
	Next(ctx context.Context) (str.Post, bool, error)
}

type Feed interface {
	Timeline(ctx context.Context, q Query) (Cursor, error)
}

// Client - talks to the remote feed; owns all waiting and retrying
type Client struct {
	Host           string
	Token          string
	HTTP           *http.Client
	Limiter        *rate.Limiter
	MaxTransient   int
	TransientPause time.Duration
	FallbackWait   time.Duration
	PageSize       int
	Notify         func(string)
	now            func() time.Time
}

func NewClient(login str.FeedLogin, notify func(string)) *Client {
	h := login.Host
	if h == "" {
		h = vv.DEFAULTFEEDHOST
	}
	if notify == nil {
		notify = func(string) {}
	}
	return &Client{
		Host:           strings.TrimSuffix(h, "/"),
		Token:          login.BearerToken,
		HTTP:           &http.Client{Timeout: vv.FEEDHTTPTIMEOUT},
		Limiter:        rate.NewLimiter(rate.Every(vv.FEEDRATEWINDOW/vv.FEEDREQPERWINDOW), 1),
		MaxTransient:   vv.FEEDMAXTRANSIENT,
		TransientPause: vv.FEEDTRANSIENTPAUSE,
		FallbackWait:   vv.FEEDFALLBACKWAIT,
		PageSize:       vv.FEEDPAGESIZE,
		Notify:         notify,
		now:            time.Now,
	}
}

type apiuser struct {
	Data struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	} `json:"data"`
	Errors []apierror `json:"errors"`
}

type apitweet struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
	Lang      string `json:"lang"`
}

type apitimeline struct {
	Data []apitweet `json:"data"`
	Meta struct {
		ResultCount int    `json:"result_count"`
		NextToken   string `json:"next_token"`
	} `json:"meta"`
	Errors []apierror `json:"errors"`
}

type apierror struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// Timeline - resolve the account and hand back a cursor positioned before its first page
func (c *Client) Timeline(ctx context.Context, q Query) (Cursor, error) {
	var u apiuser
	if err := c.get(ctx, "/2/users/by/username/"+url.PathEscape(q.Account), nil, &u); err != nil {
		return nil, err
	}
	if u.Data.ID == "" {
		return nil, fmt.Errorf("%w: '%s'", ErrNoSuchAccount, q.Account)
	}
	return &timelineCursor{c: c, uid: u.Data.ID, q: q}, nil
}

// get - one logical request: paced, and retried across rate limits and transient failures
func (c *Client) get(ctx context.Context, path string, params url.Values, into any) error {
	const (
		FAIL1 = "giving up on %s after %d attempts: %w"
		FAIL2 = "%s returned status %d: %s"
		MSG1  = "transient failure on %s (%v); retrying in %v"
	)

	target := c.Host + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	transient := 0
	for {
		if err := c.Limiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return fmt.Errorf("creating request for %s: %w", path, err)
		}
		req.Header.Set("Authorization", "Bearer "+c.Token)
		req.Header.Set("User-Agent", vv.MYNAME+"/"+vv.VERSION)

		resp, err := c.HTTP.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			transient++
			if transient > c.MaxTransient {
				return fmt.Errorf(FAIL1, path, transient, err)
			}
			pause := c.TransientPause * time.Duration(transient)
			c.Notify(fmt.Sprintf(MSG1, path, err, pause))
			if e := sleep(ctx, pause); e != nil {
				return e
			}
			continue
		}

		body, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()

		switch {
		case err != nil:
			transient++
			if transient > c.MaxTransient {
				return fmt.Errorf(FAIL1, path, transient, err)
			}
			if e := sleep(ctx, c.TransientPause*time.Duration(transient)); e != nil {
				return e
			}
		case resp.StatusCode == http.StatusOK:
			if e := json.Unmarshal(body, into); e != nil {
				return fmt.Errorf("decoding %s: %w", path, e)
			}
			return nil
		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
			return fmt.Errorf("%w (status %d)", ErrAuth, resp.StatusCode)
		case resp.StatusCode == http.StatusTooManyRequests:
			w := c.ratewait(resp.Header)
			c.Notify(fmt.Sprintf(vv.FEEDWAITNOTICE, int(w/vv.FEEDWAITNOTICEDELTA)))
			if e := sleep(ctx, w); e != nil {
				return e
			}
		case resp.StatusCode >= 500:
			transient++
			if transient > c.MaxTransient {
				return fmt.Errorf(FAIL1, path, transient, fmt.Errorf("status %d", resp.StatusCode))
			}
			pause := c.TransientPause * time.Duration(transient)
			c.Notify(fmt.Sprintf(MSG1, path, resp.Status, pause))
			if e := sleep(ctx, pause); e != nil {
				return e
			}
		default:
			return fmt.Errorf(FAIL2, path, resp.StatusCode, snippet(body))
		}
	}
}

// ratewait - how long until the rate window resets
func (c *Client) ratewait(h http.Header) time.Duration {
	if r := h.Get("x-rate-limit-reset"); r != "" {
		if epoch, err := strconv.ParseInt(r, 10, 64); err == nil {
			w := time.Unix(epoch, 0).Sub(c.now())
			if w < time.Second {
				w = time.Second
			}
			return w
		}
	}
	return c.FallbackWait
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func snippet(b []byte) string {
	const MAX = 200
	s := strings.TrimSpace(string(b))
	if len(s) > MAX {
		s = s[:MAX] + "..."
	}
	return s
}
