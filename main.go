//    FeedTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/e-gun/FeedTopics/internal/collect"
	"github.com/e-gun/FeedTopics/internal/csvio"
	"github.com/e-gun/FeedTopics/internal/extract"
	"github.com/e-gun/FeedTopics/internal/feed"
	"github.com/e-gun/FeedTopics/internal/lnch"
	"github.com/e-gun/FeedTopics/internal/str"
	"github.com/e-gun/FeedTopics/internal/vv"
	"github.com/pkg/profile"
	"os"
	"os/signal"
	"strings"
)

var Msg = lnch.Msg

func main() {
	os.Exit(run(os.Args[1:]))
}

// run - everything main() does; the exit status is returned so that deferred calls (profiling) get to run
func run(args []string) int {
	mode := lnch.ConfigAtLaunch(args)
	cfg := lnch.Config

	// go tool pprof --pdf ./feedtopics /path/to/cpu.pprof > profile.pdf
	if cfg.ProfileCPU {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	} else if cfg.ProfileMEM {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch mode {
	case lnch.MODEVERSION:
		lnch.PrintVersion(*cfg)
		lnch.PrintBuildInfo(*cfg)
		Msg.Plain(fmt.Sprintf(vv.TERMINALTEXT, vv.PROJYEAR, vv.PROJAUTH, vv.PROJURL))
		return 0
	case lnch.MODEHELP:
		lnch.PrintHelp(cfg)
		return 0
	case lnch.MODECOLLECT:
		lnch.PrintVersion(*cfg)
		return runcollect(ctx, cfg)
	default:
		lnch.PrintVersion(*cfg)
		return runtopics(ctx, cfg)
	}
}

func runcollect(ctx context.Context, cfg *str.CurrentConfiguration) int {
	const (
		FAIL1 = "cannot collect: %s"
		FAIL2 = "collection failed: %s"
		FAIL3 = "could not close '%s': %s"
		HINT  = "'%s' needs at least: %s"
	)

	if err := lnch.CheckCollectConfig(cfg); err != nil {
		Msg.CRIT(fmt.Sprintf(FAIL1, err.Error()))
		if errors.Is(err, lnch.ErrNoCredentials) {
			Msg.MAND(fmt.Sprintf(HINT, vv.CONFIGBASIC, strings.TrimSpace(vv.MINCONFIG)))
		}
		return 1
	}

	req, err := collect.RequestFrom(cfg.Collect)
	if err != nil {
		Msg.CRIT(fmt.Sprintf(FAIL1, err.Error()))
		return 1
	}

	w, err := csvio.NewPostWriter(cfg.Collect.OutFile, cfg.Collect.WritePolicy)
	if err != nil {
		Msg.CRIT(fmt.Sprintf(FAIL1, err.Error()))
		return 1
	}

	client := feed.NewClient(cfg.FeedLogin, Msg.MAND)
	_, err = collect.Collect(ctx, client, req, w)
	if e := w.Close(); e != nil {
		Msg.CRIT(fmt.Sprintf(FAIL3, cfg.Collect.OutFile, e.Error()))
		return 1
	}
	if err != nil {
		Msg.CRIT(fmt.Sprintf(FAIL2, err.Error()))
		return 1
	}
	return 0
}

func runtopics(ctx context.Context, cfg *str.CurrentConfiguration) int {
	const (
		FAIL1 = "no corpora configured"
		FAIL2 = "%d of %d corpora failed"
	)

	if len(cfg.Corpora) == 0 {
		Msg.CRIT(FAIL1)
		return 1
	}

	oo := extract.Run(ctx, cfg, cfg.Corpora)
	if n := extract.Failed(oo); n > 0 {
		Msg.CRIT(fmt.Sprintf(FAIL2, n, len(oo)))
		return 1
	}
	return 0
}
