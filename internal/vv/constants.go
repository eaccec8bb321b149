//    FeedTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

import "time"

const (
	MYNAME    = "Feed Topics"
	SHORTNAME = "FT"
	VERSION   = "0.4.2"

	BLACKANDWHITE     = false
	CONFIGLOCATION    = "."
	CONFIGALTAPTH     = "%s/.config/" // %s = os.UserHomeDir()
	CONFIGBASIC       = "ft-conf.json"
	DEFAULTGOLOGLEVEL = 2
	JSONINDENT        = "  "
	WRITEPERMS        = 0644

	// collection

	DEFAULTFEEDHOST     = "https://api.twitter.com"
	DEFAULTFEEDLANG     = "en"
	DEFAULTOUTFILE      = "result.csv"
	DEFAULTWRITEPOLICY  = "append" // "append", "dedup", "truncate"
	FEEDPAGESIZE        = 100
	FEEDREQPERWINDOW    = 900
	FEEDRATEWINDOW      = 15 * time.Minute
	FEEDFALLBACKWAIT    = 60 * time.Second
	FEEDMAXTRANSIENT    = 4
	FEEDTRANSIENTPAUSE  = 2 * time.Second
	FEEDHTTPTIMEOUT     = 30 * time.Second
	POSTTIMELAYOUT      = "2006-01-02 15:04:05"
	WINDOWDATELAYOUT    = "2006-01-02"
	FEEDWAITNOTICE      = "Rate limit reached. Sleeping for: %d"
	FEEDWAITNOTICEDELTA = time.Second
	ECHOWIDTH           = 110
	ECHOBREAK           = "\n\t\t"
)
