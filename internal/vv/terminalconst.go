//    FeedTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	MINCONFIG = `
{"FeedLogin": {"BearerToken": "YOURTOKENHERE"}}
`

	TERMINALTEXT = `Copyright (C) %s / %s
      %s

      This program comes with ABSOLUTELY NO WARRANTY; without even the  
      implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.

      This is free software, and you are welcome to redistribute it and/or 
      modify it under the terms of the GNU General Public License version 3.`

	PROJYEAR = "2024"
	PROJAUTH = "E. Gunderson"
	PROJURL  = "https://github.com/e-gun/FeedTopics"

	HELPTEXTTEMPLATE = `S3usageS0: C5feedtopicsC0 [C3collectC0|C3topicsC0] [options]

S3command line optionsS0:
   C1-acC0 C2{string}C0 account to collect [C6currentC0: C3{{.account}}C0]
   C1-bwC0          disable color output in the console
   C1-cC0 C2{path}C0    read configuration from this file instead of "C3{{.home}}{{.conffile}}C0"
   C1-chC0 C2{path}C0   write an html chart of the topic weights to this file
   C1-glC0 C2{num}C0    set golang log level (C10-5C0) [C6currentC0: C3{{.ftll}}C0]
   C1-hC0           print this help information
   C1-kC0 C2{num}C0     number of topics to model [C6currentC0: C3{{.topics}}C0]
   C1-nC0 C2{num}C0     number of top words to report per topic [C6currentC0: C3{{.topwords}}C0]
   C1-ofC0 C2{path}C0   collector output file [C6currentC0: C3{{.outfile}}C0]
   C1-pcC0          enable CPU profiling run
   C1-pmC0          enable MEM profiling run
   C1-siC0 C2{date}C0   collect posts since this date (inclusive) [C6currentC0: C3{{.since}}C0]
   C1-unC0 C2{date}C0   collect posts until this date (exclusive) [C6currentC0: C3{{.until}}C0]
   C1-vC0           print version info and exit
   C1-wpC0 C2{string}C0 collector write policy: C3appendC0, C3dedupC0, or C3truncateC0 [C6currentC0: C3{{.policy}}C0]

     S1NB:S0 the feed credentials are only ever read from "C3{{.conffile}}C0"; at a minimum it should contain:
         C4{"FeedLogin": {"BearerToken": "YOURTOKENHERE"}}C0
     the corpora to model are listed there as well; see the sample configuration files at
         C3{{.projurl}}C0
`
)
