//    FeedTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/e-gun/FeedTopics/internal/str"
	"github.com/e-gun/FeedTopics/internal/vv"
	"os"
	"runtime"
	"strconv"
	"text/template"
	"time"
)

const (
	MODECOLLECT = "collect"
	MODETOPICS  = "topics"
	MODEHELP    = "help"
	MODEVERSION = "version"
)

var (
	Config *str.CurrentConfiguration
	Msg    = NewMessageMakerWithDefaults()
)

var ErrNoCredentials = errors.New("no feed credentials configured")

// ConfigAtLaunch - read the configuration values from JSON and/or command line; returns the run mode
func ConfigAtLaunch(args []string) string {
	const (
		FAIL1 = "Could not parse '%s'. Skipping and using built-in defaults instead."
		FAIL2 = "ConfigAtLaunch() could not parse the command line: %s"
		FAIL3 = "ConfigAtLaunch() rejected the topic settings: %s"
		MSG1  = "'%s' loaded"
	)

	cf := LocateConfigFile(args)

	Config = BuildDefaultConfig()
	if cf != "" {
		c, e := LoadConfigFile(cf, Config)
		if e != nil {
			Msg.CRIT(fmt.Sprintf(FAIL1, cf))
		} else {
			Config = c
			Msg.TMI(fmt.Sprintf(MSG1, cf))
		}
	}

	mode, err := ParseArgs(Config, args)
	UpdateMessageMakerWithConfig(Msg)
	if err != nil {
		Msg.CRIT(fmt.Sprintf(FAIL2, err.Error()))
		Msg.ExitOrHang(1)
	}
	if err = CheckTopicConfig(Config); err != nil {
		Msg.CRIT(fmt.Sprintf(FAIL3, err.Error()))
		Msg.ExitOrHang(1)
	}

	if Config.WorkerCount > runtime.NumCPU() || Config.WorkerCount < 1 {
		Config.WorkerCount = runtime.NumCPU()
	}
	return mode
}

// LocateConfigFile - "-c path" wins; then "./ft-conf.json"; then "~/.config/ft-conf.json"; "" if none found
func LocateConfigFile(args []string) string {
	for i, a := range args {
		if a == "-c" && i+1 < len(args) {
			return args[i+1]
		}
	}

	local := fmt.Sprintf("%s/%s", vv.CONFIGLOCATION, vv.CONFIGBASIC)
	if _, e := os.Stat(local); e == nil {
		return local
	}

	h, e := os.UserHomeDir()
	if e != nil {
		return ""
	}
	alt := fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGBASIC
	if _, e = os.Stat(alt); e == nil {
		return alt
	}
	return ""
}

// LoadConfigFile - overlay the JSON in fn on top of base; base itself is not modified
func LoadConfigFile(fn string, base *str.CurrentConfiguration) (*str.CurrentConfiguration, error) {
	loadedcfg, e := os.Open(fn)
	if e != nil {
		return nil, e
	}
	defer func() { _ = loadedcfg.Close() }()

	c := *base
	c.Corpora = nil
	c.StopWords = nil
	c.StopKeep = nil
	decoder := json.NewDecoder(loadedcfg)
	if err := decoder.Decode(&c); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", fn, err)
	}
	if c.Corpora == nil {
		c.Corpora = base.Corpora
	}
	if c.FeedLogin.Host == "" {
		c.FeedLogin.Host = vv.DEFAULTFEEDHOST
	}
	return &c, nil
}

// ParseArgs - apply the command line to cfg; first non-switch argument is the mode
func ParseArgs(cfg *str.CurrentConfiguration, args []string) (string, error) {
	mode := MODETOPICS

	next := func(i int) (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf("'%s' requires a value", args[i])
		}
		return args[i+1], nil
	}

	nextint := func(i int) (int, error) {
		v, err := next(i)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("'%s %s': %w", args[i], v, err)
		}
		return n, nil
	}

	skip := false
	for i, a := range args {
		if skip {
			skip = false
			continue
		}
		var err error
		var v string
		var n int
		switch a {
		case "collect":
			mode = MODECOLLECT
		case "topics":
			mode = MODETOPICS
		case "-v":
			mode = MODEVERSION
		case "-h":
			mode = MODEHELP
		case "-bw":
			cfg.BlackAndWhite = true
		case "-pc":
			cfg.ProfileCPU = true
		case "-pm":
			cfg.ProfileMEM = true
		case "-c":
			_, err = next(i)
			skip = true
		case "-ac":
			v, err = next(i)
			cfg.Collect.Account = v
			skip = true
		case "-ch":
			v, err = next(i)
			cfg.LdaChart = v
			skip = true
		case "-of":
			v, err = next(i)
			cfg.Collect.OutFile = v
			skip = true
		case "-si":
			v, err = next(i)
			cfg.Collect.Since = v
			skip = true
		case "-un":
			v, err = next(i)
			cfg.Collect.Until = v
			skip = true
		case "-wp":
			v, err = next(i)
			cfg.Collect.WritePolicy = v
			skip = true
		case "-gl":
			n, err = nextint(i)
			cfg.LogLevel = n
			skip = true
		case "-k":
			n, err = nextint(i)
			if err == nil && (n < 1 || n > vv.LDAMAXTOPICS) {
				err = fmt.Errorf("'-k %d': topics must be between 1 and %d", n, vv.LDAMAXTOPICS)
			}
			cfg.LdaTopics = n
			skip = true
		case "-n":
			n, err = nextint(i)
			if err == nil && n < 1 {
				err = fmt.Errorf("'-n %d': top words must be at least 1", n)
			}
			cfg.LdaTopWords = n
			skip = true
		default:
			err = fmt.Errorf("unknown argument '%s'", a)
		}
		if err != nil {
			return mode, err
		}
	}
	return mode, nil
}

// BuildDefaultConfig - return a CurrentConfiguration filled out with various default values
func BuildDefaultConfig() *str.CurrentConfiguration {
	var c str.CurrentConfiguration
	c.BlackAndWhite = vv.BLACKANDWHITE
	c.LdaChart = ""
	c.LdaTimeoutSec = 0
	c.LdaTopics = vv.LDATOPICS
	c.LdaTopWords = vv.LDATOPWORDS
	c.LogLevel = vv.DEFAULTGOLOGLEVEL
	c.NgramMin = vv.NGRAMMIN
	c.NgramMax = vv.NGRAMMAX
	c.ProfileCPU = false
	c.ProfileMEM = false
	c.WorkerCount = runtime.NumCPU()

	c.Collect = str.CollectRequest{
		Language:    vv.DEFAULTFEEDLANG,
		OutFile:     vv.DEFAULTOUTFILE,
		WritePolicy: vv.DEFAULTWRITEPOLICY,
	}

	c.Corpora = DefaultCorpora()

	// no token: it has to come from the configuration file
	c.FeedLogin = str.FeedLogin{
		BearerToken: "",
		Host:        vv.DEFAULTFEEDHOST,
	}

	return &c
}

// DefaultCorpora - the two archives the project started with: text is the first column of each file
func DefaultCorpora() []str.CorpusSource {
	return []str.CorpusSource{
		{Name: "Barack Obama", Path: "./data/obama.csv", TextColumn: "0", DateColumn: "Date"},
		{Name: "Donald Trump", Path: "./data/trump.csv", TextColumn: "0", DateColumn: "created_at"},
	}
}

// CheckTopicConfig - the topic and top-word counts may come from the JSON file as well as the command line
func CheckTopicConfig(cfg *str.CurrentConfiguration) error {
	if cfg.LdaTopics < 1 || cfg.LdaTopics > vv.LDAMAXTOPICS {
		return fmt.Errorf("LdaTopics is %d; it must be between 1 and %d", cfg.LdaTopics, vv.LDAMAXTOPICS)
	}
	if cfg.LdaTopWords < 1 {
		return fmt.Errorf("LdaTopWords is %d; it must be at least 1", cfg.LdaTopWords)
	}
	return nil
}

// CheckCollectConfig - everything the collector needs has to be present before any i/o happens
func CheckCollectConfig(cfg *str.CurrentConfiguration) error {
	if cfg.FeedLogin.BearerToken == "" {
		return ErrNoCredentials
	}
	if cfg.Collect.Account == "" {
		return errors.New("no account to collect")
	}
	if cfg.Collect.OutFile == "" {
		return errors.New("no output file")
	}
	var since, until time.Time
	var err error
	if since, err = time.Parse(vv.WINDOWDATELAYOUT, cfg.Collect.Since); err != nil {
		return fmt.Errorf("bad since date '%s': %w", cfg.Collect.Since, err)
	}
	if until, err = time.Parse(vv.WINDOWDATELAYOUT, cfg.Collect.Until); err != nil {
		return fmt.Errorf("bad until date '%s': %w", cfg.Collect.Until, err)
	}
	if !since.Before(until) {
		return fmt.Errorf("since (%s) must come before until (%s)", cfg.Collect.Since, cfg.Collect.Until)
	}
	switch cfg.Collect.WritePolicy {
	case "append", "dedup", "truncate":
	default:
		return fmt.Errorf("unknown write policy '%s'", cfg.Collect.WritePolicy)
	}
	return nil
}

// PrintHelp - the help text with the current settings filled in
func PrintHelp(cc *str.CurrentConfiguration) {
	const (
		FAIL1 = "PrintHelp() failed to execute help text template"
	)

	uh, _ := os.UserHomeDir()
	h := fmt.Sprintf(vv.CONFIGALTAPTH, uh)

	m := map[string]interface{}{
		"account":  cc.Collect.Account,
		"conffile": vv.CONFIGBASIC,
		"ftll":     cc.LogLevel,
		"home":     h,
		"outfile":  cc.Collect.OutFile,
		"policy":   cc.Collect.WritePolicy,
		"projurl":  vv.PROJURL,
		"since":    cc.Collect.Since,
		"topics":   cc.LdaTopics,
		"topwords": cc.LdaTopWords,
		"until":    cc.Collect.Until,
	}

	t := template.Must(template.New("").Parse(vv.HELPTEXTTEMPLATE))

	var b bytes.Buffer
	if ee := t.Execute(&b, m); ee != nil {
		Msg.CRIT(FAIL1)
		return
	}
	Msg.Plain(Msg.ColStyle(b.String()))
}
