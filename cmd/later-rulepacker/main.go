// Command later-rulepacker validates and normalizes rules.json files.
// With no -in it operates on the built-in pack
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"later/internal/core/rulepack"
	"later/internal/core/version"
	"later/internal/platform/logger"
)

func main() {
	var (
		in      = flag.String("in", "", "rules.json to load (default: built-in pack)")
		out     = flag.String("out", "", "write the normalized JSON here (default: stdout, unless -check)")
		check   = flag.Bool("check", false, "validate only, no output")
		compact = flag.Bool("compact", false, "emit compact JSON instead of indented")
		showVer = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVer {
		bi := version.Info("later-rulepacker")
		fmt.Printf("%s %s (%s %s)\n", bi.Service, bi.Version, bi.Commit, bi.Date)
		return
	}

	logger.Init(logger.FromEnv())
	log := logger.Get()

	src := rulepack.Embedded()
	name := "built-in"
	if *in != "" {
		b, err := os.ReadFile(*in)
		if err != nil {
			log.Fatal().Err(err).Msg("read rules")
		}
		src, name = b, *in
	}

	p, err := rulepack.Parse(src)
	if err != nil {
		log.Fatal().Err(err).Str("pack", name).Msg("invalid rules")
	}

	log.Info().
		Str("pack", name).
		Int("version", p.Version).
		Int("verbs", len(p.VerbSet)).
		Int("due_phrases", len(p.DuePhrases)).
		Msg("rules ok")

	if *check {
		return
	}

	norm, err := normalize(src, *compact)
	if err != nil {
		log.Fatal().Err(err).Msg("normalize rules")
	}

	if *out == "" {
		fmt.Println(string(norm))
		return
	}
	if err := os.WriteFile(*out, append(norm, '\n'), 0o644); err != nil {
		log.Fatal().Err(err).Str("path", *out).Msg("write rules")
	}
	log.Info().Str("path", *out).Msg("rules written")
}

// normalize reformats the raw JSON without reordering or dropping fields
func normalize(src []byte, compact bool) ([]byte, error) {
	var buf bytes.Buffer
	if compact {
		if err := json.Compact(&buf, src); err != nil {
			return nil, err
		}
	} else {
		if err := json.Indent(&buf, src, "", "  "); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
