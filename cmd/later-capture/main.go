// Command later-capture classifies captured text as a task, list, or note
// and prints the detection to stdout
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"later/internal/core/version"
	"later/internal/modkit"
	modreg "later/internal/modkit/module"
	"later/internal/platform/config"
	"later/internal/platform/logger"
	"later/internal/services/capture/domain"
	capture "later/internal/services/capture/module"
)

func main() {
	var (
		text    = flag.String("text", "", "capture text to analyze (default: stdin)")
		file    = flag.String("file", "", "read capture text from a file instead")
		batch   = flag.Bool("batch", false, "split input on --- lines and analyze each capture")
		asJSON  = flag.Bool("json", false, "emit detections as JSON")
		workers = flag.Int("workers", 0, "batch worker pool size (0 = from env)")
		minConf = flag.Float64("min-confidence", 0, "confidence floor for the confident flag (0 = from env)")
		showVer = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVer {
		bi := version.Info("later-capture")
		fmt.Printf("%s %s (%s %s)\n", bi.Service, bi.Version, bi.Commit, bi.Date)
		return
	}

	logger.Init(logger.FromEnv())
	log := logger.Get()

	input, err := readInput(*text, *file)
	if err != nil {
		log.Fatal().Err(err).Msg("read input")
	}

	deps := modkit.Deps{Log: *log, Cfg: config.New()}
	mod := capture.New(deps, capture.Options{Workers: *workers, MinConfidence: *minConf})
	modreg.Register(mod.Name(), mod.Ports())
	analyzer := modreg.MustPortsOf[domain.AnalyzerPort](mod)

	ctx := context.Background()

	var dets []domain.Detection
	if *batch {
		dets, err = analyzer.AnalyzeBatch(ctx, splitBatch(input))
	} else {
		var d domain.Detection
		d, err = analyzer.Analyze(ctx, input)
		dets = []domain.Detection{d}
	}
	if err != nil {
		log.Fatal().Err(err).Msg("analyze")
	}

	if err := emit(os.Stdout, dets, *asJSON, *batch); err != nil {
		log.Fatal().Err(err).Msg("write output")
	}
}

// readInput resolves the capture source: -text wins, then -file, then stdin
func readInput(text, file string) (string, error) {
	if text != "" {
		return text, nil
	}
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// splitBatch cuts input into captures on lines containing only ---
func splitBatch(input string) []string {
	var texts []string
	var cur []string
	flush := func() {
		t := strings.TrimSpace(strings.Join(cur, "\n"))
		if t != "" {
			texts = append(texts, t)
		}
		cur = cur[:0]
	}
	for _, ln := range strings.Split(input, "\n") {
		if strings.TrimSpace(ln) == "---" {
			flush()
			continue
		}
		cur = append(cur, ln)
	}
	flush()
	return texts
}

func emit(w io.Writer, dets []domain.Detection, asJSON, batch bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if !batch && len(dets) == 1 {
			return enc.Encode(dets[0])
		}
		return enc.Encode(dets)
	}
	for i, d := range dets {
		if i > 0 {
			fmt.Fprintln(w)
		}
		suffix := ""
		if !d.Confident {
			suffix = "  (low confidence)"
		}
		fmt.Fprintf(w, "%s  %.0f%%%s\n", d.Type, d.Confidence*100, suffix)
		if d.Title != "" {
			fmt.Fprintf(w, "  title: %s\n", d.Title)
		}
		if d.DueAt != nil {
			fmt.Fprintf(w, "  due:   %s\n", d.DueAt.Format("2006-01-02"))
		}
		for _, it := range d.Items {
			fmt.Fprintf(w, "  - %s\n", it)
		}
		fmt.Fprintf(w, "  scores: task=%.1f list=%.1f note=%.1f\n", d.Scores.Task, d.Scores.List, d.Scores.Note)
	}
	return nil
}
