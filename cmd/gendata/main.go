// Command gendata regenerates pinyin/data.go's rawUnicodeReadings table
// from a YAML word/character list, grounded on generator/main.go's
// YAML-config-driven codegen shape but repurposed to produce pinyin data
// instead of per-language source files.
//
// It uses mozillazg/go-pinyin for heteronym readings (ordered
// most-common-first, matching Heteronym mode's own ordering) and
// yanyiwu/gojieba to segment a sample corpus so that characters are
// discovered the same way a real document would present them, rather
// than enumerated by raw codepoint range.
package main

import (
	"fmt"
	"os"
	"sort"
	"text/template"

	"github.com/mozillazg/go-pinyin"
	"github.com/yanyiwu/gojieba"
	"gopkg.in/yaml.v2"
)

// Config lists the source material the table is regenerated from.
type Config struct {
	// Corpus is sample text segmented with gojieba to discover words; every
	// Han rune encountered this way is included in the output table.
	Corpus string `yaml:"corpus"`
	// ExtraChars are individual characters to force-include even if Corpus
	// never mentions them.
	ExtraChars string `yaml:"extra_chars"`
	OutputFile string `yaml:"output_file"`
}

const tableTemplate = `package pinyin

// rawUnicodeReadings is the curated codepoint -> unicode pinyin readings
// source table, regenerated by cmd/gendata from mozillazg/go-pinyin.
//
// Entries with more than one reading are ordered most-common-first, the
// same order mozillazg/go-pinyin's Heteronym mode reports them.
var rawUnicodeReadings = map[rune][]string{
{{- range .Entries }}
	{{ printf "%q" .Char }}: {{ "{" }}{{ range $i, $r := .Readings }}{{ if $i }}, {{ end }}{{ printf "%q" $r }}{{ end }}{{ "}" }},
{{- end }}
}
`

type entry struct {
	Char     rune
	Readings []string
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gendata <config.yaml>")
		os.Exit(1)
	}
	cfg, err := loadConfig(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "gendata: %v\n", err)
		os.Exit(1)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "gendata: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = "pinyin/data.go"
	}
	return cfg, nil
}

func run(cfg Config) error {
	seg := gojieba.NewJieba()
	defer seg.Free()

	seen := map[rune]bool{}
	var ordered []rune
	collect := func(s string) {
		for _, r := range s {
			if !isHan(r) || seen[r] {
				continue
			}
			seen[r] = true
			ordered = append(ordered, r)
		}
	}

	for _, word := range seg.Cut(cfg.Corpus, true) {
		collect(word)
	}
	collect(cfg.ExtraChars)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	args := pinyin.NewArgs()
	args.Style = pinyin.Tone
	args.Heteronym = true

	entries := make([]entry, 0, len(ordered))
	for _, r := range ordered {
		readings := pinyin.Pinyin(string(r), args)
		if len(readings) == 0 || len(readings[0]) == 0 {
			continue
		}
		entries = append(entries, entry{Char: r, Readings: readings[0]})
	}

	tmpl, err := template.New("table").Parse(tableTemplate)
	if err != nil {
		return fmt.Errorf("parsing template: %w", err)
	}
	f, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("creating %s: %w", cfg.OutputFile, err)
	}
	defer f.Close()
	return tmpl.Execute(f, struct{ Entries []entry }{entries})
}

func isHan(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}
