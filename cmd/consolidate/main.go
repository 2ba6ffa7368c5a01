// samrup-consolidate - merge reference word lists into one deduplicated
// vocabulary keyed by normalized form.
// Usage: samrup-consolidate [options] <list>...
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"samrup/internal/ingest"
	"samrup/internal/lexicon"

	"github.com/spf13/pflag"
)

func main() {
	// Flags
	output := pflag.StringP("output", "o", "", "Output file (default: stdout)")
	showCollisions := pflag.BoolP("collisions", "c", false, "Report originals sharing a normalized form")
	quiet := pflag.BoolP("quiet", "q", false, "Suppress summary output")

	pflag.Parse()

	if pflag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: samrup-consolidate [options] <list>...")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		pflag.PrintDefaults()
		os.Exit(1)
	}

	var words []string
	var totalRaw int
	for _, path := range pflag.Args() {
		result, err := ingest.LoadWords(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		words = append(words, result.Words...)
		totalRaw += len(result.Words)
	}

	lex := lexicon.New(words)

	// Keep the first original seen for each normalized form.
	seen := make(map[string]bool)
	var merged []string
	for _, e := range lex.Entries() {
		if seen[e.Normalized] {
			continue
		}
		seen[e.Normalized] = true
		merged = append(merged, e.Original)
	}
	sort.Strings(merged)

	if err := writeList(*output, merged); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *showCollisions {
		collisions := lex.Collisions()
		forms := make([]string, 0, len(collisions))
		for form := range collisions {
			forms = append(forms, form)
		}
		sort.Strings(forms)

		for _, form := range forms {
			fmt.Fprintf(os.Stderr, "%s: %s\n", form, strings.Join(collisions[form], ", "))
		}
	}

	if !*quiet {
		fmt.Fprintf(os.Stderr, "%d words in, %d unique normalized forms, %d rejected\n",
			totalRaw, len(merged), lex.Rejected())
	}
}

// writeList writes one word per line to path, or stdout when path is "".
func writeList(path string, words []string) error {
	out := os.Stdout
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer file.Close()
		out = file
	}

	w := bufio.NewWriter(out)
	for _, word := range words {
		fmt.Fprintln(w, word)
	}
	return w.Flush()
}
