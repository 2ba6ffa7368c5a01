// samrup-match - best-match lookup for one or more noisy tokens.
// Usage: samrup-match [options] <query>...
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"samrup/internal/config"
	"samrup/internal/ingest"
	"samrup/internal/matcher"

	"github.com/spf13/pflag"
)

func main() {
	// Flags
	reference := pflag.StringP("reference", "r", "", "Reference vocabulary file (one word per line)")
	radius := pflag.IntP("radius", "n", config.DefaultRadius(), "BK-tree query radius")
	gramSize := pflag.IntP("gram-size", "k", config.DefaultGramSize(), "K-gram length for the fallback index")
	gramLimit := pflag.IntP("limit", "l", config.DefaultGramLimit(), "Fallback candidates to rescore")
	jsonOutput := pflag.BoolP("json", "j", false, "Output as JSON")
	showAll := pflag.BoolP("all", "a", false, "Show every BK-tree candidate within the radius")

	pflag.Parse()

	if *reference == "" || pflag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: samrup-match --reference <file> [options] <query>...")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		pflag.PrintDefaults()
		os.Exit(1)
	}

	refResult, err := ingest.LoadWords(*reference)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	m, err := matcher.New(refResult.Words, matcher.Options{
		Radius:    *radius,
		GramSize:  *gramSize,
		GramLimit: *gramLimit,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *showAll {
		for _, query := range pflag.Args() {
			printCandidates(m, query, *radius, *jsonOutput)
		}
		return
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	for _, query := range pflag.Args() {
		result := m.MatchBest(query)

		if *jsonOutput {
			enc.Encode(struct {
				Query string         `json:"query"`
				Match matcher.Result `json:"match"`
			}{Query: query, Match: result})
			continue
		}

		switch result.Status {
		case matcher.StatusMatched:
			fmt.Printf("%s -> %s (distance: %d, via %s)\n",
				query, result.Original, result.Distance, result.Stage)
		default:
			fmt.Printf("%s -> no match (%s)\n", query, result.Status)
		}
	}
}

// printCandidates lists every reference entry within the radius of the
// query, nearest first.
func printCandidates(m *matcher.Matcher, query string, radius int, jsonOutput bool) {
	type candidate struct {
		Word     string `json:"word"`
		Distance int    `json:"distance"`
	}

	var candidates []candidate
	for _, c := range m.Candidates(query, radius) {
		candidates = append(candidates, candidate{
			Word:     m.Lexicon().Entry(c.Entry).Original,
			Distance: c.Distance,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Distance != candidates[j].Distance {
			return candidates[i].Distance < candidates[j].Distance
		}
		return candidates[i].Word < candidates[j].Word
	})

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(struct {
			Query      string      `json:"query"`
			Radius     int         `json:"radius"`
			Count      int         `json:"count"`
			Candidates []candidate `json:"candidates"`
		}{Query: query, Radius: radius, Count: len(candidates), Candidates: candidates})
		return
	}

	if len(candidates) == 0 {
		fmt.Printf("No matches found for %q within distance %d\n", query, radius)
		return
	}

	fmt.Printf("Candidates for %q (max distance: %d):\n\n", query, radius)
	for _, c := range candidates {
		fmt.Printf("  %s (distance: %d)\n", c.Word, c.Distance)
	}
	fmt.Printf("\n%d result(s) found\n", len(candidates))
}
