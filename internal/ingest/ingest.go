// Package ingest loads reference vocabularies, query lists, and gold
// mappings from disk for the matching pipeline.
package ingest

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadResult holds the words read from one file plus line accounting.
type LoadResult struct {
	Words      []string
	SourcePath string
	TotalLines int
	Blank      int
	Comments   int
}

// LoadWords reads a word list, one word per line. Blank lines and lines
// starting with '#' are skipped, as is a leading all-digit count line
// (Hunspell convention).
func LoadWords(path string) (*LoadResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer file.Close()

	result := &LoadResult{SourcePath: path}
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		result.TotalLines++

		if line == "" {
			result.Blank++
			continue
		}
		if strings.HasPrefix(line, "#") {
			result.Comments++
			continue
		}

		// Skip first line if it's a word count
		if lineNum == 1 && isDigits(line) {
			continue
		}

		result.Words = append(result.Words, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading word list: %w", err)
	}

	return result, nil
}

// LoadGold reads a two-column TSV mapping query to expected canonical
// form, used to score a batch run. Malformed lines are reported.
func LoadGold(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open gold file: %w", err)
	}
	defer file.Close()

	gold := make(map[string]string)
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("gold file %s line %d: want 2 tab-separated columns, got %d",
				path, lineNum, len(fields))
		}
		gold[strings.TrimSpace(fields[0])] = strings.TrimSpace(fields[1])
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading gold file: %w", err)
	}

	return gold, nil
}

// isDigits reports whether s consists solely of ASCII digits.
func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
