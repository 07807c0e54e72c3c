// Package symbols loads the ticker list the scanner works through.
package symbols

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load reads ticker symbols from a text file, one per line. Blank lines are
// skipped, surrounding whitespace is trimmed, order is preserved and
// duplicates are kept.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open symbol file: %w", err)
	}
	defer f.Close()

	var tickers []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		tickers = append(tickers, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read symbol file: %w", err)
	}
	return tickers, nil
}
