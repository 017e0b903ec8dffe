// Package padagalu parses the newline-separated word list (padagalu.txt).
// Pure function: file path in, word texts out. No database dependencies.
package padagalu

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads a word list file. See ParseReader.
func Parse(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return ParseReader(f)
}

// ParseReader returns one trimmed word per non-blank line, in file order.
// Lines starting with '#' are comments. A leading UTF-8 BOM is ignored.
func ParseReader(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	first := true
	for sc.Scan() {
		line := sc.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return words, nil
}
