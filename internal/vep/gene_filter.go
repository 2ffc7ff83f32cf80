package vep

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadGeneFilter reads a gene allow-list file into a set of identifiers.
// The file holds one identifier per line; blank lines are ignored.
// An empty path yields a nil set, which disables gene filtering.
func LoadGeneFilter(path string) (map[string]struct{}, error) {
	if path == "" {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gene filter file: %w", err)
	}
	defer f.Close()

	filter := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		id := strings.TrimSpace(scanner.Text())
		if id == "" {
			continue
		}
		filter[id] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan gene filter file: %w", err)
	}

	return filter, nil
}
