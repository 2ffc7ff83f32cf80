// Package mart resolves reference-genome keys to lookup endpoints and
// fetches transcript sequences from them.
package mart

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Endpoint base URLs per reference genome. Read-only after initialization.
var endpoints = map[string]string{
	"GRCH37": "https://grch37.rest.ensembl.org",
	"GRCH38": "https://rest.ensembl.org",
}

// Resolve maps a reference-genome key (case-insensitive, e.g. "GRCh38") to
// its lookup endpoint. An unknown key is a configuration error and must be
// reported before any input file is opened.
func Resolve(reference string) (string, error) {
	url, ok := endpoints[strings.ToUpper(reference)]
	if !ok {
		return "", fmt.Errorf("unknown reference genome %q (known: %s)",
			reference, strings.Join(knownReferences(), ", "))
	}
	return url, nil
}

func knownReferences() []string {
	keys := make([]string, 0, len(endpoints))
	for k := range endpoints {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Sequence holds the wild-type sequences fetched for one transcript.
type Sequence struct {
	TranscriptID string
	CDS          string // coding DNA sequence
	Protein      string // translated protein sequence
}

// SequenceSource fetches transcript sequences by identifier.
type SequenceSource interface {
	Fetch(ctx context.Context, transcriptID string) (*Sequence, error)
}
