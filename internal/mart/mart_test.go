package mart

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		wantURL   string
		wantErr   bool
	}{
		{"grch38", "GRCh38", "https://rest.ensembl.org", false},
		{"grch37", "GRCh37", "https://grch37.rest.ensembl.org", false},
		{"case insensitive", "grch38", "https://rest.ensembl.org", false},
		{"uppercase", "GRCH37", "https://grch37.rest.ensembl.org", false},
		{"unknown", "hg19", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, err := Resolve(tt.reference)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown reference genome")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, url)
		})
	}
}

func TestNewAdapterUnknownReference(t *testing.T) {
	_, err := NewAdapter("mm10")
	require.Error(t, err)
}

func TestAdapterFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/sequence/id/ENST1") {
			http.NotFound(w, r)
			return
		}
		// The query uses Ensembl's semicolon separators, which net/url
		// refuses to parse; match on the raw query instead.
		switch {
		case strings.Contains(r.URL.RawQuery, "type=cds"):
			fmt.Fprint(w, `{"seq": "ATGGGTTGA"}`)
		case strings.Contains(r.URL.RawQuery, "type=protein"):
			fmt.Fprint(w, `{"seq": "MG"}`)
		default:
			http.Error(w, "bad type", http.StatusBadRequest)
		}
	}))
	defer srv.Close()

	a := NewAdapterWithEndpoint(srv.URL)

	seq, err := a.Fetch(context.Background(), "ENST1")
	require.NoError(t, err)
	assert.Equal(t, "ENST1", seq.TranscriptID)
	assert.Equal(t, "ATGGGTTGA", seq.CDS)
	assert.Equal(t, "MG", seq.Protein)
}

func TestAdapterFetchNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	a := NewAdapterWithEndpoint(srv.URL)

	_, err := a.Fetch(context.Background(), "ENST_MISSING")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
