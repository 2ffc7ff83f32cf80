package duckdb

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variomics/var2prot/internal/mart"
)

func openInMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openInMemory(t)
	assert.NotNil(t, s.DB())
}

func TestWriteAndLookupTranscripts(t *testing.T) {
	s := openInMemory(t)

	seqs := []*mart.Sequence{
		{TranscriptID: "ENST00000311936", CDS: "ATGACTGAA", Protein: "MTE"},
		{TranscriptID: "ENST00000256078", CDS: "ATGGGT", Protein: "MG"},
		// Duplicate ID is deduplicated before writing.
		{TranscriptID: "ENST00000311936", CDS: "ATGACTGAA", Protein: "MTE"},
	}
	require.NoError(t, s.WriteTranscripts(seqs))

	seq, err := s.LookupTranscript("ENST00000311936")
	require.NoError(t, err)
	require.NotNil(t, seq)
	assert.Equal(t, "ATGACTGAA", seq.CDS)
	assert.Equal(t, "MTE", seq.Protein)

	seq, err = s.LookupTranscript("ENST_MISSING")
	require.NoError(t, err)
	assert.Nil(t, seq, "cache miss returns nil")
}

func TestClearTranscripts(t *testing.T) {
	s := openInMemory(t)

	require.NoError(t, s.WriteTranscripts([]*mart.Sequence{
		{TranscriptID: "ENST1", CDS: "ATG", Protein: "M"},
	}))
	require.NoError(t, s.ClearTranscripts())

	seq, err := s.LookupTranscript("ENST1")
	require.NoError(t, err)
	assert.Nil(t, seq)
}

// countingSource records fetches and implements mart.SequenceSource.
type countingSource struct {
	calls int
	err   error
}

func (c *countingSource) Fetch(ctx context.Context, id string) (*mart.Sequence, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return &mart.Sequence{TranscriptID: id, CDS: "ATGTGA", Protein: "M"}, nil
}

func TestCachingSourceReadThrough(t *testing.T) {
	s := openInMemory(t)
	src := &countingSource{}
	caching := NewCachingSource(s, src)

	seq, err := caching.Fetch(context.Background(), "ENST1")
	require.NoError(t, err)
	assert.Equal(t, "ATGTGA", seq.CDS)
	assert.Equal(t, 1, src.calls)

	// Second fetch is served from the store.
	seq, err = caching.Fetch(context.Background(), "ENST1")
	require.NoError(t, err)
	assert.Equal(t, "ATGTGA", seq.CDS)
	assert.Equal(t, 1, src.calls, "no second upstream fetch")
}

func TestCachingSourcePropagatesFetchError(t *testing.T) {
	s := openInMemory(t)
	src := &countingSource{err: errors.New("endpoint unreachable")}
	caching := NewCachingSource(s, src)

	_, err := caching.Fetch(context.Background(), "ENST1")
	require.Error(t, err)
}
