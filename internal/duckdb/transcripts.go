package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	goduckdb "github.com/marcboeker/go-duckdb"
	"go.uber.org/zap"

	"github.com/variomics/var2prot/internal/mart"
)

// WriteTranscripts batch-inserts transcript sequences using the Appender API.
// Entries already present are deduplicated before writing.
func (s *Store) WriteTranscripts(seqs []*mart.Sequence) error {
	if len(seqs) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(seqs))
	deduped := make([]*mart.Sequence, 0, len(seqs))
	for _, seq := range seqs {
		if !seen[seq.TranscriptID] {
			seen[seq.TranscriptID] = true
			deduped = append(deduped, seq)
		}
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "transcript_seqs")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	now := time.Now().UTC()
	for _, seq := range deduped {
		if err := appender.AppendRow(seq.TranscriptID, seq.CDS, seq.Protein, now); err != nil {
			return fmt.Errorf("append transcript sequence: %w", err)
		}
	}

	return appender.Flush()
}

// LookupTranscript queries the cache for one transcript's sequences.
// Returns nil, nil on a cache miss.
func (s *Store) LookupTranscript(transcriptID string) (*mart.Sequence, error) {
	var seq mart.Sequence
	err := s.db.QueryRow(
		`SELECT transcript_id, cds_sequence, protein_sequence
		 FROM transcript_seqs WHERE transcript_id=?`,
		transcriptID).Scan(&seq.TranscriptID, &seq.CDS, &seq.Protein)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query transcript sequence: %w", err)
	}
	return &seq, nil
}

// ClearTranscripts removes all cached transcript sequences.
func (s *Store) ClearTranscripts() error {
	_, err := s.db.Exec("DELETE FROM transcript_seqs")
	return err
}

// CachingSource is a read-through cache over a sequence source: lookups hit
// the store first and fetched sequences are written back on a miss.
type CachingSource struct {
	store  *Store
	src    mart.SequenceSource
	logger *zap.Logger
}

// NewCachingSource wraps src with the store's transcript cache.
func NewCachingSource(store *Store, src mart.SequenceSource) *CachingSource {
	return &CachingSource{
		store:  store,
		src:    src,
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger for cache warnings.
func (c *CachingSource) SetLogger(l *zap.Logger) {
	c.logger = l
}

// Fetch returns the cached sequences for a transcript, fetching and caching
// them on a miss. Cache write failures are logged, not fatal.
func (c *CachingSource) Fetch(ctx context.Context, transcriptID string) (*mart.Sequence, error) {
	cached, err := c.store.LookupTranscript(transcriptID)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		return cached, nil
	}

	seq, err := c.src.Fetch(ctx, transcriptID)
	if err != nil {
		return nil, err
	}

	if err := c.store.WriteTranscripts([]*mart.Sequence{seq}); err != nil {
		c.logger.Warn("failed to cache transcript sequence",
			zap.String("transcript_id", transcriptID),
			zap.Error(err))
	}

	return seq, nil
}
