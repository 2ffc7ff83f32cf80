package generate

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/variomics/var2prot/internal/mart"
	"github.com/variomics/var2prot/internal/variant"
)

// Transcript is a transcript sequence with variants applied.
type Transcript struct {
	ID       string
	GeneID   string
	Sequence string // mutated coding DNA sequence
	Variants []*variant.Variant
}

// Generator builds mutated transcripts from variants and a sequence source.
type Generator struct {
	src    mart.SequenceSource
	logger *zap.Logger
}

// NewGenerator creates a generator backed by the given sequence source.
func NewGenerator(src mart.SequenceSource) *Generator {
	return &Generator{
		src:    src,
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger for warning messages.
func (g *Generator) SetLogger(l *zap.Logger) {
	g.logger = l
}

// Transcripts groups variants by transcript, fetches each wild-type coding
// sequence and applies the variants at their transcript coordinates.
// Transcripts whose sequence cannot be fetched are skipped with a warning;
// context cancellation aborts the run.
func (g *Generator) Transcripts(ctx context.Context, vs []*variant.Variant) ([]*Transcript, error) {
	byTranscript := make(map[string][]*variant.Variant)
	for _, v := range vs {
		for tid := range v.Coding {
			byTranscript[tid] = append(byTranscript[tid], v)
		}
	}

	tids := make([]string, 0, len(byTranscript))
	for tid := range byTranscript {
		tids = append(tids, tid)
	}
	sort.Strings(tids)

	var transcripts []*Transcript
	for _, tid := range tids {
		seq, err := g.src.Fetch(ctx, tid)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			g.logger.Warn("could not fetch transcript sequence, skipping",
				zap.String("transcript_id", tid),
				zap.Error(err))
			continue
		}

		t := g.apply(tid, seq.CDS, byTranscript[tid])
		if t != nil {
			transcripts = append(transcripts, t)
		}
	}

	return transcripts, nil
}

// apply mutates the wild-type sequence with the transcript's variants.
// Variants are applied from the highest coordinate down so that earlier
// offsets stay valid across insertions and deletions.
func (g *Generator) apply(tid, wildType string, vs []*variant.Variant) *Transcript {
	sorted := make([]*variant.Variant, len(vs))
	copy(sorted, vs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Coding[tid].TranscriptPos > sorted[j].Coding[tid].TranscriptPos
	})

	seq := wildType
	applied := make([]*variant.Variant, 0, len(sorted))
	var geneID string

	for _, v := range sorted {
		ms := v.Coding[tid]
		pos := ms.TranscriptPos
		if pos < 0 || pos >= int64(len(seq)) {
			g.logger.Warn("variant position outside transcript sequence, skipping",
				zap.String("transcript_id", tid),
				zap.String("variant", v.ID),
				zap.Int64("position", pos))
			continue
		}

		switch v.Type {
		case variant.SNP:
			seq = seq[:pos] + v.Alt + seq[pos+int64(len(v.Ref)):]
		case variant.DEL, variant.FSDEL:
			end := pos + int64(len(v.Ref))
			if end > int64(len(seq)) {
				end = int64(len(seq))
			}
			seq = seq[:pos] + seq[end:]
		case variant.INS, variant.FSINS:
			seq = seq[:pos] + v.Alt + seq[pos:]
		default:
			continue
		}

		applied = append(applied, v)
		geneID = ms.GeneID
	}

	if len(applied) == 0 {
		return nil
	}

	// Restore input order for the FASTA header.
	sort.Slice(applied, func(i, j int) bool {
		return applied[i].Coding[tid].TranscriptPos < applied[j].Coding[tid].TranscriptPos
	})

	return &Transcript{
		ID:       tid,
		GeneID:   geneID,
		Sequence: strings.ToUpper(seq),
		Variants: applied,
	}
}
