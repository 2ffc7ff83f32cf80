package generate

import (
	"go.uber.org/zap"

	"github.com/variomics/var2prot/internal/variant"
)

// Protein is a candidate protein translated from a mutated transcript.
type Protein struct {
	TranscriptID string
	Sequence     string
	Variants     []*variant.Variant
}

// Proteins translates mutated transcripts into candidate proteins.
// Transcripts that translate to an empty sequence (e.g. an immediate stop
// gain at the start codon) are dropped with a warning.
func (g *Generator) Proteins(transcripts []*Transcript) []*Protein {
	proteins := make([]*Protein, 0, len(transcripts))
	for _, t := range transcripts {
		seq := Translate(t.Sequence)
		if seq == "" {
			g.logger.Warn("transcript translates to empty protein, skipping",
				zap.String("transcript_id", t.ID))
			continue
		}
		proteins = append(proteins, &Protein{
			TranscriptID: t.ID,
			Sequence:     seq,
			Variants:     t.Variants,
		})
	}
	return proteins
}
