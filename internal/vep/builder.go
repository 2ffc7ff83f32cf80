package vep

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/variomics/var2prot/internal/variant"
	"github.com/variomics/var2prot/internal/vcf"
)

// RecordSource is the interface for parsers that read locus records.
type RecordSource interface {
	// Next reads the next record. Returns nil, nil when there are no more.
	Next() (*vcf.Record, error)

	// Close closes the source and releases resources.
	Close() error

	// LineNumber returns the current line number being processed.
	LineNumber() int
}

// Builder turns locus records into normalized variants by filtering their
// per-transcript annotations to coding-relevant Transcript features.
type Builder struct {
	geneFilter map[string]struct{}
	logger     *zap.Logger
}

// NewBuilder creates a builder. geneFilter is an allow-list of gene
// cross-reference identifiers; nil or empty disables gene filtering.
func NewBuilder(geneFilter map[string]struct{}) *Builder {
	return &Builder{
		geneFilter: geneFilter,
		logger:     zap.NewNop(),
	}
}

// SetLogger sets the logger for warning messages.
func (b *Builder) SetLogger(l *zap.Logger) {
	b.logger = l
}

// Build classifies one locus record. It returns nil if no transcript
// annotation for the locus is coding-relevant or passes the gene filter;
// such loci produce no output. lineNumber is carried into warnings only.
func (b *Builder) Build(rec *vcf.Record, lineNumber int) *variant.Variant {
	coding := make(map[string]variant.MutationSyntax)
	synonymous := false

	for _, sub := range rec.AnnotationBlocks() {
		ann, err := parseCSQ(sub)
		if err != nil {
			// Malformed sub-annotation: skip this sub-string only.
			b.logger.Warn("malformed annotation sub-string",
				zap.Int("line", lineNumber),
				zap.Error(err))
			continue
		}

		// Regulatory and motif features never contribute mutation syntax.
		if ann.FeatureType != FeatureTypeTranscript {
			continue
		}
		if len(b.geneFilter) > 0 {
			if _, ok := b.geneFilter[ann.HGNCID]; !ok {
				continue
			}
		}

		if !IsCodingRelevant(ann.Consequence) {
			continue
		}

		// A synonymous term on any coding-relevant annotation marks the
		// whole locus.
		if IsSynonymous(ann.Consequence) {
			synonymous = true
		}

		// Annotations without a usable transcript coordinate cannot anchor a
		// mutation on the transcript sequence.
		tpos := variant.ParseCoord(ann.TranscriptPos)
		if tpos == variant.CoordAbsent {
			continue
		}

		coding[ann.TranscriptID] = variant.MutationSyntax{
			TranscriptID:  ann.TranscriptID,
			TranscriptPos: tpos,
			ProteinPos:    variant.ParseCoord(ann.ProteinPos),
			Annotation:    ann.Raw,
			GeneID:        ann.HGNCID,
		}
	}

	if len(coding) == 0 {
		return nil
	}

	return &variant.Variant{
		ID:         rec.ID,
		Type:       variant.Classify(rec.Ref, rec.Alt),
		Chrom:      rec.Chrom,
		Pos:        rec.Pos,
		Ref:        strings.ToUpper(rec.Ref),
		Alt:        strings.ToUpper(rec.Alt),
		Coding:     coding,
		Synonymous: synonymous,
	}
}

// BuildAll drains a record source and returns the variants for all loci with
// at least one qualifying annotation, in input order. Loci are classified
// concurrently; a malformed line aborts the run.
func (b *Builder) BuildAll(src RecordSource, workers int) ([]*variant.Variant, error) {
	items := make(chan WorkItem, 16)
	var parseErr error

	go func() {
		defer close(items)
		seq := 0
		for {
			rec, err := src.Next()
			if err != nil {
				parseErr = fmt.Errorf("read record: %w", err)
				return
			}
			if rec == nil {
				return
			}
			items <- WorkItem{Seq: seq, Line: src.LineNumber(), Record: rec}
			seq++
		}
	}()

	results := b.ParallelBuild(items, workers)

	var variants []*variant.Variant
	if err := OrderedCollect(results, func(r WorkResult) error {
		if r.Variant != nil {
			variants = append(variants, r.Variant)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if parseErr != nil {
		return nil, parseErr
	}

	return variants, nil
}
