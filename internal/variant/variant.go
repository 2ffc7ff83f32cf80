package variant

// Variant is one genomic locus with at least one coding-relevant transcript
// annotation. Constructed once all qualifying annotations for the locus have
// been collected; not modified afterwards.
type Variant struct {
	ID    string // source identifier (e.g. rs ID, "." if absent)
	Type  Type
	Chrom string
	Pos   int64  // 1-based genomic position as reported by the annotation source
	Ref   string // uppercased reference allele
	Alt   string // uppercased alternate allele

	// Coding maps transcript ID to its mutation syntax. Keys are unique per
	// transcript; a variant with an empty map is never emitted.
	Coding map[string]MutationSyntax

	// Homozygous is reserved; single-sample VEP input carries no genotype, so
	// it is always false in this pipeline.
	Homozygous bool

	// Synonymous is true if any coding-relevant annotation for the locus
	// carries a synonymous_variant consequence.
	Synonymous bool
}

// TranscriptIDs returns the transcript identifiers with a coding annotation.
func (v *Variant) TranscriptIDs() []string {
	ids := make([]string, 0, len(v.Coding))
	for id := range v.Coding {
		ids = append(ids, id)
	}
	return ids
}
