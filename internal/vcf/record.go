// Package vcf parses VEP-annotated VCF files into locus records.
package vcf

import "strings"

// Record is one genomic locus line from a VEP-annotated VCF file.
type Record struct {
	Chrom  string // Chromosome name (e.g., "12", "chr12")
	Pos    int64  // 1-based genomic position
	ID     string // Variant identifier (e.g., rs ID, "." if absent)
	Ref    string // Reference allele
	Alt    string // Alternate allele
	Filter string // Filter status (PASS or filter name); carried but not acted on
	Info   string // Raw annotation block from the INFO column
}

// AnnotationBlocks splits the record's annotation block into one sub-string
// per affected transcript/feature. VEP packs all annotations into a single
// comma-separated INFO value.
func (r *Record) AnnotationBlocks() []string {
	if r.Info == "" {
		return nil
	}
	return strings.Split(r.Info, ",")
}
