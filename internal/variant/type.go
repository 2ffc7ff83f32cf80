// Package variant defines the normalized variant model produced by the
// annotation parser and consumed by transcript/protein generation.
package variant

// Type classifies a variant by its reference/alternate allele lengths.
type Type int

const (
	// SNP is a single nucleotide polymorphism (|ref|=1, |alt|=1).
	SNP Type = iota
	// INS is an in-frame insertion (|ref|=0, |alt| a multiple of 3).
	INS
	// DEL is an in-frame deletion (|alt|=0, |ref| a multiple of 3).
	DEL
	// FSINS is a frameshift insertion (|ref|=0, |alt| not a multiple of 3).
	FSINS
	// FSDEL is a frameshift deletion (|alt|=0, |ref| not a multiple of 3).
	FSDEL
	// UNKNOWN is any allele combination not covered above.
	UNKNOWN
)

// String returns the short name of the variant type.
func (t Type) String() string {
	switch t {
	case SNP:
		return "SNP"
	case INS:
		return "INS"
	case DEL:
		return "DEL"
	case FSINS:
		return "FSINS"
	case FSDEL:
		return "FSDEL"
	default:
		return "UNKNOWN"
	}
}

// IsIndel returns true for insertion and deletion types, frameshift included.
func (t Type) IsIndel() bool {
	return t == INS || t == DEL || t == FSINS || t == FSDEL
}

// IsFrameshift returns true for frameshift insertion/deletion types.
func (t Type) IsFrameshift() bool {
	return t == FSINS || t == FSDEL
}

// Classify determines the variant type from allele string lengths alone.
// Deletions are reported with an empty alt allele and insertions with an
// empty ref allele, as written by the annotation source.
func Classify(ref, alt string) Type {
	switch {
	case len(ref) == 1 && len(alt) == 1:
		return SNP
	case len(ref) > 0 && len(alt) == 0:
		if len(ref)%3 == 0 {
			return DEL
		}
		return FSDEL
	case len(ref) == 0 && len(alt) > 0:
		if len(alt)%3 == 0 {
			return INS
		}
		return FSINS
	default:
		return UNKNOWN
	}
}
