package vep

import (
	"fmt"
	"strings"
)

// Fixed positions of the consumed fields within a pipe-delimited VEP
// annotation sub-string. The schema is positional: the first block of fields
// is consumed by index, and the HGNC cross-reference sits past the block at
// its own fixed index.
const (
	fieldAllele        = 0
	fieldConsequence   = 1
	fieldImpact        = 2
	fieldGeneSymbol    = 3
	fieldGeneID        = 4
	fieldFeatureType   = 5
	fieldTranscriptID  = 6
	fieldTranscriptPos = 13
	fieldProteinPos    = 14
	fieldAminoAcids    = 15

	fieldHGNCID = 22

	// minPositionalFields covers the positional block through Amino_acids.
	minPositionalFields = 16
	// minFields covers the full sub-string including the HGNC cross-reference.
	minFields = 23
)

// FeatureTypeTranscript is the only feature type that contributes mutation
// syntax; regulatory and motif features are ignored.
const FeatureTypeTranscript = "Transcript"

// csqAnnotation is the decomposed form of one annotation sub-string.
type csqAnnotation struct {
	Allele        string
	Consequence   string // ampersand-joined consequence terms
	Impact        string
	GeneSymbol    string
	GeneID        string
	FeatureType   string
	TranscriptID  string
	TranscriptPos string // raw one-based coordinate field
	ProteinPos    string // raw one-based coordinate field
	AminoAcids    string
	HGNCID        string
	Raw           string // the full sub-string as read
}

// parseCSQ decomposes one pipe-delimited annotation sub-string. The first
// parse takes the bounded positional block; the HGNC cross-reference is read
// in a second indexed access, mirroring the source format's irregular schema.
func parseCSQ(sub string) (*csqAnnotation, error) {
	fields := strings.Split(sub, "|")
	if len(fields) < minPositionalFields {
		return nil, fmt.Errorf("expected at least %d pipe-delimited fields, found %d", minPositionalFields, len(fields))
	}

	ann := &csqAnnotation{
		Allele:        fields[fieldAllele],
		Consequence:   fields[fieldConsequence],
		Impact:        fields[fieldImpact],
		GeneSymbol:    fields[fieldGeneSymbol],
		GeneID:        fields[fieldGeneID],
		FeatureType:   fields[fieldFeatureType],
		TranscriptID:  fields[fieldTranscriptID],
		TranscriptPos: fields[fieldTranscriptPos],
		ProteinPos:    fields[fieldProteinPos],
		AminoAcids:    fields[fieldAminoAcids],
		Raw:           sub,
	}

	if len(fields) <= fieldHGNCID {
		return nil, fmt.Errorf("expected at least %d pipe-delimited fields, found %d", minFields, len(fields))
	}
	ann.HGNCID = fields[fieldHGNCID]

	return ann, nil
}
