package variant

import (
	"strconv"
	"strings"
)

// CoordAbsent is the sentinel for a transcript or protein coordinate whose
// source field was empty or marked uncertain.
const CoordAbsent int64 = -1

// MutationSyntax holds the per-transcript coordinate record for one variant.
// Positions are zero-based; the annotation source reports them one-based.
type MutationSyntax struct {
	TranscriptID       string
	TranscriptPos      int64  // zero-based position in the transcript, CoordAbsent if unknown
	ProteinPos         int64  // zero-based position in the protein, CoordAbsent if unknown
	Annotation         string // the raw per-transcript annotation sub-string
	ExternalAnnotation string // secondary annotation, unused by this pipeline
	GeneID             string // owning gene identifier (HGNC cross-reference)
}

// ParseCoord converts a one-based annotation coordinate field to a zero-based
// position. Range values such as "15-20" use the lower bound. An empty field
// or one containing the uncertainty marker "?" yields CoordAbsent.
func ParseCoord(field string) int64 {
	if field == "" || strings.Contains(field, "?") {
		return CoordAbsent
	}
	if i := strings.IndexByte(field, '-'); i >= 0 {
		field = field[:i]
	}
	n, err := strconv.ParseInt(field, 10, 64)
	if err != nil || n < 1 {
		return CoordAbsent
	}
	return n - 1
}
