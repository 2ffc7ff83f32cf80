// Package vep classifies VEP annotation blocks into normalized variants.
package vep

import "strings"

// Consequence types (Sequence Ontology terms) that may alter a protein
// sequence or its immediate regulatory context.
const (
	Consequence3PrimeUTR             = "3_prime_UTR_variant"
	Consequence5PrimeUTR             = "5_prime_UTR_variant"
	ConsequenceStartLost             = "start_lost"
	ConsequenceStopGained            = "stop_gained"
	ConsequenceFrameshiftVariant     = "frameshift_variant"
	ConsequenceInframeInsertion      = "inframe_insertion"
	ConsequenceInframeDeletion       = "inframe_deletion"
	ConsequenceMissenseVariant       = "missense_variant"
	ConsequenceProteinAltering       = "protein_altering_variant"
	ConsequenceSpliceRegion          = "splice_region_variant"
	ConsequenceIncompleteTerminal    = "incomplete_terminal_codon_variant"
	ConsequenceStopRetained          = "stop_retained_variant"
	ConsequenceSynonymousVariant     = "synonymous_variant"
	ConsequenceCodingSequenceVariant = "coding_sequence_variant"
)

// codingConsequences is the fixed vocabulary of coding-relevant consequence
// terms. Read-only after initialization; safe for concurrent use.
var codingConsequences = map[string]struct{}{
	Consequence3PrimeUTR:             {},
	Consequence5PrimeUTR:             {},
	ConsequenceStartLost:             {},
	ConsequenceStopGained:            {},
	ConsequenceFrameshiftVariant:     {},
	ConsequenceInframeInsertion:      {},
	ConsequenceInframeDeletion:       {},
	ConsequenceMissenseVariant:       {},
	ConsequenceProteinAltering:       {},
	ConsequenceSpliceRegion:          {},
	ConsequenceIncompleteTerminal:    {},
	ConsequenceStopRetained:          {},
	ConsequenceSynonymousVariant:     {},
	ConsequenceCodingSequenceVariant: {},
}

// SplitConsequences splits an ampersand-joined consequence field into its
// individual terms (e.g. "missense_variant&splice_region_variant").
func SplitConsequences(field string) []string {
	return strings.Split(field, "&")
}

// IsCodingRelevant returns true if any term of the ampersand-joined
// consequence field is a member of the coding vocabulary.
func IsCodingRelevant(field string) bool {
	for _, term := range SplitConsequences(field) {
		if _, ok := codingConsequences[term]; ok {
			return true
		}
	}
	return false
}

// IsSynonymous returns true if any term of the ampersand-joined consequence
// field is synonymous_variant.
func IsSynonymous(field string) bool {
	for _, term := range SplitConsequences(field) {
		if term == ConsequenceSynonymousVariant {
			return true
		}
	}
	return false
}
