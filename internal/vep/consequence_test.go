package vep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCodingRelevant(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		expected bool
	}{
		{"missense", "missense_variant", true},
		{"synonymous", "synonymous_variant", true},
		{"utr", "3_prime_UTR_variant", true},
		{"frameshift", "frameshift_variant", true},
		{"intron", "intron_variant", false},
		{"intergenic", "intergenic_variant", false},
		{"upstream", "upstream_gene_variant", false},
		{"coding among non-coding", "intron_variant&splice_region_variant", true},
		{"all non-coding", "intron_variant&non_coding_transcript_variant", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsCodingRelevant(tt.field))
		})
	}
}

func TestIsSynonymous(t *testing.T) {
	assert.True(t, IsSynonymous("synonymous_variant"))
	assert.True(t, IsSynonymous("splice_region_variant&synonymous_variant"))
	assert.False(t, IsSynonymous("missense_variant"))
	// Substring matches must not count.
	assert.False(t, IsSynonymous("start_retained_variant&stop_retained_variant"))
}

func TestSplitConsequences(t *testing.T) {
	assert.Equal(t, []string{"missense_variant"}, SplitConsequences("missense_variant"))
	assert.Equal(t,
		[]string{"missense_variant", "splice_region_variant"},
		SplitConsequences("missense_variant&splice_region_variant"))
}

func TestParseCSQ(t *testing.T) {
	sub := makeCSQ("missense_variant", "Transcript", "ENST1", "50", "51", "HGNC:1")

	ann, err := parseCSQ(sub)
	assert.NoError(t, err)
	assert.Equal(t, "missense_variant", ann.Consequence)
	assert.Equal(t, "GENEA", ann.GeneSymbol)
	assert.Equal(t, "ENSG1", ann.GeneID)
	assert.Equal(t, "Transcript", ann.FeatureType)
	assert.Equal(t, "ENST1", ann.TranscriptID)
	assert.Equal(t, "50", ann.TranscriptPos)
	assert.Equal(t, "51", ann.ProteinPos)
	assert.Equal(t, "A/T", ann.AminoAcids)
	assert.Equal(t, "HGNC:1", ann.HGNCID)
	assert.Equal(t, sub, ann.Raw)
}

func TestParseCSQTooFewFields(t *testing.T) {
	_, err := parseCSQ("G|missense_variant|MODERATE")
	assert.Error(t, err)

	// Positional block present but cross-reference index missing.
	_, err = parseCSQ("G|missense_variant|MODERATE|GENEA|ENSG1|Transcript|ENST1|||||||50|51|A/T")
	assert.Error(t, err)
}
