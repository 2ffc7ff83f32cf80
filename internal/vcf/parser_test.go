package vcf

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParserSingleRecord(t *testing.T) {
	parser, err := NewParser(filepath.Join("testdata", "vep_snp.vcf"))
	require.NoError(t, err)
	defer parser.Close()

	rec, err := parser.Next()
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, "1", rec.Chrom)
	assert.Equal(t, int64(100), rec.Pos)
	assert.Equal(t, "rs1", rec.ID)
	assert.Equal(t, "A", rec.Ref)
	assert.Equal(t, "G", rec.Alt)
	assert.Equal(t, "PASS", rec.Filter)
	assert.True(t, strings.HasPrefix(rec.Info, "G|missense_variant"), "CSQ key is stripped")

	// Header lines are skipped silently, so the data line is line 4.
	assert.Equal(t, 4, parser.LineNumber())

	rec, err = parser.Next()
	require.NoError(t, err)
	assert.Nil(t, rec, "no more records")
}

func TestParserMultipleRecords(t *testing.T) {
	parser, err := NewParser(filepath.Join("testdata", "multi_variant.vcf"))
	require.NoError(t, err)
	defer parser.Close()

	var recs []*Record
	for {
		rec, err := parser.Next()
		require.NoError(t, err)
		if rec == nil {
			break
		}
		recs = append(recs, rec)
	}

	// Blank lines between records are skipped.
	require.Len(t, recs, 3)

	assert.Equal(t, "rs1", recs[0].ID)

	// Deletion reported with an empty alt allele.
	assert.Equal(t, "ATG", recs[1].Ref)
	assert.Equal(t, "", recs[1].Alt)

	// CSQ value extracted from between other INFO entries.
	assert.True(t, strings.HasPrefix(recs[2].Info, "A|missense_variant"))
	assert.False(t, strings.Contains(recs[2].Info, "AF=0.5"))
}

func TestParserGzip(t *testing.T) {
	parser, err := NewParser(filepath.Join("testdata", "vep_snp_gz.vcf.gz"))
	require.NoError(t, err)
	defer parser.Close()

	rec, err := parser.Next()
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, int64(100), rec.Pos)
}

func TestParserMalformedLine(t *testing.T) {
	parser, err := NewParser(filepath.Join("testdata", "malformed.vcf"))
	require.NoError(t, err)
	defer parser.Close()

	_, err = parser.Next()
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Line)
	assert.Contains(t, parseErr.Message, "8 columns")
}

func TestParserFromReader(t *testing.T) {
	input := "# comment\n" +
		"1\t100\trs1\tA\tG\t.\tPASS\tG|missense_variant|x\n"

	parser := NewParserFromReader(strings.NewReader(input))

	rec, err := parser.Next()
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "rs1", rec.ID)

	rec, err = parser.Next()
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestParserInvalidPosition(t *testing.T) {
	parser := NewParserFromReader(strings.NewReader("1\tabc\trs1\tA\tG\t.\tPASS\tx\n"))

	_, err := parser.Next()
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Message, "invalid position")
}

func TestParseError(t *testing.T) {
	err := &ParseError{Line: 42, Message: "expected at least 8 columns, found 7"}
	assert.Equal(t, "vcf parse error at line 42: expected at least 8 columns, found 7", err.Error())
}

func TestAnnotationBlocks(t *testing.T) {
	rec := &Record{Info: "A|missense_variant|x,T|intron_variant|y"}
	blocks := rec.AnnotationBlocks()
	require.Len(t, blocks, 2)
	assert.Equal(t, "A|missense_variant|x", blocks[0])
	assert.Equal(t, "T|intron_variant|y", blocks[1])

	empty := &Record{}
	assert.Nil(t, empty.AnnotationBlocks())
}

func TestExtractAnnotationBlock(t *testing.T) {
	assert.Equal(t, "A|x", extractAnnotationBlock("DP=10;CSQ=A|x;AF=0.5"))
	assert.Equal(t, "A|x", extractAnnotationBlock("ANN=A|x"))
	assert.Equal(t, "A|x,B|y", extractAnnotationBlock("A|x,B|y"))
}
