// Package output serializes generated proteins.
package output

import (
	"bufio"
	"io"
	"strings"

	"github.com/variomics/var2prot/internal/generate"
)

// FASTAWriter writes one FASTA record per protein: a header line carrying
// the transcript identifier and the constituent variant identifiers,
// followed by the protein sequence.
type FASTAWriter struct {
	w *bufio.Writer
}

// NewFASTAWriter creates a new FASTA writer.
func NewFASTAWriter(w io.Writer) *FASTAWriter {
	return &FASTAWriter{w: bufio.NewWriter(w)}
}

// Write writes a single protein record.
func (fw *FASTAWriter) Write(p *generate.Protein) error {
	ids := make([]string, len(p.Variants))
	for i, v := range p.Variants {
		ids[i] = v.ID
	}

	if _, err := fw.w.WriteString(">" + p.TranscriptID + "|" + strings.Join(ids, ",") + "_var_\n"); err != nil {
		return err
	}
	_, err := fw.w.WriteString(p.Sequence + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (fw *FASTAWriter) Flush() error {
	return fw.w.Flush()
}
