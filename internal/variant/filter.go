package variant

// Filter is a keep-predicate over variants: a variant is retained only if
// every filter in the chain returns true.
type Filter func(*Variant) bool

// RemoveSNPs drops single nucleotide polymorphisms.
func RemoveSNPs(v *Variant) bool {
	return v.Type != SNP
}

// RemoveIndels drops all insertion/deletion variants, frameshifts included.
func RemoveIndels(v *Variant) bool {
	return !v.Type.IsIndel()
}

// RemoveFrameshifts drops frameshift insertion/deletion variants only.
func RemoveFrameshifts(v *Variant) bool {
	return !v.Type.IsFrameshift()
}

// Apply runs the filter chain over vs and returns the retained variants.
// UNKNOWN-typed variants are always dropped, regardless of the chain.
func Apply(vs []*Variant, filters ...Filter) []*Variant {
	out := make([]*Variant, 0, len(vs))
next:
	for _, v := range vs {
		if v.Type == UNKNOWN {
			continue
		}
		for _, keep := range filters {
			if !keep(v) {
				continue next
			}
		}
		out = append(out, v)
	}
	return out
}
