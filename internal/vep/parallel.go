package vep

import (
	"runtime"
	"sync"

	"github.com/variomics/var2prot/internal/variant"
	"github.com/variomics/var2prot/internal/vcf"
)

// WorkItem holds a parsed locus record ready for classification.
type WorkItem struct {
	Seq    int
	Line   int // source line number, for warnings
	Record *vcf.Record
}

// WorkResult holds the classification output for a single locus.
// Variant is nil for loci with no qualifying annotation.
type WorkResult struct {
	Seq     int
	Record  *vcf.Record
	Variant *variant.Variant
}

// ParallelBuild classifies work items using a pool of workers. Loci are
// independent once split off their raw line; the gene filter and consequence
// vocabulary are read-only, so no locking is needed.
// Results arrive in completion order; use OrderedCollect to consume them in
// sequence-number order. If workers is 0, runtime.NumCPU() is used.
func (b *Builder) ParallelBuild(items <-chan WorkItem, workers int) <-chan WorkResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan WorkResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for item := range items {
				results <- WorkResult{
					Seq:     item.Seq,
					Record:  item.Record,
					Variant: b.Build(item.Record, item.Line),
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// OrderedCollect calls fn for each result in sequence-number order.
// It buffers out-of-order results in a pending map and emits them
// as soon as the next expected sequence number is available.
// Blocks until the results channel is closed.
func OrderedCollect(results <-chan WorkResult, fn func(WorkResult) error) error {
	pending := make(map[int]WorkResult)
	nextSeq := 0

	for r := range results {
		pending[r.Seq] = r

		for {
			rr, ok := pending[nextSeq]
			if !ok {
				break
			}
			delete(pending, nextSeq)
			nextSeq++
			if err := fn(rr); err != nil {
				// Drain remaining results to unblock workers.
				for range results {
				}
				return err
			}
		}
	}

	return nil
}
