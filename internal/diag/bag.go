package diag

import (
	"fmt"
	"sort"
)

// Bag accumulates diagnostics in traversal order and provides optional
// sorting/dedup passes. The analyzer and the CLI call neither, so
// diagnostics are displayed in pipeline order.
type Bag struct {
	items []Diagnostic
	max   int
}

// NewBag creates a Bag capped at max diagnostics. A non-positive max
// means unbounded.
func NewBag(max int) *Bag {
	initial := max
	if initial <= 0 {
		initial = 16
	}
	return &Bag{items: make([]Diagnostic, 0, initial), max: max}
}

// Add appends d, respecting the bag's cap. Returns false if d was
// dropped because the cap was already reached.
func (b *Bag) Add(d Diagnostic) bool {
	if b.max > 0 && len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// HasErrors reports whether any diagnostic has error severity.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity == SevError {
			return true
		}
	}
	return false
}

// Len returns the number of accumulated diagnostics.
func (b *Bag) Len() int { return len(b.items) }

// Items returns the accumulated diagnostics. The caller must not
// mutate the returned slice; it aliases the bag's backing array.
func (b *Bag) Items() []Diagnostic { return b.items }

// Merge appends other's diagnostics onto b, raising b's cap if needed
// to hold them all.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	total := len(b.items) + len(other.items)
	if b.max > 0 && total > b.max {
		b.max = total
	}
	b.items = append(b.items, other.items...)
}

// Sort orders diagnostics by start offset, then end offset, then
// severity (errors first), then code, for deterministic display.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End() != dj.Primary.End() {
			return di.Primary.End() < dj.Primary.End()
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}

// Dedup removes diagnostics that repeat an earlier one's code and span.
func (b *Bag) Dedup() {
	seen := make(map[string]bool, len(b.items))
	kept := make([]Diagnostic, 0, len(b.items))
	for _, d := range b.items {
		key := fmt.Sprintf("%s:%d:%d", d.Code, d.Primary.Start, d.Primary.Length)
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, d)
	}
	b.items = kept
}
