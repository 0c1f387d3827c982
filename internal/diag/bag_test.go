package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBagSortOrdersByStartThenSeverity(t *testing.T) {
	b := NewBag(0)
	b.Add(NewWarning(CodeTypeMismatch, Span{Start: 10}, "later warning"))
	b.Add(NewError(CodeParseError, Span{Start: 5}, "earlier error"))
	b.Add(NewError(CodeUndefinedVariable, Span{Start: 10}, "later error"))
	b.Sort()

	items := b.Items()
	assert.Equal(t, "earlier error", items[0].Message)
	assert.Equal(t, "later error", items[1].Message)
	assert.Equal(t, "later warning", items[2].Message)
}

func TestBagHasErrors(t *testing.T) {
	b := NewBag(0)
	assert.False(t, b.HasErrors())
	b.Add(NewWarning(CodeTypeMismatch, Span{}, "warn"))
	assert.False(t, b.HasErrors())
	b.Add(NewError(CodeParseError, Span{}, "err"))
	assert.True(t, b.HasErrors())
}

func TestBagAddRespectsMax(t *testing.T) {
	b := NewBag(1)
	assert.True(t, b.Add(NewError(CodeParseError, Span{}, "first")))
	assert.False(t, b.Add(NewError(CodeParseError, Span{}, "second")))
	assert.Equal(t, 1, b.Len())
}

func TestBagDedup(t *testing.T) {
	b := NewBag(0)
	b.Add(NewError(CodeParseError, Span{Start: 1, Length: 2}, "a"))
	b.Add(NewError(CodeParseError, Span{Start: 1, Length: 2}, "a"))
	b.Dedup()
	assert.Equal(t, 1, b.Len())
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(0)
	r := BagReporter{Bag: bag}
	ReportError(r, CodeParseError, Span{Start: 1}, "boom").Emit()
	ReportError(r, CodeParseError, Span{Start: 1}, "boom").Diagnostic() // not emitted
	assert.Equal(t, 1, bag.Len())
}
