// Package source provides byte-indexed, random-access views over Wren
// source text, with line/column resolution for diagnostic reporting.
package source

import (
	"fmt"

	"fortio.org/safecast"
)

// Buffer is an immutable byte-indexed view of a single UTF-8 source file.
//
// starts holds the byte offset at which each line begins: starts[0] is
// always 0, and every '\n' byte at offset i appends i+1 (the offset of the
// following line's first byte). Lines are 1-based; line L begins at
// starts[L-1].
type Buffer struct {
	path    string
	content []byte
	starts  []uint32
}

// New creates a Buffer over content for diagnostics reported against path.
func New(path string, content []byte) *Buffer {
	return &Buffer{
		path:    path,
		content: content,
		starts:  buildLineStarts(content),
	}
}

// Path returns the source path the buffer was constructed with.
func (b *Buffer) Path() string { return b.path }

// Len returns the byte length of the buffer.
func (b *Buffer) Len() uint32 {
	n, err := safecast.Conv[uint32](len(b.content))
	if err != nil {
		panic(fmt.Errorf("source: content length overflow: %w", err))
	}
	return n
}

// ByteAt returns the byte at offset, or 0 if offset is out of range.
func (b *Buffer) ByteAt(offset uint32) byte {
	if offset >= b.Len() {
		return 0
	}
	return b.content[offset]
}

// Slice returns the substring of the buffer in [start, end).
func (b *Buffer) Slice(start, end uint32) string {
	if end > b.Len() {
		end = b.Len()
	}
	if start > end {
		start = end
	}
	return string(b.content[start:end])
}

// LineAt returns the 1-based line number containing offset: the smallest
// 0-based index i such that offset < starts[i], which equals that line's
// number; if no such index exists, the buffer's last line is returned.
func (b *Buffer) LineAt(offset uint32) uint32 {
	lo, hi := 0, len(b.starts)
	for lo < hi {
		mid := (lo + hi) / 2
		if offset < b.starts[mid] {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	if lo == 0 {
		return 1
	}
	line, err := safecast.Conv[uint32](lo)
	if err != nil {
		panic(fmt.Errorf("source: line index overflow: %w", err))
	}
	return line
}

// ColumnAt returns the 1-based column of offset: the count of bytes since
// the start of offset's line, plus one.
func (b *Buffer) ColumnAt(offset uint32) uint32 {
	lineStart := b.lineStartOffset(b.LineAt(offset))
	if offset < lineStart {
		offset = lineStart
	}
	return offset - lineStart + 1
}

// LineText returns the text of the given 1-based line, without its
// terminating newline. Returns "" for an out-of-range line.
func (b *Buffer) LineText(line uint32) string {
	if line == 0 || int(line) > len(b.starts) {
		return ""
	}
	start := b.lineStartOffset(line)
	end := b.lineEndOffset(line)
	return b.Slice(start, end)
}

// lineStartOffset returns the byte offset where the given 1-based line begins.
func (b *Buffer) lineStartOffset(line uint32) uint32 {
	idx := int(line) - 1
	if idx < 0 {
		return 0
	}
	if idx >= len(b.starts) {
		return b.Len()
	}
	return b.starts[idx]
}

// lineEndOffset returns the byte offset just past the given 1-based line's
// content (i.e. at its terminating newline, or EOF for the last line).
func (b *Buffer) lineEndOffset(line uint32) uint32 {
	end := b.lineStartOffset(line + 1)
	if end == 0 {
		return b.Len()
	}
	// end points one past the line's newline; the newline itself is not
	// part of the line's text.
	if end > 0 && end <= b.Len() && b.ByteAt(end-1) == '\n' {
		return end - 1
	}
	return end
}

func buildLineStarts(content []byte) []uint32 {
	starts := make([]uint32, 1, 16)
	starts[0] = 0
	for i, c := range content {
		if c == '\n' {
			off, err := safecast.Conv[uint32](i + 1)
			if err != nil {
				panic(fmt.Errorf("source: offset overflow: %w", err))
			}
			starts = append(starts, off)
		}
	}
	return starts
}
