package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferLineColSingleLine(t *testing.T) {
	buf := New("t.wren", []byte("abc"))
	assert.EqualValues(t, 1, buf.LineAt(0))
	assert.EqualValues(t, 1, buf.LineAt(2))
	assert.EqualValues(t, 1, buf.ColumnAt(0))
	assert.EqualValues(t, 3, buf.ColumnAt(2))
	assert.Equal(t, "abc", buf.LineText(1))
	assert.Equal(t, "", buf.LineText(2))
}

func TestBufferLineColMultiLine(t *testing.T) {
	buf := New("t.wren", []byte("ab\ncd\ne"))
	// offsets: a=0 b=1 \n=2 c=3 d=4 \n=5 e=6
	assert.EqualValues(t, 1, buf.LineAt(0))
	assert.EqualValues(t, 1, buf.LineAt(2)) // the newline itself belongs to the line it terminates
	assert.EqualValues(t, 2, buf.LineAt(3))
	assert.EqualValues(t, 2, buf.LineAt(5))
	assert.EqualValues(t, 3, buf.LineAt(6))

	assert.Equal(t, "ab", buf.LineText(1))
	assert.Equal(t, "cd", buf.LineText(2))
	assert.Equal(t, "e", buf.LineText(3))

	assert.EqualValues(t, 1, buf.ColumnAt(3))
	assert.EqualValues(t, 2, buf.ColumnAt(4))
}

func TestBufferByteAndSlice(t *testing.T) {
	buf := New("t.wren", []byte("hello"))
	assert.Equal(t, byte('h'), buf.ByteAt(0))
	assert.Equal(t, byte(0), buf.ByteAt(100))
	assert.Equal(t, "ell", buf.Slice(1, 4))
	assert.EqualValues(t, 5, buf.Len())
}
