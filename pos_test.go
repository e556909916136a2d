package firescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeContains(t *testing.T) {
	outer := NewRange(0, 10)
	assert.True(t, outer.Contains(NewRange(2, 5)))
	assert.True(t, outer.Contains(NewRange(0, 10)))
	assert.False(t, outer.Contains(NewRange(0, 11)))
	assert.False(t, outer.Contains(NewRange(-1, 5)))
}

func TestLineIndexLineColumn(t *testing.T) {
	src := "abc\ndef\nghi"
	li := NewLineIndex([]byte(src))

	line, col := li.LineColumn(0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	line, col = li.LineColumn(4) // 'd'
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)

	line, col = li.LineColumn(9) // 'h'
	assert.Equal(t, 3, line)
	assert.Equal(t, 2, col)
}

func TestLineIndexClampsOutOfRangeCursor(t *testing.T) {
	li := NewLineIndex([]byte("abc"))
	line, col := li.LineColumn(1000)
	assert.Equal(t, 1, line)
	assert.Equal(t, 4, col)

	line, col = li.LineColumn(-5)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)
}
