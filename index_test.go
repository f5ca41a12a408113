package rope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtNegativeIndices(t *testing.T) {
	r := New("abc").Concat(New("def"))

	b, err := r.At(-1)
	require.NoError(t, err)
	assert.Equal(t, byte('f'), b)

	b, err = r.At(-6)
	require.NoError(t, err)
	assert.Equal(t, byte('a'), b)
}

func TestAtOutOfRange(t *testing.T) {
	r := New("abc")

	_, err := r.At(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Contains(t, err.Error(), "3")

	_, err = r.At(-4)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = Empty().At(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = r.Index(99)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSliceClamping(t *testing.T) {
	r := New("hello world")

	assert.Equal(t, "hello", r.Slice(0, 5).String())
	assert.Equal(t, "world", r.Slice(-5, r.Len()).String())
	assert.Equal(t, "hello world", r.Slice(-100, 100).String())
	assert.Equal(t, "", r.Slice(7, 3).String())
	assert.Equal(t, "", r.Slice(11, 11).String())
	assert.Equal(t, "orl", r.Slice(-4, -1).String())
}

func TestSliceSharesStructure(t *testing.T) {
	r := New("hello")
	s := r.Slice(0, 5)
	assert.Equal(t, r.Root(), s.Root(), "full-range slice reuses the tree")
}

func TestSliceStep(t *testing.T) {
	r := New("abcdef")

	s, err := r.SliceStep(1, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, "bcd", s.String())

	_, err = r.SliceStep(0, 6, 2)
	assert.ErrorIs(t, err, ErrNotImplemented)

	_, err = r.SliceStep(0, 6, -1)
	assert.ErrorIs(t, err, ErrNotImplemented)

	_, err = r.SliceStep(0, 6, 0)
	assert.ErrorIs(t, err, ErrZeroStep)
}
