package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-spectral/spectral/array"
)

func TestColumnsKeepInsertionOrder(t *testing.T) {
	c := NewColumns()
	c.Set("wlen", array.Scalar(1))
	c.Set("flux", array.Scalar(2))
	c.Set("ivar", array.Scalar(3))
	c.Set("wlen", array.Scalar(4))

	assert.Equal(t, []string{"wlen", "flux", "ivar"}, c.Names())
	assert.Equal(t, 3, c.Len())

	got, ok := c.Get("wlen")
	require.True(t, ok)
	assert.Equal(t, 4.0, got.Data()[0])

	var seen []string
	for name := range c.All() {
		seen = append(seen, name)
		if name == "flux" {
			break
		}
	}
	assert.Equal(t, []string{"wlen", "flux"}, seen)
}

func TestZeroColumnsUsable(t *testing.T) {
	var c Columns
	assert.False(t, c.Has("x"))
	c.Set("x", array.Scalar(1))
	assert.True(t, c.Has("x"))
}

func TestNewTableRowCount(t *testing.T) {
	c := NewColumns()
	c.Set("wlen", array.FromSlice([]float64{1, 2, 3}))
	c.Set("flux", array.Full(array.Shape{3, 2}, 1))

	tbl, err := NewTable(c)
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Rows())
	assert.Equal(t, KindTable, tbl.Kind())

	c.Set("ivar", array.FromSlice([]float64{1, 2}))
	_, err = NewTable(c)
	assert.ErrorIs(t, err, ErrRowMismatch)
}

func TestNewTableRejectsScalarColumn(t *testing.T) {
	c := NewColumns()
	c.Set("z", array.Scalar(0.5))
	_, err := NewTable(c)
	assert.Error(t, err)
}

func TestPrepareReadOnlyMixesInputs(t *testing.T) {
	tc := NewColumns()
	tc.Set("wlen", array.FromSlice([]float64{1, 2}))
	tbl, err := NewTable(tc)
	require.NoError(t, err)

	flux := array.FromSlice([]float64{3, 4})
	cols, desc, err := Prepare(ReadOnly, Col("flux", flux), tbl)
	require.NoError(t, err)

	assert.Equal(t, []string{"flux", "wlen"}, cols.Names())
	assert.Equal(t, KindTable, desc.Kind)
	assert.Equal(t, 2, desc.Rows)
	assert.Equal(t, []string{"flux", "wlen"}, desc.Names)

	got, _ := cols.Get("flux")
	assert.Same(t, flux, got)
}

func TestPrepareColumnsOnlyIsDict(t *testing.T) {
	_, desc, err := Prepare(ReadOnly, Col("a", array.Scalar(1)), Col("b", array.Scalar(2)))
	require.NoError(t, err)
	assert.Equal(t, KindDict, desc.Kind)
}

func TestPrepareDuplicateColumn(t *testing.T) {
	_, _, err := Prepare(ReadOnly, Col("flux", array.Scalar(1)), Col("flux", array.Scalar(2)))
	assert.ErrorIs(t, err, ErrDuplicateColumn)
}

func TestPrepareInPlace(t *testing.T) {
	d := NewDict(nil)
	wlen := array.FromSlice([]float64{1, 2})
	d.Set("wlen", wlen)

	cols, desc, err := Prepare(InPlace, d)
	require.NoError(t, err)
	assert.Equal(t, KindDict, desc.Kind)
	got, ok := cols.Get("wlen")
	require.True(t, ok)
	assert.Same(t, wlen, got)

	_, _, err = Prepare(InPlace)
	assert.ErrorIs(t, err, ErrInPlaceArity)
	_, _, err = Prepare(InPlace, d, d)
	assert.ErrorIs(t, err, ErrInPlaceArity)
}

func TestLike(t *testing.T) {
	c := NewColumns()
	c.Set("wlen", array.FromSlice([]float64{1, 2}))

	out, err := Like(Descriptor{Kind: KindTable}, c)
	require.NoError(t, err)
	assert.IsType(t, &Table{}, out)

	out, err = Like(Descriptor{Kind: KindDict}, c)
	require.NoError(t, err)
	assert.IsType(t, &Dict{}, out)
	assert.Equal(t, []string{"wlen"}, out.Columns().Names())

	_, err = Like(Descriptor{Kind: Kind(9)}, c)
	assert.Error(t, err)
}
