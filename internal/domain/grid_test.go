package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGridBounds(t *testing.T) {
	for _, size := range []int{1, 4, 9, 16, MaxSize} {
		g, err := NewGrid(size)
		require.NoError(t, err)
		require.Equal(t, size, g.Size())
		require.Equal(t, size*size, g.EmptyCells())
	}
	for _, size := range []int{-3, 0, MaxSize + 1} {
		_, err := NewGrid(size)
		require.ErrorIs(t, err, ErrSize)
	}
}

func TestFromRows(t *testing.T) {
	g, err := FromRows([][]int{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 3, 4, 1},
		{4, 1, 2, 3},
	})
	require.NoError(t, err)
	require.Equal(t, 4, g.Size())
	require.Equal(t, 3, g.At(1, 0))
	require.True(t, g.Filled())
}

func TestFromRowsRagged(t *testing.T) {
	_, err := FromRows([][]int{
		{1, 2},
		{2, 1, 3},
	})
	require.ErrorIs(t, err, ErrSize)
}

func TestFromRowsBadValue(t *testing.T) {
	_, err := FromRows([][]int{
		{1, 2},
		{2, 5},
	})
	require.ErrorIs(t, err, ErrValue)

	_, err = FromRows([][]int{
		{1, -1},
		{2, 1},
	})
	require.ErrorIs(t, err, ErrValue)
}

func TestSetChecked(t *testing.T) {
	g, err := NewGrid(4)
	require.NoError(t, err)

	require.NoError(t, g.SetChecked(0, 0, 4))
	require.Equal(t, 4, g.At(0, 0))

	require.ErrorIs(t, g.SetChecked(4, 0, 1), ErrPosition)
	require.ErrorIs(t, g.SetChecked(0, -1, 1), ErrPosition)
	require.ErrorIs(t, g.SetChecked(0, 0, 5), ErrValue)
}

func TestRowsAndCloneAreCopies(t *testing.T) {
	g, err := FromRows([][]int{
		{1, 2},
		{2, 1},
	})
	require.NoError(t, err)

	rows := g.Rows()
	rows[0][0] = 9
	require.Equal(t, 1, g.At(0, 0))

	cl := g.Clone()
	cl.Set(0, 0, 2)
	require.Equal(t, 1, g.At(0, 0))
	require.Equal(t, 2, cl.At(0, 0))
}

func TestFilledAndEmptyCells(t *testing.T) {
	g, err := FromRows([][]int{
		{1, 0},
		{0, 1},
	})
	require.NoError(t, err)
	require.False(t, g.Filled())
	require.Equal(t, 2, g.EmptyCells())

	g.Set(0, 1, 2)
	g.Set(1, 0, 2)
	require.True(t, g.Filled())
	require.Equal(t, 0, g.EmptyCells())
}

func TestUnitKindJSON(t *testing.T) {
	b, err := json.Marshal(UnitResult{
		Unit:      Unit{Kind: UnitColumn, Col: 3},
		Duplicate: true,
	})
	require.NoError(t, err)
	require.JSONEq(t, `{"kind":"column","row":0,"col":3,"duplicate":true}`, string(b))

	var k UnitKind
	require.NoError(t, json.Unmarshal([]byte(`"subgrid"`), &k))
	require.Equal(t, UnitSubgrid, k)
	require.Error(t, json.Unmarshal([]byte(`"diagonal"`), &k))
}

func TestUnitString(t *testing.T) {
	require.Equal(t, "row 3", Unit{Kind: UnitRow, Row: 2}.String())
	require.Equal(t, "column 1", Unit{Kind: UnitColumn, Col: 0}.String())
	require.Equal(t, "subgrid at (4,7)", Unit{Kind: UnitSubgrid, Row: 3, Col: 6}.String())
}

func TestReportFlagged(t *testing.T) {
	rep := Report{
		Complete: false,
		Valid:    false,
		Units: []UnitResult{
			{Unit: Unit{Kind: UnitRow, Row: 0}},
			{Unit: Unit{Kind: UnitRow, Row: 1}, Duplicate: true},
			{Unit: Unit{Kind: UnitColumn, Col: 2}, Incomplete: true},
		},
	}
	flagged := rep.Flagged()
	require.Len(t, flagged, 2)
	require.True(t, flagged[0].Duplicate)
	require.True(t, flagged[1].Incomplete)
}

func TestPuzzleGrid(t *testing.T) {
	p := &Puzzle{
		Size: 2,
		Rows: [][]int{{1, 2}, {2, 1}},
	}
	g, err := p.Grid()
	require.NoError(t, err)
	require.Equal(t, 2, g.Size())

	p.Size = 3
	_, err = p.Grid()
	require.ErrorIs(t, err, ErrSize)
}
