// Package filler writes values into blank cells that admit exactly one
// candidate under the row and column constraints.
package filler

import (
	"context"
	"errors"

	"svw.info/sudocheck/internal/domain"
)

// DefaultPasses bounds how many sweeps Fill runs when the caller does
// not choose a limit.
const DefaultPasses = 5

// ErrNoGrid is returned when Fill is handed nothing to fill.
var ErrNoGrid = errors.New("filler: nil or empty grid")

// SingleCandidate fills cells whose row and column peers rule out all
// values but one. Subgrid peers are not consulted.
type SingleCandidate struct{}

func New() *SingleCandidate { return &SingleCandidate{} }

// Fill sweeps g in row-major order up to passes times, writing sole
// candidates in place. A value written early in a pass narrows the
// candidates of cells visited later in the same pass. passes < 1
// selects DefaultPasses; a sweep that fills nothing ends the run.
func (f *SingleCandidate) Fill(ctx context.Context, g *domain.Grid, passes int) (domain.FillResult, error) {
	if g == nil || g.Size() < 1 {
		return domain.FillResult{}, ErrNoGrid
	}
	if passes < 1 {
		passes = DefaultPasses
	}
	var res domain.FillResult
	for p := 0; p < passes; p++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		filled := sweep(g)
		res.Passes++
		res.Filled += filled
		if filled == 0 {
			break
		}
	}
	return res, nil
}

// sweep visits every blank cell once and fills those with exactly one
// candidate left.
func sweep(g *domain.Grid) int {
	n := g.Size()
	filled := 0
	candidates := make([]bool, n+1)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if g.At(row, col) != 0 {
				continue
			}
			for v := 1; v <= n; v++ {
				candidates[v] = true
			}
			for i := 0; i < n; i++ {
				if v := g.At(row, i); v > 0 {
					candidates[v] = false
				}
				if v := g.At(i, col); v > 0 {
					candidates[v] = false
				}
			}
			count, last := 0, 0
			for v := 1; v <= n; v++ {
				if candidates[v] {
					count++
					last = v
				}
			}
			if count == 1 {
				g.Set(row, col, last)
				filled++
			}
		}
	}
	return filled
}
