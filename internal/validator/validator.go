// Package validator checks puzzles by fanning one goroutine out per
// row, column, and subgrid.
package validator

import (
	"context"
	"errors"
	"sync"

	"svw.info/sudocheck/internal/domain"
)

// ErrNoGrid is returned when Validate is handed nothing to check.
var ErrNoGrid = errors.New("validator: nil or empty grid")

// Concurrent runs every unit check in its own goroutine and joins on
// all of them before reading a single verdict.
type Concurrent struct{}

func New() *Concurrent { return &Concurrent{} }

// Validate checks every row, column, and (for square sizes) subgrid of
// g. Each checker writes only its own slot of the result slice; the
// join makes the slots safe to read and the outcome independent of
// goroutine scheduling. The grid itself is never written.
func (v *Concurrent) Validate(ctx context.Context, g *domain.Grid) (domain.Report, error) {
	if g == nil || g.Size() < 1 {
		return domain.Report{}, ErrNoGrid
	}
	if err := ctx.Err(); err != nil {
		return domain.Report{}, err
	}

	units := unitsFor(g.Size())
	results := make([]domain.UnitResult, len(units))
	var wg sync.WaitGroup
	for i := range units {
		wg.Add(1)
		go func(slot *domain.UnitResult, u domain.Unit) {
			defer wg.Done()
			*slot = checkUnit(g, u)
		}(&results[i], units[i])
	}
	wg.Wait()

	rep := domain.Report{Complete: true, Valid: true, Units: results}
	for i := range results {
		if results[i].Duplicate {
			rep.Valid = false
		}
		if results[i].Incomplete {
			rep.Complete = false
		}
	}
	return rep, nil
}
