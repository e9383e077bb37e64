// Package ports declares the interfaces the use cases are wired with.
package ports

import (
	"context"

	"svw.info/sudocheck/internal/domain"
)

// Validator checks a grid and reports a verdict per row, column, and
// subgrid unit.
type Validator interface {
	Validate(ctx context.Context, g *domain.Grid) (domain.Report, error)
}

// Filler writes sole-candidate values into a grid in place. passes < 1
// selects the implementation default.
type Filler interface {
	Fill(ctx context.Context, g *domain.Grid, passes int) (domain.FillResult, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
