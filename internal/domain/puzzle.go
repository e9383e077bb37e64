package domain

import "fmt"

// Puzzle is a persisted grid with metadata.
type Puzzle struct {
	ID        string  `json:"id,omitempty"`
	Name      string  `json:"name,omitempty"`
	Size      int     `json:"size"`
	Rows      [][]int `json:"rows"`
	CreatedAt int64   `json:"createdAt,omitempty"`
	// Optional user metadata
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Size      int    `json:"size"`
	CreatedAt int64  `json:"createdAt"`
}

// Grid converts the stored rows into a checked Grid.
func (p *Puzzle) Grid() (*Grid, error) {
	g, err := FromRows(p.Rows)
	if err != nil {
		return nil, err
	}
	if p.Size != 0 && p.Size != g.Size() {
		return nil, fmt.Errorf("%w: size field %d, rows %d", ErrSize, p.Size, g.Size())
	}
	return g, nil
}
