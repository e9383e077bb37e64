package domain

import (
	"encoding/json"
	"fmt"
)

// UnitKind discriminates the three scan shapes of a puzzle.
type UnitKind int

const (
	UnitRow UnitKind = iota
	UnitColumn
	UnitSubgrid
)

func (k UnitKind) String() string {
	switch k {
	case UnitRow:
		return "row"
	case UnitColumn:
		return "column"
	case UnitSubgrid:
		return "subgrid"
	default:
		return fmt.Sprintf("unit(%d)", int(k))
	}
}

// MarshalJSON encodes the kind as its lowercase name.
func (k UnitKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *UnitKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "row":
		*k = UnitRow
	case "column":
		*k = UnitColumn
	case "subgrid":
		*k = UnitSubgrid
	default:
		return fmt.Errorf("unknown unit kind %q", s)
	}
	return nil
}

// Unit anchors one scan region: a whole row, a whole column, or the
// subgrid whose top-left cell is (Row, Col).
type Unit struct {
	Kind UnitKind `json:"kind"`
	Row  int      `json:"row"`
	Col  int      `json:"col"`
}

func (u Unit) String() string {
	switch u.Kind {
	case UnitRow:
		return fmt.Sprintf("row %d", u.Row+1)
	case UnitColumn:
		return fmt.Sprintf("column %d", u.Col+1)
	default:
		return fmt.Sprintf("subgrid at (%d,%d)", u.Row+1, u.Col+1)
	}
}

// UnitResult is the verdict one checker reached for its unit.
type UnitResult struct {
	Unit
	Duplicate  bool `json:"duplicate,omitempty"`
	Incomplete bool `json:"incomplete,omitempty"`
}

// Report aggregates every unit verdict for one grid. Valid means no
// unit saw a repeated value; Complete means no row or column saw a
// blank.
type Report struct {
	Complete bool         `json:"complete"`
	Valid    bool         `json:"valid"`
	Units    []UnitResult `json:"units,omitempty"`
}

// Flagged returns the units that reported a duplicate or a blank.
func (r Report) Flagged() []UnitResult {
	var out []UnitResult
	for _, u := range r.Units {
		if u.Duplicate || u.Incomplete {
			out = append(out, u)
		}
	}
	return out
}

// FillResult summarizes one fill run.
type FillResult struct {
	Filled int `json:"filled"`
	Passes int `json:"passes"`
}
