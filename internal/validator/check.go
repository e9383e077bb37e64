package validator

import "svw.info/sudocheck/internal/domain"

// checkUnit scans one unit for repeated values and blanks. Row and
// column scans mark a blank as incomplete and keep going, and stop at
// the first duplicate. Subgrid scans skip blanks; rows and columns
// already account for completeness.
func checkUnit(g *domain.Grid, u domain.Unit) domain.UnitResult {
	res := domain.UnitResult{Unit: u}
	n := g.Size()
	seen := make([]bool, n+1)

	switch u.Kind {
	case domain.UnitRow:
		for c := 0; c < n; c++ {
			v := g.At(u.Row, c)
			if v <= 0 {
				res.Incomplete = true
				continue
			}
			if seen[v] {
				res.Duplicate = true
				return res
			}
			seen[v] = true
		}
	case domain.UnitColumn:
		for r := 0; r < n; r++ {
			v := g.At(r, u.Col)
			if v <= 0 {
				res.Incomplete = true
				continue
			}
			if seen[v] {
				res.Duplicate = true
				return res
			}
			seen[v] = true
		}
	case domain.UnitSubgrid:
		// Subgrid units only exist when n is a perfect square.
		side, _ := intSqrt(n)
		for r := u.Row; r < u.Row+side; r++ {
			for c := u.Col; c < u.Col+side; c++ {
				v := g.At(r, c)
				if v <= 0 {
					continue
				}
				if seen[v] {
					res.Duplicate = true
					return res
				}
				seen[v] = true
			}
		}
	}
	return res
}

// unitsFor enumerates the units of an n×n grid: n rows, n columns,
// and, when n is a perfect square with side > 1, the n subgrids.
func unitsFor(n int) []domain.Unit {
	units := make([]domain.Unit, 0, 3*n)
	for i := 0; i < n; i++ {
		units = append(units, domain.Unit{Kind: domain.UnitRow, Row: i})
	}
	for i := 0; i < n; i++ {
		units = append(units, domain.Unit{Kind: domain.UnitColumn, Col: i})
	}
	if side, ok := intSqrt(n); ok && side > 1 {
		for r := 0; r < n; r += side {
			for c := 0; c < n; c += side {
				units = append(units, domain.Unit{Kind: domain.UnitSubgrid, Row: r, Col: c})
			}
		}
	}
	return units
}

// intSqrt returns the smallest i with i*i >= n and whether i*i == n.
func intSqrt(n int) (int, bool) {
	i := 1
	for i*i < n {
		i++
	}
	return i, i*i == n
}
