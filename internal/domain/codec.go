package domain

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrFormat reports puzzle text that does not parse.
var ErrFormat = errors.New("malformed puzzle text")

// ParseGrid reads the plain text puzzle format: the size N followed by
// N*N whitespace-separated cell values, 0 marking a blank.
func ParseGrid(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	size, err := nextInt(sc)
	if err != nil {
		return nil, fmt.Errorf("puzzle size: %w", err)
	}
	g, err := NewGrid(size)
	if err != nil {
		return nil, err
	}
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			v, err := nextInt(sc)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", row+1, col+1, err)
			}
			if v < 0 || v > size {
				return nil, fmt.Errorf("cell (%d,%d): %w: %d", row+1, col+1, ErrValue, v)
			}
			g.Set(row, col, v)
		}
	}
	return g, nil
}

func nextInt(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("%w: unexpected end of input", ErrFormat)
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrFormat, sc.Text())
	}
	return n, nil
}

// WriteGrid prints g in the same format ParseGrid reads: the size on
// its own line, one line per row with a space after every value, and a
// closing blank line.
func WriteGrid(w io.Writer, g *Grid) error {
	if g == nil || g.size < 1 {
		return fmt.Errorf("%w: empty grid", ErrSize)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", g.size)
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			fmt.Fprintf(bw, "%d ", g.At(row, col))
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	return bw.Flush()
}
