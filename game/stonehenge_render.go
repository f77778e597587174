package game

import "strings"

// canvas is a grid of characters the board is drawn onto.
type canvas [][]rune

func newCanvas(lines, width int) canvas {
	c := make(canvas, lines)
	for i := range c {
		c[i] = []rune(strings.Repeat(" ", width))
	}
	return c
}

func (c canvas) put(line, col int, r rune) {
	c[line][col] = r
}

func (c canvas) String() string {
	out := make([]string, len(c))
	for i, line := range c {
		out[i] = strings.TrimRight(string(line), " ")
	}
	return strings.Join(out, "\n") + "\n"
}

func markerRune(p Player) rune {
	switch p {
	case P1:
		return '1'
	case P2:
		return '2'
	}
	return '@'
}

func (s *StonehengeState) cellRune(cell int) rune {
	if owner := s.cells[cell]; owner != NoPlayer {
		return markerRune(owner)
	}
	return rune(s.board.label(cell)[0])
}

// column of cell c in row r; the final row sits between the cells of the row above it
func (s *StonehengeState) column(r, c int) int {
	n := s.board.size
	if r == n {
		return 6 + 4*c
	}
	return 2*(n+1-r) + 4*c
}

// String draws the board with its row markers on the left, "/" markers along the top and
// right, and "\" markers along the bottom.
func (s *StonehengeState) String() string {
	n := s.board.size
	rows := s.board.rows
	cv := newCanvas(2*n+5, 4*n+12)

	for c := 0; c < 2; c++ {
		col := s.column(0, c)
		cv.put(0, col+2, markerRune(s.markers[DiagonalLeft][c]))
		cv.put(1, col+1, '/')
	}

	for r, row := range rows {
		line := 2 + 2*r
		first, last := s.column(r, 0), s.column(r, len(row)-1)

		cv.put(line, first-4, markerRune(s.markers[Row][r]))
		cv.put(line, first-2, '-')
		for c, cell := range row {
			col := s.column(r, c)
			cv.put(line, col, s.cellRune(cell))
			if c > 0 {
				cv.put(line, col-2, '-')
			}
		}

		switch {
		case r < n-1:
			cv.put(line, last+4, markerRune(s.markers[DiagonalLeft][r+2]))
			for c := range row {
				col := s.column(r, c)
				cv.put(line+1, col-1, '/')
				cv.put(line+1, col+1, '\\')
			}
			cv.put(line+1, last+3, '/')
		case r == n-1:
			for c := range row {
				col := s.column(r, c)
				if c > 0 {
					cv.put(line+1, col-1, '/')
				}
				cv.put(line+1, col+1, '\\')
			}
		default:
			cv.put(line, last+4, markerRune(s.markers[DiagonalRight][n]))
			for c := range row {
				col := s.column(r, c)
				cv.put(line+1, col+1, '\\')
				cv.put(line+2, col+2, markerRune(s.markers[DiagonalRight][c]))
			}
		}
	}
	return cv.String()
}
