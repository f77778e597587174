package game

import "sync"

const (
	MinBoardSize = 1
	MaxBoardSize = 5
)

// Ley-line families, in the order their markers are stored.
const (
	Row = iota
	DiagonalRight
	DiagonalLeft
	families
)

// board is the static geometry of a Stonehenge board of one size. It is shared by every
// state of that size and never modified after construction.
type board struct {
	size int
	// rows[r] holds the cell indices of row r, the final row last
	rows [][]int
	// lines[f][i] holds the cell indices of ley-line i of family f
	lines [families][][]int
	// through[c][f] is the index of the family f ley-line passing through cell c
	through [][families]int
}

var (
	boards   [MaxBoardSize + 1]*board
	boardsMu sync.Mutex
)

func boardOf(size int) *board {
	boardsMu.Lock()
	defer boardsMu.Unlock()

	if boards[size] == nil {
		boards[size] = newBoard(size)
	}
	return boards[size]
}

// newBoard lays out a triangular board of side n: rows 0..n-1 hold r+2 cells and the final
// row holds n cells, sitting between the cells of the row above it.
func newBoard(n int) *board {
	b := &board{size: n}

	cell := 0
	for r := 0; r <= n; r++ {
		width := r + 2
		if r == n {
			width = n
		}
		row := make([]int, width)
		for c := range row {
			row[c] = cell
			cell++
		}
		b.rows = append(b.rows, row)
	}
	b.through = make([][families]int, cell)

	for f := 0; f < families; f++ {
		b.lines[f] = make([][]int, n+1)
	}
	b.lines[Row] = b.rows

	last := b.rows[n]
	for i := 0; i <= n; i++ {
		// "\" runs down to the right: cell i-n+r+1 of each upper row, then final cell i
		for r := 0; r < n; r++ {
			if c := i - n + r + 1; c >= 0 && c < len(b.rows[r]) {
				b.lines[DiagonalRight][i] = append(b.lines[DiagonalRight][i], b.rows[r][c])
			}
		}
		if i < n {
			b.lines[DiagonalRight][i] = append(b.lines[DiagonalRight][i], last[i])
		}

		// "/" runs down to the left: cell i of each upper row, then final cell i-1
		for r := 0; r < n; r++ {
			if i < len(b.rows[r]) {
				b.lines[DiagonalLeft][i] = append(b.lines[DiagonalLeft][i], b.rows[r][i])
			}
		}
		if i >= 1 && i <= n {
			b.lines[DiagonalLeft][i] = append(b.lines[DiagonalLeft][i], last[i-1])
		}
	}

	for f, lines := range b.lines {
		for i, line := range lines {
			for _, c := range line {
				b.through[c][f] = i
			}
		}
	}
	return b
}

func (b *board) cellCount() int {
	return len(b.through)
}

func (b *board) lineCount() int {
	return families * (b.size + 1)
}

func (b *board) label(cell int) Cell {
	return Cell(rune('A' + cell))
}

func (b *board) index(c Cell) (int, bool) {
	if len(c) != 1 {
		return 0, false
	}
	i := int(c[0]) - 'A'
	return i, i >= 0 && i < b.cellCount()
}
