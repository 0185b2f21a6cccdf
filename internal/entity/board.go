package entity

import "strings"

type Mark string

const (
	MarkX Mark = "X"
	MarkO Mark = "O"

	// MarkTie is reported as the winner of a game that ended in a draw.
	MarkTie Mark = "-"

	EmptyCell Mark = ""
)

const (
	BoardSize = 3
	CellCount = BoardSize * BoardSize
)

// WinLines is ordered the way CheckWinner scans: row i then column i for
// each index, then the main diagonal, then the anti-diagonal.
var WinLines = [][3]int{
	{0, 1, 2},
	{0, 3, 6},
	{3, 4, 5},
	{1, 4, 7},
	{6, 7, 8},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func (that Mark) IsPlayable() bool {
	return that == MarkX || that == MarkO
}

// Board is a 3x3 grid stored row-major, cell (row, col) lives at row*3+col.
// Cells only ever move from EmptyCell to a playable mark.
type Board struct {
	cells [CellCount]Mark
}

func NewBoard() *Board {
	return &Board{}
}

// MakeMove - occupies (row, col) with mark if the cell is empty.
// Coordinates outside the grid and non-playable marks are rejected the same way
// as an occupied cell: false is returned and the board is left untouched.
func (that *Board) MakeMove(row, col int, mark Mark) bool {
	if !InBounds(row, col) || !mark.IsPlayable() {
		return false
	}

	idx := row*BoardSize + col
	if that.cells[idx] != EmptyCell {
		return false
	}

	that.cells[idx] = mark

	return true
}

// CheckWinner - returns the mark of the first complete line in WinLines order.
func (that *Board) CheckWinner() (Mark, bool) {
	for _, line := range WinLines {
		a, b, c := that.cells[line[0]], that.cells[line[1]], that.cells[line[2]]
		if a != EmptyCell && a == b && b == c {
			return a, true
		}
	}

	return EmptyCell, false
}

func (that *Board) Cell(row, col int) Mark {
	if !InBounds(row, col) {
		return EmptyCell
	}

	return that.cells[row*BoardSize+col]
}

// Cells - returns a copy of the grid in row-major order.
func (that *Board) Cells() [CellCount]Mark {
	return that.cells
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// String renders the grid with blanks for empty cells and a divider between rows.
func (that *Board) String() string {
	var sb strings.Builder

	for row := range BoardSize {
		if row > 0 {
			sb.WriteString("---|---|---\n")
		}

		for col := range BoardSize {
			if col > 0 {
				sb.WriteString("|")
			}

			symbol := string(that.Cell(row, col))
			if symbol == "" {
				symbol = " "
			}

			sb.WriteString(" " + symbol + " ")
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}
