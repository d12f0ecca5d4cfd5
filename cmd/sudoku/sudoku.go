package sudoku

import (
	"fmt"

	"github.com/finbound/finbound/pkg/finbound"
	"github.com/finbound/finbound/pkg/finbound/constraint"
)

// GetID names the variable of the cell at the given row and column.
func GetID(row, col int) finbound.Variable {
	return finbound.Variable(fmt.Sprintf("%d-%d", row, col))
}

// NewPuzzle builds the 9x9 sudoku board as a binary CSP: one variable per
// cell with domain 1..9, a not-equal constraint for every pair of cells
// sharing a row, column or box, and a unary requirement for every given of
// the puzzle string. The puzzle string lists the 81 cells row by row, with
// '1'..'9' for givens and '.' or '0' for blanks.
func NewPuzzle(puzzle string) (*finbound.Problem, error) {
	if len(puzzle) != 81 {
		return nil, fmt.Errorf("puzzle must describe 81 cells, got %d", len(puzzle))
	}

	variables := make([]finbound.Variable, 0, 81)
	domains := make(map[finbound.Variable]finbound.Domain, 81)
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			v := GetID(row, col)
			variables = append(variables, v)
			domains[v] = finbound.NewDomain(1, 2, 3, 4, 5, 6, 7, 8, 9)
		}
	}

	var unary []finbound.UnaryConstraint
	for i, ch := range puzzle {
		switch {
		case ch >= '1' && ch <= '9':
			unary = append(unary, constraint.Require(GetID(i/9, i%9), int(ch-'0')))
		case ch == '.' || ch == '0':
		default:
			return nil, fmt.Errorf("cell %d: unexpected character %q", i, ch)
		}
	}

	var binary []finbound.BinaryConstraint
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			// pair each cell with its later peers so every pair appears once
			for other := row*9 + col + 1; other < 81; other++ {
				otherRow, otherCol := other/9, other%9
				if row != otherRow && col != otherCol &&
					(row/3 != otherRow/3 || col/3 != otherCol/3) {
					continue
				}
				binary = append(binary, constraint.NotEqual(GetID(row, col), GetID(otherRow, otherCol)))
			}
		}
	}

	return finbound.NewProblem(variables, domains, unary, binary)
}
