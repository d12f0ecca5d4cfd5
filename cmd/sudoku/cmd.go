package sudoku

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finbound/finbound/pkg/finbound"
	"github.com/finbound/finbound/pkg/finbound/solver"
)

const samplePuzzle = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

func NewSudokuCommand() *cobra.Command {
	puzzle := samplePuzzle
	cmd := &cobra.Command{
		Use:   "sudoku",
		Short: "Returns a solved sudoku board",
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(cmd.Context(), puzzle)
		},
	}
	cmd.Flags().StringVar(&puzzle, "puzzle", samplePuzzle, "81 cells row by row, 1-9 for givens, '.' or '0' for blanks")
	return cmd
}

func solve(ctx context.Context, puzzle string) error {
	problem, err := NewPuzzle(puzzle)
	if err != nil {
		return err
	}

	so, err := solver.New(solver.WithInference(solver.MaintainArcConsistency))
	if err != nil {
		return err
	}

	solution, err := so.Solve(ctx, problem)
	if finbound.IsNotSatisfiable(err) {
		fmt.Println("no solution found")
		return nil
	}
	if err != nil {
		return err
	}

	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			fmt.Printf("%d", solution.Value(GetID(row, col)))
			if col != 8 {
				fmt.Printf(" ")
			}
		}
		fmt.Printf("\n")
	}
	return nil
}
