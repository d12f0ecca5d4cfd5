package queens

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finbound/finbound/pkg/finbound"
	"github.com/finbound/finbound/pkg/finbound/constraint"
	"github.com/finbound/finbound/pkg/finbound/solver"
)

func NewQueensCommand() *cobra.Command {
	n := 8
	cmd := &cobra.Command{
		Use:   "queens",
		Short: "Places n non-attacking queens on an n x n board",
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(cmd.Context(), n)
		},
	}
	cmd.Flags().IntVar(&n, "n", 8, "board size")
	return cmd
}

// GetID names the variable holding the column of the queen on the given
// row.
func GetID(row int) finbound.Variable {
	return finbound.Variable(fmt.Sprintf("queen-%d", row))
}

// NewBoard builds the n-queens board as a binary CSP: one variable per row
// holding the queen's column, not-equal constraints between every pair of
// rows, and a diagonal relation excluding attacks along both diagonals.
func NewBoard(n int) (*finbound.Problem, error) {
	variables := make([]finbound.Variable, 0, n)
	domains := make(map[finbound.Variable]finbound.Domain, n)
	columns := make([]finbound.Value, n)
	for col := 0; col < n; col++ {
		columns[col] = col
	}
	for row := 0; row < n; row++ {
		v := GetID(row)
		variables = append(variables, v)
		domains[v] = finbound.NewDomain(columns...)
	}

	var binary []finbound.BinaryConstraint
	for row1 := 0; row1 < n; row1++ {
		for row2 := row1 + 1; row2 < n; row2++ {
			binary = append(binary, constraint.NotEqual(GetID(row1), GetID(row2)))
			distance := row2 - row1
			binary = append(binary, constraint.Relation(GetID(row1), GetID(row2), "off-diagonal",
				func(value1, value2 finbound.Value) bool {
					diff := value1.(int) - value2.(int)
					return diff != distance && diff != -distance
				}))
		}
	}

	return finbound.NewProblem(variables, domains, nil, binary)
}

func solve(ctx context.Context, n int) error {
	problem, err := NewBoard(n)
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

	for row := 0; row < n; row++ {
		queenCol := solution.Value(GetID(row)).(int)
		for col := 0; col < n; col++ {
			if col == queenCol {
				fmt.Printf("Q")
			} else {
				fmt.Printf(".")
			}
			if col != n-1 {
				fmt.Printf(" ")
			}
		}
		fmt.Printf("\n")
	}
	return nil
}
