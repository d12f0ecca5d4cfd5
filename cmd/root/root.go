package root

import (
	"github.com/spf13/cobra"

	"github.com/finbound/finbound/cmd/queens"

	"github.com/finbound/finbound/cmd/sudoku"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "finbound",
		Short: "Finbound is an open-source finite-domain constraint solver",
		Long: `An open-source binary constraint satisfaction solver written in Go.
For more information visit https://github.com/finbound/finbound`,
	}

	// add sub-commands
	rootCmd.AddCommand(sudoku.NewSudokuCommand())
	rootCmd.AddCommand(queens.NewQueensCommand())

	return rootCmd
}
