package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"svw.info/sudocheck/internal/domain"
	"svw.info/sudocheck/internal/filler"
	"svw.info/sudocheck/internal/usecase"
	"svw.info/sudocheck/internal/validator"
)

var fillPasses int

var mainCommand = &cobra.Command{
	Use:   "sudocheck <puzzle-file>",
	Short: "Check a Sudoku grid and fill in forced cells",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.OutOrStdout(), args[0], fillPasses)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	mainCommand.Flags().IntVar(&fillPasses, "passes", filler.DefaultPasses, "maximum fill passes over the grid")
}

func main() {
	if err := mainCommand.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// run reads a puzzle file, reports completeness and validity, and for
// incomplete puzzles prints the grid before and after filling forced
// cells.
func run(out io.Writer, path string, passes int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open puzzle: %w", err)
	}
	defer f.Close()
	g, err := domain.ParseGrid(f)
	if err != nil {
		return fmt.Errorf("read puzzle: %w", err)
	}

	ctx := context.Background()
	uc := usecase.NewService(validator.New(), filler.New(), nil, nil)

	rep, err := uc.Check(ctx, g)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Complete puzzle? %t\n", rep.Complete)
	if rep.Complete {
		fmt.Fprintf(out, "Valid puzzle? %t\n", rep.Valid)
		return nil
	}

	if err := domain.WriteGrid(out, g); err != nil {
		return err
	}
	if _, err := uc.Fill(ctx, g, passes); err != nil {
		return err
	}
	return domain.WriteGrid(out, g)
}
