package main

import (
	"fmt"
	"io"

	"github.com/ilhamhanifan/maze-solver/maze"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	cols    int
	rows    int
	seed    *int64
	trace   bool
	noSolve bool
}

var (
	genCols    int
	genRows    int
	genSeed    int64
	genTrace   bool
	genNoSolve bool
)

var commandGenerate = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"solve"},
	Short:   "Generate a maze, solve it and print it",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := generateOptions{
			cols:    genCols,
			rows:    genRows,
			trace:   genTrace,
			noSolve: genNoSolve,
		}
		if cmd.Flags().Changed("seed") {
			opts.seed = &genSeed
		}
		return runGenerate(cmd.OutOrStdout(), opts)
	},
}

func init() {
	commandGenerate.Flags().IntVarP(&genCols, "cols", "c", 12, "number of columns")
	commandGenerate.Flags().IntVarP(&genRows, "rows", "r", 8, "number of rows")
	commandGenerate.Flags().Int64VarP(&genSeed, "seed", "s", 0, "random seed for a reproducible maze")
	commandGenerate.Flags().BoolVarP(&genTrace, "trace", "t", false, "print every generation and solving step")
	commandGenerate.Flags().BoolVar(&genNoSolve, "no-solve", false, "only generate the maze")
	mainCommand.AddCommand(commandGenerate)
}

func runGenerate(w io.Writer, opts generateOptions) error {
	rec := &maze.Recorder{}
	mazeOpts := []maze.Option{maze.WithVisualizer(rec)}
	if opts.seed != nil {
		mazeOpts = append(mazeOpts, maze.WithSeed(*opts.seed))
	}

	m, err := maze.New(opts.cols, opts.rows, mazeOpts...)
	if err != nil {
		return fmt.Errorf("generating %dx%d maze: %w", opts.cols, opts.rows, err)
	}

	solved := false
	if !opts.noSolve {
		solved = m.Solve()
	}

	if opts.trace {
		if _, err := io.WriteString(w, rec.String()); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, m.String()); err != nil {
		return err
	}
	if opts.noSolve {
		return nil
	}

	if !solved {
		_, err = fmt.Fprintln(w, "no path found")
		return err
	}
	_, err = fmt.Fprintf(w, "solved: %d cells, %d moves\n", len(m.Path()), rec.Count(maze.MoveForward))
	return err
}
