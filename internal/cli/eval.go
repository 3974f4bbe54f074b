package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tform"
)

// evalOpts holds the command-line flags for the eval command.
type evalOpts struct {
	points []string // "x,y" pairs to push through the transform
	invert bool     // also print the inverse matrix
}

// newEvalCmd creates the eval command, which parses an expression and
// prints the composed matrix coefficients.
func newEvalCmd() *cobra.Command {
	var opts evalOpts

	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Parse an expression and print the composed matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.points, "point", "p", nil, "point \"x,y\" to transform (repeatable)")
	cmd.Flags().BoolVar(&opts.invert, "invert", false, "also print the inverse matrix")

	return cmd
}

func runEval(cmd *cobra.Command, expr string, opts *evalOpts) error {
	logger := loggerFromContext(cmd.Context())

	ops, err := tform.ParseOps(expr)
	if err != nil {
		return err
	}
	for _, op := range ops {
		logger.Debugf("term %v", op)
	}

	m, err := tform.Parse(expr)
	if err != nil {
		return err
	}
	printMatrix(cmd, m)

	if opts.invert {
		fmt.Fprintln(cmd.OutOrStdout(), "inverse:")
		printMatrix(cmd, m.Invert())
	}

	for _, ps := range opts.points {
		p, err := parsePoint(ps)
		if err != nil {
			return err
		}
		x, y := m.Transform(p.X, p.Y)
		fmt.Fprintf(cmd.OutOrStdout(), "(%g, %g) -> (%g, %g)\n", p.X, p.Y, x, y)
	}
	return nil
}

// printMatrix writes the coefficients in the two-row layout of the
// underlying map.
func printMatrix(cmd *cobra.Command, m tform.Matrix2D) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "| %10g %10g %10g |\n", m.A, m.C, m.E)
	fmt.Fprintf(out, "| %10g %10g %10g |\n", m.B, m.D, m.F)
}

// parsePoint reads an "x,y" flag value.
func parsePoint(s string) (tform.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return tform.Point{}, fmt.Errorf("invalid point %q (want \"x,y\")", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return tform.Point{}, fmt.Errorf("invalid point %q: %v", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return tform.Point{}, fmt.Errorf("invalid point %q: %v", s, err)
	}
	return tform.Point{X: x, Y: y}, nil
}
