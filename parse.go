// Copyright 2026 The tform Authors. All rights reserved.
//
// Implements parsing of transform expressions such as
// "R(30)*T(0.5,0)*S(2,1)" into composed affine matrices.
package tform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var (
	// ErrArgumentCount reports a term whose comma-separated argument
	// list does not match the arity of its operation code.
	ErrArgumentCount = errors.New("incorrect argument count")
	// ErrNotANumber reports a term argument that is not a valid
	// floating-point literal.
	ErrNotANumber = errors.New("not a number")
	// ErrUnknownOp reports a term that does not start with one of the
	// operation codes S, T or R.
	ErrUnknownOp = errors.New("unknown operation")
)

// ParseOps tokenizes a transform expression into its elementary
// operations in textual order. Terms are separated by '*'; whitespace
// is insignificant anywhere, including inside argument lists. An
// expression that is empty after whitespace stripping yields a nil op
// list, while a blank term inside a non-empty expression is an error.
func ParseOps(expr string) ([]Op, error) {
	expr = stripSpace(expr)
	if expr == "" {
		return nil, nil
	}
	terms := strings.Split(expr, "*")
	ops := make([]Op, len(terms))
	for i, term := range terms {
		op, err := parseTerm(term)
		if err != nil {
			return nil, err
		}
		ops[i] = op
	}
	return ops, nil
}

// Parse composes the expression into a single transform. Terms compose
// right to left: in "R(90)*T(1,0)" the translation acts on points first
// and the rotation last, matching the usual reading of R*T*S applied to
// a column vector. An empty expression parses to Identity. Parse never
// returns a partial composition; the first invalid term fails the whole
// call.
func Parse(expr string) (Matrix2D, error) {
	ops, err := ParseOps(expr)
	if err != nil {
		return Identity, err
	}
	m := Identity
	for i := len(ops) - 1; i >= 0; i-- {
		m = ops[i].Matrix().Mult(m)
	}
	return m, nil
}

// parenStripper drops every parenthesis from a term payload instead of
// insisting on one matched pair, so "S(1,(2)" still reads as S(1,2).
var parenStripper = strings.NewReplacer("(", "", ")", "")

func parseTerm(term string) (Op, error) {
	if term == "" {
		return nil, fmt.Errorf("blank term: %w", ErrUnknownOp)
	}
	code := term[0]
	var want int
	switch code {
	case 'S', 'T':
		want = 2
	case 'R':
		want = 1
	default:
		return nil, fmt.Errorf("term %q: %w", term, ErrUnknownOp)
	}
	args, err := parseArgs(term[1:], want)
	if err != nil {
		return nil, fmt.Errorf("term %q: %w", term, err)
	}
	switch code {
	case 'S':
		return Scale{Sx: args[0], Sy: args[1]}, nil
	case 'T':
		return Translate{Tx: args[0], Ty: args[1]}, nil
	default:
		return Rotate{Degrees: args[0]}, nil
	}
}

// parseArgs validates the argument count before attempting numeric
// parsing, so a term that is wrong on both counts reports the count
// mismatch.
func parseArgs(payload string, want int) ([]float64, error) {
	parts := strings.Split(parenStripper.Replace(payload), ",")
	if len(parts) != want {
		return nil, fmt.Errorf("have %d args, want %d: %w", len(parts), want, ErrArgumentCount)
	}
	args := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", p, ErrNotANumber)
		}
		args[i] = f
	}
	return args, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
