// Package argp implements a small command-line parameter layer: typed
// value containers, flag styles and a parser that reports diagnostics
// through an emit.Stream.
package argp

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Value converts textual command-line input into a typed destination.
// Each Parameter owns exactly one Value.
type Value interface {
	// Convert parses s into the destination, or reports why it cannot.
	Convert(s string) error
}

// Int64Value parses a decimal integer into its destination.
type Int64Value struct {
	dst *int64
}

func (v *Int64Value) Convert(s string) error {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "%q is not a valid integer", s)
	}

	*v.dst = n
	return nil
}

// BoolValue parses a boolean into its destination. A flag passed with
// no value at all means true.
type BoolValue struct {
	dst *bool
}

func (v *BoolValue) Convert(s string) error {
	if s == "" {
		*v.dst = true
		return nil
	}

	b, err := strconv.ParseBool(s)
	if err != nil {
		return errors.Wrapf(err, "%q is not a valid boolean", s)
	}

	*v.dst = b
	return nil
}

// Float64Value parses a floating-point number into its destination.
type Float64Value struct {
	dst *float64
}

func (v *Float64Value) Convert(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.Wrapf(err, "%q is not a valid number", s)
	}

	*v.dst = f
	return nil
}

// StringValue stores the raw text into its destination.
type StringValue struct {
	dst *string
}

func (v *StringValue) Convert(s string) error {
	if s == "" {
		return errors.New("expected a value")
	}

	*v.dst = s
	return nil
}

// PackValue accumulates comma-separated items into its destination.
// Passing the flag multiple times would be a duplicate; the pack form
// is the way to supply several items.
type PackValue struct {
	dst *[]string
}

func (v *PackValue) Convert(s string) error {
	if s == "" {
		return errors.New("expected one or more comma-separated values")
	}

	for _, item := range strings.Split(s, ",") {
		if item == "" {
			return errors.Errorf("empty item in pack %q", s)
		}
		*v.dst = append(*v.dst, item)
	}

	return nil
}
