package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize reports a grid or cell size that cannot hold a simulation.
	ErrInvalidSize = errors.New("invalid size")
	// ErrOutOfRange reports a cell or pixel coordinate outside the grid.
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrSizeMismatch reports an operation between grids of different dimensions.
	ErrSizeMismatch = errors.New("grid size mismatch")
)

// RangeError describes a rejected coordinate. Unit is "cell" or "pixel"; for
// pixels Row holds y and Col holds x.
type RangeError struct {
	Op    string
	Unit  string
	Row   int
	Col   int
	Limit int
}

func (e *RangeError) Error() string {
	if e.Unit == "pixel" {
		return fmt.Sprintf("%s: pixel (x=%d, y=%d) outside [0, %d)", e.Op, e.Col, e.Row, e.Limit)
	}
	return fmt.Sprintf("%s: cell (%d, %d) outside [0, %d)", e.Op, e.Row, e.Col, e.Limit)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

func cellRangeError(op string, row, col, limit int) error {
	return &RangeError{Op: op, Unit: "cell", Row: row, Col: col, Limit: limit}
}
