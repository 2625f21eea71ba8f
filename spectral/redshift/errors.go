package redshift

import (
	"errors"

	"github.com/cwbudde/algo-spectral/spectral/array"
)

var (
	ErrInvalidRedshift         = errors.New("redshift: invalid redshift <= -1")
	ErrNonNumericInput         = errors.New("redshift: cannot redshift non-numeric values")
	ErrNonFiniteInput          = errors.New("redshift: cannot redshift non-finite values")
	ErrShapeMismatch           = errors.New("redshift: wrong output shape")
	ErrDtypeMismatch           = errors.New("redshift: wrong output dtype")
	ErrConflictingRedshiftSpec = errors.New("redshift: conflicting redshift options")
	ErrMissingOutputColumn     = errors.New("redshift: data out missing required column")
	ErrMissingInputColumn      = errors.New("redshift: data in missing column")

	// ErrBroadcast is array.ErrBroadcast, so either sentinel matches.
	ErrBroadcast = array.ErrBroadcast
)
