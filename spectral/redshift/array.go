package redshift

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/spectral/array"
)

// ArrayOption configures a single-array transform.
type ArrayOption func(*arrayConfig)

type arrayConfig struct {
	out      *array.Array
	exponent *int
	name     string
}

func defaultArrayConfig() arrayConfig {
	return arrayConfig{name: "y"}
}

// WithOutput writes the result into y instead of allocating a new array.
// y must have exactly the broadcast shape and the element type of the
// input. Passing the input array itself transforms it in place.
func WithOutput(y *array.Array) ArrayOption {
	return func(c *arrayConfig) {
		c.out = y
	}
}

// WithExponent sets the exponent explicitly, bypassing the registry.
func WithExponent(n int) ArrayOption {
	return func(c *arrayConfig) {
		c.exponent = &n
	}
}

// WithName names the quantity. The name selects the registry exponent
// when none is given explicitly and appears in error messages.
func WithName(name string) ArrayOption {
	return func(c *arrayConfig) {
		if name != "" {
			c.name = name
		}
	}
}

// plan is a validated single-array transform ready to be written.
type plan struct {
	zIn, zOut, yIn *array.Array
	out            *array.Array
	shape          array.Shape
	exponent       int
}

func (p *plan) run() (*array.Array, error) {
	if p.out == nil {
		p.out = array.EmptyLike(p.yIn, p.shape, p.yIn.DType())
	}
	if err := scale(p.out, p.zIn, p.zOut, p.yIn, p.exponent); err != nil {
		return nil, err
	}
	return p.out, nil
}

// newPlan performs every check of a single-array transform without
// touching any output buffer.
func newPlan(zIn, zOut, yIn *array.Array, cfg arrayConfig) (*plan, error) {
	if err := checkRedshifts(zIn, zOut); err != nil {
		return nil, err
	}

	if !yIn.DType().Numeric() {
		return nil, fmt.Errorf("%w for %s (dtype %s)", ErrNonNumericInput, cfg.name, yIn.DType())
	}
	if !yIn.AllFinite() {
		return nil, fmt.Errorf("%w for %s", ErrNonFiniteInput, cfg.name)
	}

	exponent := 0
	if cfg.exponent != nil {
		exponent = *cfg.exponent
	} else if n, ok := Exponent(cfg.name); ok {
		exponent = n
	}

	// The output shape always follows broadcasting, even for exponent 0.
	shape, err := array.Broadcast(zIn.Shape(), zOut.Shape(), yIn.Shape())
	if err != nil {
		return nil, fmt.Errorf("%w: cannot broadcast %s with shapes %s, %s, %s",
			ErrBroadcast, cfg.name, zIn.Shape(), zOut.Shape(), yIn.Shape())
	}

	if y := cfg.out; y != nil {
		if !y.Shape().Equal(shape) {
			return nil, fmt.Errorf("%w %s for %s, want %s", ErrShapeMismatch, y.Shape(), cfg.name, shape)
		}
		if y.DType() != yIn.DType() {
			return nil, fmt.Errorf("%w %s for %s, want %s", ErrDtypeMismatch, y.DType(), cfg.name, yIn.DType())
		}
	}

	return &plan{zIn: zIn, zOut: zOut, yIn: yIn, out: cfg.out, shape: shape, exponent: exponent}, nil
}

// Array redshifts a single array:
//
//	y_out = y_in * ((1 + z_out) / (1 + z_in)) ** exponent
//
// zIn, zOut and yIn are broadcast together, so the result may have a
// different shape from yIn. The exponent is resolved from [WithExponent],
// then from the registry entry for [WithName], and defaults to 0.
//
// yIn must be numeric and every unmasked element finite. The returned
// array is the [WithOutput] buffer when one was given, otherwise a new
// array with the element type of yIn.
func Array(zIn, zOut, yIn *array.Array, opts ...ArrayOption) (*array.Array, error) {
	cfg := defaultArrayConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	p, err := newPlan(zIn, zOut, yIn, cfg)
	if err != nil {
		return nil, err
	}
	return p.run()
}
