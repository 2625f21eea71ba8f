package redshift

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/spectral/array"
	"github.com/cwbudde/algo-spectral/spectral/table"
)

// Option configures [Transform].
type Option func(*config)

type config struct {
	z, zIn, zOut *array.Array
	dataOut      table.Tabular
}

// WithZ sets the output redshift with an implied input redshift of zero.
// It cannot be combined with [WithZIn] or [WithZOut].
func WithZ(z *array.Array) Option {
	return func(c *config) {
		c.z = z
	}
}

// WithZIn sets the redshift of the input data. [WithZOut] is required too.
func WithZIn(z *array.Array) Option {
	return func(c *config) {
		c.zIn = z
	}
}

// WithZOut sets the redshift of the output data. [WithZIn] is required too.
func WithZOut(z *array.Array) Option {
	return func(c *config) {
		c.zOut = z
	}
}

// WithDataOut writes results into the columns of t instead of building a
// new container. Pass the input container to transform it in place.
func WithDataOut(t table.Tabular) Option {
	return func(c *config) {
		c.dataOut = t
	}
}

func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// redshifts combines the z, z_in and z_out settings.
func (c config) redshifts() (zIn, zOut *array.Array, err error) {
	if c.z != nil {
		if c.zIn != nil || c.zOut != nil {
			return nil, nil, fmt.Errorf("%w: cannot combine z with z_in, z_out", ErrConflictingRedshiftSpec)
		}
		return array.Scalar(0), c.z, nil
	}
	if c.zIn == nil || c.zOut == nil {
		return nil, nil, fmt.Errorf("%w: must specify both z_in and z_out", ErrConflictingRedshiftSpec)
	}
	return c.zIn, c.zOut, nil
}
