package redshift

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/spectral/table"
)

// Transform redshifts every column of inputs.
//
// Redshifts are given either with [WithZ] alone or with both [WithZIn] and
// [WithZOut]. Each column is transformed with [Array] using the registry
// exponent for its name; unregistered columns are copied unchanged.
//
// Without [WithDataOut] the result is a new container of the same kind as
// the inputs (see [table.Prepare]) with columns in input order. With it,
// the data-out container must hold a correctly shaped column of the same
// element type for every input column; it is filled and returned.
//
// Every column is validated before any output is written. On error the
// contents of a data-out container are unspecified.
func Transform(inputs []table.Tabular, opts ...Option) (table.Tabular, error) {
	cfg := applyOptions(opts)

	zIn, zOut, err := cfg.redshifts()
	if err != nil {
		return nil, err
	}

	arraysIn, descIn, err := table.Prepare(table.ReadOnly, inputs...)
	if err != nil {
		return nil, fmt.Errorf("redshift: %w", err)
	}

	arraysOut := table.NewColumns()
	if cfg.dataOut != nil {
		arraysOut, _, err = table.Prepare(table.InPlace, cfg.dataOut)
		if err != nil {
			return nil, fmt.Errorf("redshift: %w", err)
		}
	}

	plans := make([]*plan, 0, arraysIn.Len())
	for name, yIn := range arraysIn.All() {
		acfg := defaultArrayConfig()
		WithName(name)(&acfg)
		if cfg.dataOut != nil {
			yOut, ok := arraysOut.Get(name)
			if !ok {
				return nil, fmt.Errorf("%w %s", ErrMissingOutputColumn, name)
			}
			acfg.out = yOut
		}

		p, err := newPlan(zIn, zOut, yIn, acfg)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}

	for i, name := range arraysIn.Names() {
		y, err := plans[i].run()
		if err != nil {
			return nil, fmt.Errorf("redshift: column %s: %w", name, err)
		}
		arraysOut.Set(name, y)
	}

	if cfg.dataOut != nil {
		return cfg.dataOut, nil
	}
	return table.Like(descIn, arraysOut)
}
