// Package redshift rescales spectroscopic quantities between two frames
// related by a redshift.
//
// A quantity y observed at redshift z_in is transformed to redshift z_out
// with
//
//	y_out = y_in * ((1 + z_out) / (1 + z_in)) ** n
//
// where the exponent n depends on the physical meaning of y: +1 for
// wavelengths, -1 for frequencies and flux densities per unit wavelength,
// +2 for their inverse variances and so on. Known column names map to
// their exponent through the built-in registry (see [Exponent] and
// [Quantities]); unknown names use n = 0 and pass through unscaled.
//
// Three entry points share the same arithmetic:
//
//   - [Array] transforms one array, broadcasting z_in, z_out and y_in
//     together and optionally writing into a caller-supplied buffer.
//   - [Transform] transforms every column of one or more [table.Tabular]
//     inputs and rebuilds a container of the same kind, or fills an
//     existing one in place with [WithDataOut].
//   - [Apply] fills already-prepared output columns from input columns
//     using an explicit [ExponentTable].
//
// Redshifts may be scalars or arrays and every unmasked value must be
// greater than -1. Masked entries of any input are exempt from validation,
// propagate to the output mask and are copied through unscaled.
//
// All functions are synchronous and keep no state between calls; the
// registry is read-only, so concurrent use on disjoint data is safe.
package redshift
