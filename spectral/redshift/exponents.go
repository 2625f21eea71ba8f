package redshift

// Quantity pairs a recognized column name with its redshift exponent.
type Quantity struct {
	Name     string `yaml:"name"`
	Exponent int    `yaml:"exponent"`
}

var quantities = [...]Quantity{
	{Name: "wlen", Exponent: +1},
	{Name: "wavelength", Exponent: +1},
	{Name: "wavelength_error", Exponent: +1},
	{Name: "freq", Exponent: -1},
	{Name: "frequency", Exponent: -1},
	{Name: "frequency_error", Exponent: -1},
	{Name: "flux", Exponent: -1},
	{Name: "irradiance_per_wavelength", Exponent: -1},
	{Name: "irradiance_per_frequency", Exponent: +1},
	{Name: "ivar", Exponent: +2},
	{Name: "ivar_irradiance_per_wavelength", Exponent: +2},
	{Name: "ivar_irradiance_per_frequency", Exponent: -2},
}

// exponents is built once and never written afterwards.
var exponents = func() map[string]int {
	m := make(map[string]int, len(quantities))
	for _, q := range quantities {
		m[q.Name] = q.Exponent
	}
	return m
}()

// Exponent returns the registered exponent for name. The boolean is false
// for unregistered names, which callers treat as exponent 0.
func Exponent(name string) (int, bool) {
	n, ok := exponents[name]
	return n, ok
}

// Quantities lists the registered names in registry order.
func Quantities() []Quantity {
	return append([]Quantity(nil), quantities[:]...)
}

// ExponentTable maps column names to exponents for [Apply]. Missing names
// have exponent 0.
type ExponentTable map[string]int

// DefaultExponents returns a new table holding the registry contents.
func DefaultExponents() ExponentTable {
	t := make(ExponentTable, len(exponents))
	for name, n := range exponents {
		t[name] = n
	}
	return t
}
