package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-spectral/spectral/array"
	"github.com/cwbudde/algo-spectral/spectral/redshift"
	"github.com/cwbudde/algo-spectral/spectral/table"
)

var warnColor = color.New(color.FgYellow)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "zinfo",
		Short: "Inspect redshift exponents and scale factors",
		Long: `zinfo lists the quantity names with a registered redshift exponent and
prints the factor ((1 + z_out) / (1 + z_in)) ** n applied to each of them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newListCmd(), newFactorCmd())
	return root
}

func newListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered quantities and their exponents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch strings.ToLower(format) {
			case "table":
				return printQuantities(cmd.OutOrStdout(), redshift.Quantities())
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(redshift.Quantities()); err != nil {
					return fmt.Errorf("encode yaml: %w", err)
				}
				return enc.Close()
			default:
				return fmt.Errorf("unknown format %q (want table or yaml)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "table", "output format: table or yaml")
	return cmd
}

func newFactorCmd() *cobra.Command {
	var z, zIn, zOut float64

	cmd := &cobra.Command{
		Use:   "factor [name ...]",
		Short: "Print the scale factor of each quantity for a redshift pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []redshift.Option
			if cmd.Flags().Changed("z") {
				opts = append(opts, redshift.WithZ(array.Scalar(z)))
			}
			if cmd.Flags().Changed("z-in") {
				opts = append(opts, redshift.WithZIn(array.Scalar(zIn)))
			}
			if cmd.Flags().Changed("z-out") {
				opts = append(opts, redshift.WithZOut(array.Scalar(zOut)))
			}

			names := args
			if len(names) == 0 {
				for _, q := range redshift.Quantities() {
					names = append(names, q.Name)
				}
			}

			factors, err := scaleFactors(names, opts)
			if err != nil {
				return err
			}
			return printFactors(cmd.OutOrStdout(), cmd.ErrOrStderr(), names, factors)
		},
	}
	cmd.Flags().Float64Var(&z, "z", 0, "output redshift, with an input redshift of 0")
	cmd.Flags().Float64Var(&zIn, "z-in", 0, "input redshift (requires --z-out)")
	cmd.Flags().Float64Var(&zOut, "z-out", 0, "output redshift (requires --z-in)")
	return cmd
}

// scaleFactors transforms a unit value for every name and returns the
// resulting factors keyed by name.
func scaleFactors(names []string, opts []redshift.Option) (*table.Columns, error) {
	inputs := make([]table.Tabular, len(names))
	for i, name := range names {
		inputs[i] = table.Col(name, array.Scalar(1))
	}
	out, err := redshift.Transform(inputs, opts...)
	if err != nil {
		return nil, err
	}
	return out.Columns(), nil
}

func printQuantities(w io.Writer, qs []redshift.Quantity) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Name\tExponent\n----\t--------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, q := range qs {
		if _, err := fmt.Fprintf(tw, "%s\t%+d\n", q.Name, q.Exponent); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return tw.Flush()
}

func printFactors(w, warn io.Writer, names []string, factors *table.Columns) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Name\tExponent\tFactor\n----\t--------\t------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, name := range names {
		n, ok := redshift.Exponent(name)
		if !ok {
			_, _ = warnColor.Fprintf(warn, "warning: %q has no registered exponent, passed through\n", name)
		}
		f, _ := factors.Get(name)
		if _, err := fmt.Fprintf(tw, "%s\t%+d\t%.6g\n", name, n, f.Data()[0]); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return tw.Flush()
}
