package table_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/spectral/array"
	"github.com/cwbudde/algo-spectral/spectral/table"
)

func ExamplePrepare() {
	cols := table.NewColumns()
	cols.Set("wlen", array.FromSlice([]float64{4000, 4001}))
	tbl, _ := table.NewTable(cols)

	merged, desc, err := table.Prepare(table.ReadOnly, tbl, table.Col("flux", array.FromSlice([]float64{1, 2})))
	fmt.Println(merged.Names(), desc.Kind, desc.Rows, err)

	out, _ := table.Like(desc, merged)
	fmt.Println(out.Kind(), out.(*table.Table).Rows())

	// Output:
	// [wlen flux] table 2 <nil>
	// table 2
}
