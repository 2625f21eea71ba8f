// Package table adapts tabular containers to ordered collections of named
// arrays and back.
//
// Every container implements [Tabular]: it can be decomposed into
// [Columns] and reports its [Kind] so that results can be rebuilt as a
// container of the same kind with [Like]. [Prepare] flattens a mix of
// containers and single named columns into one ordered mapping.
package table
