// Package table is the columnar data layer the engine runs against. It reads
// and writes numeric tables as CSV or XLSX and exposes their columns as
// []float64 series.
//
// The engine itself never looks inside a column; only the transformations
// registered in the function catalogue and this package know the layout.
package table
