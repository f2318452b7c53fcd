// Package pathcheck implements the example tool: it stats the given paths
// and reports their sizes, absorbing per-path failures into log records.
// A missing path is optional by contract and only warns; any other stat
// failure records an error. The run itself fails only on usage problems.
package pathcheck
