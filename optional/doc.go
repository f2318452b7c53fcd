// Package optional provides a generic present-or-absent carrier.
//
// An Option either holds a value of type T or holds nothing; the zero
// value is Absent. It adapts Go's (T, bool) lookup convention via Of and
// Get, and converts back to a result.Result via ToResult.
package optional
