// Package result provides a generic success-or-error carrier.
//
// A Result holds either a value of type T or an error, never both;
// the nil-ness of the error is the tag. It adapts naturally to Go's
// (T, error) return convention via Of and Get, which makes it suitable
// as an envelope for channels and containers where a single type must
// represent a fallible outcome.
package result
