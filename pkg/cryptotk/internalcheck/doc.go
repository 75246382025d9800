// Package internalcheck holds static policy tests for the toolkit's source.
//
// The tests load the public packages with go/packages and reject patterns
// that tend to become silent security bugs: direct == comparison of byte
// slices (use crypto/subtle) and %x formatting in error or log strings
// (secret material must never be hex-dumped). It is not intended for import
// by applications.
package internalcheck
