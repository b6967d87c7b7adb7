// Package internalcheck holds repository policy tests for carrays.
//
// The tests load the module with golang.org/x/tools/go/packages and fail
// when library code reaches for unsafe outside the packages that own raw
// storage, or calls panic instead of returning an error. The package has no
// API and is not meant to be imported.
package internalcheck
