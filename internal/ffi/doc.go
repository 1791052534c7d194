// Package ffi provides the binding to the spla native shared library via
// purego. All loading, signature registration and status translation is
// isolated here; the root spla package and the CLI are its only consumers.
//
// The binding is synchronous and performs no locking of its own; if the
// process calls into the native library from multiple goroutines,
// correctness depends on the native library's thread-safety guarantees.
package ffi
