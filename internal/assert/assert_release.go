// +build !debug

// Package assert provides zero-cost (in release builds) invariant checks.
// Call sites should additionally guard with "if assert.DEBUG { ... }" so the
// Go compiler can eliminate the whole statement, including evaluation of
// its message arguments, when DEBUG is false.
package assert

// DEBUG is true only when built with the "debug" build tag.
const DEBUG = false

// Assert panics with msg if test is false. No-op in release builds.
func Assert(test bool, msg string, a ...interface{}) {}
