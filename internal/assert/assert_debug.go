// +build debug

package assert

import "fmt"

// DEBUG is true only when built with the "debug" build tag.
const DEBUG = true

// Assert panics with msg if test is false.
func Assert(test bool, msg string, a ...interface{}) {
	if !test {
		panic(fmt.Sprintf(msg, a...))
	}
}
