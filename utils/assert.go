package utils

import "fmt"

// Assert panics when condition does not hold. A failed assertion means a
// bug in this library, not bad input.
func Assert(condition bool, format string, args ...any) {
	if !condition {
		panic(fmt.Sprintf(format, args...))
	}
}
