package common

import (
	"fmt"
	"runtime/debug"
)

// Try runs f and turns a panic into an error, returning the stack it was raised from.
func Try[T any](f func() (T, error)) (result T, err error, stack string) {
	defer func() {
		if r := recover(); r != nil {
			switch r := r.(type) {
			case error:
				err = r
			default:
				err = fmt.Errorf("%v", r)
			}
			stack = string(debug.Stack())
		}
	}()
	result, err = f()
	return result, err, ""
}
