package utils

import (
	"fmt"
	"runtime"
)

// WrapError annotates an error with the caller's location for log output.
func WrapError(err error) error {
	_, file, line, _ := runtime.Caller(1)
	return fmt.Errorf("error at %s:%d: %v", file, line, err)
}
