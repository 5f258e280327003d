package cmd

import (
	"errors"
	"fmt"
)

// Exit codes, following grep: 0 = found, 1 = nothing found, 2 = error.
const (
	exitFound    = 0
	exitNotFound = 1
	exitUsage    = 2
)

// exitError signals a specific exit code once output has been written.
type exitError struct{ code int }

func (e exitError) Error() string {
	switch e.code {
	case exitFound:
		return ""
	case exitNotFound:
		return "no match"
	default:
		return fmt.Sprintf("exit %d", e.code)
	}
}

// ExitCode extracts the exit code carried by err.
// Returns -1 if err does not carry one.
func ExitCode(err error) int {
	var ee exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return -1
}
