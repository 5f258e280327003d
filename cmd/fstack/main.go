// fstack looks up cognitive function stacks of the sixteen types,
// searches stacks for functions and reports the slots they occupy.
package main

import (
	"fmt"
	"os"

	"github.com/corey/fstack/cmd/fstack/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if code := cmd.ExitCode(err); code >= 0 {
			os.Exit(code)
		}
		fmt.Fprintf(os.Stderr, "fstack: %v\n", err)
		os.Exit(2)
	}
}
