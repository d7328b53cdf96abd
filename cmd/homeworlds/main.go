// Command homeworlds runs the Binary Homeworlds rules engine from the
// command line: start a fresh game, replay an action log, or validate one.
package main

import (
	"github.com/andrescamacho/spacetraders-go/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
