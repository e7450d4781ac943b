// Command sketch renders vector paths and pie charts with a hand-drawn
// look.
package main

import (
	"os"

	"github.com/gogpu/sketch/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
