// Command fiberc rewrites fiber bodies written with fiber.Site() markers
// into the switch-on-resume dispatch form the fiber package's Call
// requires. It is meant to be invoked through go:generate, one directive
// per file that declares fiber:generate functions:
//
//	//go:generate fiberc .
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/JarkkoPFC/fiber/internal/fibercompiler"
)

const usage = `
fiberc rewrites fiber:generate function bodies in place.

USAGE:
  fiberc [OPTIONS] [PATTERN]

PATTERN defaults to "." (the package in the current directory).

OPTIONS:
  -h, --help     Show this help information
`

func main() {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage[1:]) }
	flag.Parse()

	pattern := flag.Arg(0)
	if pattern == "" {
		pattern = "."
	}

	results, err := fibercompiler.Generate(pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fiberc: %v\n", err)
		os.Exit(1)
	}
	if len(results) == 0 {
		fmt.Println("fiberc: nothing to generate")
	}
}
