//go:generate go run ./cmd/astgen -dir ast
package main

import (
	"os"

	"github.com/craftinterpreter/glox/cli"
)

func main() {
	os.Exit(cli.Main(os.Stderr))
}
