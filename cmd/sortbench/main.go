// cmd/sortbench/main.go
package main

import (
	cmd "github.com/mwiater/sortbench/internal/cli"
)

// main starts the sortbench CLI application by delegating to the
// cobra root command defined in the sortbench package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
