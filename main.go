// Package main provides the entry point for the h2i CLI tool.
// It delegates execution to the cmd package.
package main

import (
	"h2i/cmd"
)

func main() {
	cmd.Execute()
}
