// Package main is the entry point for the scratchbook CLI.
package main

import "scratchbook.dev/pkg/scratchbook/cmd"

func main() {
	cmd.Execute()
}
