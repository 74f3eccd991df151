// Package main is the entry point for the vscore CLI.
package main

import "vscore.dev/pkg/vscore/cmd"

func main() {
	cmd.Execute()
}
