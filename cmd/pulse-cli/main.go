package main

import (
	"fmt"
	"os"

	"github.com/DavisKolakowski/pulse-by-mirth-systems/cmd/pulse-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
