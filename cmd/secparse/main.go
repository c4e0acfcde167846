package main

import (
	"os"

	"github.com/paulgb/sec-data-parser/cmd/secparse/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
