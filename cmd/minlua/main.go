package main

import (
	"os"

	"github.com/minlua/minlua/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
