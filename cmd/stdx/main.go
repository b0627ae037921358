package main

import (
	"os"

	"github.com/stdx-go/stdx/cmd/stdx/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
