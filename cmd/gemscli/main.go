package main

import (
	"os"

	"github.com/msto63/gemscli/cmd/gemscli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
