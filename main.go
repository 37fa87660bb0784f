package main

import (
	"os"

	"github.com/jhakola/vocablo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
