package main

import (
	"os"

	"github.com/ankitn/skillforge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
