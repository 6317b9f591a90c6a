package main

import (
	"os"

	"github.com/gregorydgoyins/comicmarket/cmd/comicmarketd/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
