package main

import (
	"os"

	"github.com/vocino/vocino/vocinoservice"
)

func main() {
	if err := vocinoservice.Run(); err != nil {
		os.Exit(1)
	}
}
