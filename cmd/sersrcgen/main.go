package main

import (
	"fmt"
	"os"

	"github.com/danmuck/sersrcgen/internal/logging"
)

func main() {
	logging.ConfigureRuntime()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sersrcgen: %v\n", err)
		os.Exit(1)
	}
}
