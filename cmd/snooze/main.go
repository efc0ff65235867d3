package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(runApp).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
