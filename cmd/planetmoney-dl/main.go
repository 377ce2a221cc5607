package main

import (
	"context"
	"fmt"
	"os"

	"github.com/handiism/planetmoney-dl/internal/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
