// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// cpusched simulates CPU scheduling policies from the command line and over
// HTTP.
package main

import (
	"os"

	"github.com/petenewcomb/cpusched-go/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
