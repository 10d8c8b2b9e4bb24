// SPDX-License-Identifier: MIT

// Command dmtool validates, inspects and converts dissimilarity matrix files.
package main

import (
	"os"

	"github.com/katalvlaran/lvdm/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
