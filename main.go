package main

import (
	"fmt"
	"os"

	"github.com/conneroisu/mkmagnet/cmd"
	"github.com/conneroisu/mkmagnet/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.IsUsageError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
