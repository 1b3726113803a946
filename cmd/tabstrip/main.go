// Command tabstrip shows tab strips described by TOML or YAML files.
package main

import (
	"fmt"
	"os"

	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if tabstrip.IsCancelled(err) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
