// Command vocabctl is the operator tool for the vocabulary catalog: bulk
// import from files, lookup of stored items and id derivation.
//
// Storage and logging come from the same configuration as the server
// (CONFIG_PATH or ./config.yaml, overridden by env).
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
