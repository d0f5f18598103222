// Package main provides the satchel CLI, a local personal information
// manager for contacts and notes.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, types.ErrPersistence) {
			os.Exit(exitSysError)
		}
		os.Exit(exitUserError)
	}
}
