// Package main is the entry point for the dotstore CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thoreinstein/dotstore/cmd/dotstore/commands"
	cmderrors "github.com/thoreinstein/dotstore/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "Error:", err)

	var exitErr *cmderrors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}
	os.Exit(cmderrors.ExitUser)
}
