package controller

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewUI returns the interactive TUI for terminals and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether file is an interactive terminal.
func IsTTY(file *os.File) bool {
	if file == nil {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}
