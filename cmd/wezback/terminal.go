package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const clearScreenSequence = "\x1b[H\x1b[2J"

// screenClearer returns the prompt loop's clear hook, or nil when clearing is
// disabled or out is not a terminal.
func screenClearer(out io.Writer, enabled bool) func(io.Writer) {
	if !enabled || !isTerminal(out) {
		return nil
	}
	return func(w io.Writer) {
		fmt.Fprint(w, clearScreenSequence)
	}
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
