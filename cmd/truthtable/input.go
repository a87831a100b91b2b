package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/nihei9/truthtable/driver"
)

const instructions = `Enter truth table entries below, separating entries with a semicolon(;).
All statements should be alphabetic variables.
Syntax:
	&& -> and
	|| -> or
	++ -> xor
	!! -> not
	!& -> not and
	!| -> not or
	!+ -> not xor
	0  -> false
	1  -> true
`

// readInput returns the formulas from the argument, a source file, or stdin, in this order.
// A terminal is prompted for one line; other sources may hold one or more formulas per line.
func readInput(args []string, source string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	if source != "" {
		f, err := os.Open(source)
		if err != nil {
			return "", fmt.Errorf("Cannot open the source file %s: %w", source, err)
		}
		defer f.Close()
		return readLines(f)
	}

	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		fmt.Fprint(os.Stderr, instructions)
		fmt.Fprint(os.Stderr, "\nEnter here: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && err != io.EOF {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
	return readLines(os.Stdin)
}

// readLines joins the non-blank lines of r into one input.
func readLines(r io.Reader) (string, error) {
	var lines []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimRight(s.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := s.Err(); err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", fmt.Errorf("no formula was given")
	}
	return strings.Join(lines, driver.EntrySeparator), nil
}
