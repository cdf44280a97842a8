// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ForgetPass Contributors

// Package prompt reads interactive terminal input.
//
// Visible prompts are plain line reads. Secret prompts suppress echo via
// the terminal driver when stdin is a TTY and fall back to a visible line
// read otherwise, which keeps piped and scripted invocations working.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/samber/oops"
	"golang.org/x/term"
)

// Error codes carried by prompt failures.
const (
	CodeRead   = "PROMPT_READ"
	CodeClosed = "PROMPT_CLOSED"
)

// ErrClosed reports that the input stream ended before a value was read.
// Interactive flows treat it as a request to exit.
var ErrClosed = oops.Code(CodeClosed).Errorf("input closed")

// Prompter asks for values on out and reads answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	hidden       func() bool
	readPassword func() (string, error)
}

// New returns a Prompter reading from in and writing labels to out.
// Echo suppression activates only when in is the process stdin and
// stdin is a terminal.
func New(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{in: bufio.NewReader(in), out: out}
	p.hidden = func() bool {
		return in == os.Stdin && term.IsTerminal(int(syscall.Stdin))
	}
	p.readPassword = func() (string, error) {
		b, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return p
}

// Line prints label and reads one line, trimmed of surrounding whitespace.
// A final line without a trailing newline still counts.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		if errors.Is(err, io.EOF) {
			return "", ErrClosed
		}
		return "", oops.Code(CodeRead).Wrapf(err, "read input")
	}
	return strings.TrimSpace(line), nil
}

// Secret prints label and reads a value without echoing it on a TTY.
// The value keeps interior whitespace; only the line ending is stripped.
func (p *Prompter) Secret(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if p.hidden() {
		s, err := p.readPassword()
		// New line after hidden input
		fmt.Fprintln(p.out)
		if err != nil {
			return "", oops.Code(CodeRead).Wrapf(err, "read hidden input")
		}
		return s, nil
	}
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		if errors.Is(err, io.EOF) {
			return "", ErrClosed
		}
		return "", oops.Code(CodeRead).Wrapf(err, "read input")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
