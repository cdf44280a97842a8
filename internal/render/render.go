// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ForgetPass Contributors

// Package render writes styled CLI output.
//
// Styling is optional: a Renderer constructed with styled=false emits the
// same information as plain text, which keeps --quiet runs, pipes, and
// scripted use clean of escape sequences.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/forgetpass/forgetpass/internal/derive"
)

// Renderer writes CLI output to out, styled or plain.
type Renderer struct {
	out    io.Writer
	theme  *Theme
	styled bool
}

// New returns a Renderer writing to out. When styled is false every
// method prints plain text.
func New(out io.Writer, styled bool) *Renderer {
	return &Renderer{out: out, theme: DefaultTheme(), styled: styled}
}

// Banner prints the application header.
func (r *Renderer) Banner(version string) {
	title := "ForgetPass " + version
	subtitle := "Deterministic password generator"
	if !r.styled {
		fmt.Fprintln(r.out, title)
		fmt.Fprintln(r.out, subtitle)
		fmt.Fprintln(r.out)
		return
	}
	fmt.Fprintln(r.out, r.theme.TitleStyle.Render(title))
	fmt.Fprintln(r.out, r.theme.SubtitleStyle.Render(subtitle))
	fmt.Fprintln(r.out)
}

// Info prints a plain informational line. Menu bodies and progress
// notices go through here.
func (r *Renderer) Info(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Success prints a confirmation line.
func (r *Renderer) Success(format string, args ...any) {
	r.print(r.theme.SuccessStyle, fmt.Sprintf(format, args...))
}

// Warn prints a warning line.
func (r *Renderer) Warn(format string, args ...any) {
	r.print(r.theme.WarnStyle, fmt.Sprintf(format, args...))
}

// Error prints an error line prefixed with "Error: ".
func (r *Renderer) Error(format string, args ...any) {
	r.print(r.theme.ErrorStyle, "Error: "+fmt.Sprintf(format, args...))
}

// Hint prints a muted hint line.
func (r *Renderer) Hint(format string, args ...any) {
	r.print(r.theme.HintStyle, fmt.Sprintf(format, args...))
}

// Result prints the generated password with its metadata.
func (r *Renderer) Result(res *derive.Result) {
	length := fmt.Sprintf("%d characters", res.Length)
	source := sourceLabel(res.Source)
	if !r.styled {
		fmt.Fprintf(r.out, "Password: %s\n", res.Password)
		fmt.Fprintf(r.out, "Length: %s\n", length)
		fmt.Fprintf(r.out, "Keywords: %d\n", res.KeywordCount)
		fmt.Fprintf(r.out, "Source: %s\n", source)
		return
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		r.theme.TitleStyle.Render("Password generated"),
		"",
		r.theme.PasswordStyle.Render(res.Password),
		"",
		r.row("Length", length),
		r.row("Keywords", strconv.Itoa(res.KeywordCount)),
		r.row("Source", source),
	)
	fmt.Fprintln(r.out, r.theme.PanelStyle.Render(body))
}

// Fingerprint prints the machine fingerprint.
func (r *Renderer) Fingerprint(fp string) {
	if !r.styled {
		fmt.Fprintf(r.out, "Fingerprint: %s\n", fp)
		return
	}
	fmt.Fprintln(r.out, r.row("Fingerprint", r.theme.PasswordStyle.Render(fp)))
}

func (r *Renderer) print(style lipgloss.Style, msg string) {
	if !r.styled {
		fmt.Fprintln(r.out, msg)
		return
	}
	fmt.Fprintln(r.out, style.Render(msg))
}

func (r *Renderer) row(label, value string) string {
	return r.theme.LabelStyle.Render(label+": ") + r.theme.ValueStyle.Render(value)
}

// sourceLabel maps result source identifiers to display names.
func sourceLabel(source string) string {
	switch source {
	case derive.SourceFingerprint:
		return "hardware fingerprint"
	case derive.SourceManualKey:
		return "manual master key"
	default:
		return source
	}
}
