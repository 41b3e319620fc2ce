// Package report prints status and error lines and maps failures to exit codes.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	clipErrors "clipboard/internal/errors"
)

// ErrorMarker prefixes every error line
const ErrorMarker = "Error:"

var errorRed = lipgloss.Color("1")

// FormatError returns the uncoloured error line for msg
func FormatError(msg string) string {
	return ErrorMarker + " " + msg
}

// Reporter writes user-facing lines to a single output
type Reporter struct {
	out    io.Writer
	marker lipgloss.Style
}

// New creates a Reporter. color is decided once by the caller, usually with DetectColor.
func New(out io.Writer, color bool) *Reporter {
	renderer := lipgloss.NewRenderer(out)
	if color {
		renderer.SetColorProfile(termenv.ANSI)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &Reporter{
		out:    out,
		marker: renderer.NewStyle().Foreground(errorRed),
	}
}

// Status prints a confirmation line. Empty messages print nothing.
func (r *Reporter) Status(msg string) {
	if msg == "" {
		return
	}
	fmt.Fprintln(r.out, msg)
}

// Error prints msg behind the error marker
func (r *Reporter) Error(msg string) {
	fmt.Fprintf(r.out, "%s %s\n", r.marker.Render(ErrorMarker), msg)
}

// Fail reports err and returns the exit code it maps to. A nil error maps to 0.
func (r *Reporter) Fail(err error) int {
	ce := clipErrors.AsClipError(err)
	if ce == nil {
		return 0
	}
	r.Error(ce.Message)
	return ce.ExitCode()
}
