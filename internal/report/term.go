package report

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// DetectColor reports whether w is a terminal that should receive ANSI colour.
// NO_COLOR and CLICOLOR_FORCE are honoured through termenv.
func DetectColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.NewOutput(f).EnvColorProfile() != termenv.Ascii
}
