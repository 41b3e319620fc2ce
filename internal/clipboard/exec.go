package clipboard

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// command is one platform utility able to copy or paste clipboard text
type command struct {
	name string
	args []string
}

// Exec drives the platform's clipboard utilities (pbcopy, wl-copy, xclip, ...)
type Exec struct {
	goos     string
	getenv   func(string) string
	lookPath func(string) (string, error)
}

// NewExec creates a clipboard backend using the utilities installed on this host
func NewExec() *Exec {
	return &Exec{
		goos:     runtime.GOOS,
		getenv:   os.Getenv,
		lookPath: exec.LookPath,
	}
}

// copyCandidates returns the copy utilities to try, in order of preference
func (e *Exec) copyCandidates() []command {
	switch e.goos {
	case "darwin": // macOS
		return []command{{name: "pbcopy"}}
	case "windows":
		return []command{{name: "clip"}}
	default:
		var cands []command
		if e.getenv("WAYLAND_DISPLAY") != "" {
			cands = append(cands, command{name: "wl-copy"})
		}
		return append(cands,
			command{name: "xclip", args: []string{"-selection", "clipboard"}},
			command{name: "xsel", args: []string{"--clipboard", "--input"}},
		)
	}
}

// pasteCandidates returns the paste utilities to try, in order of preference
func (e *Exec) pasteCandidates() []command {
	switch e.goos {
	case "darwin":
		return []command{{name: "pbpaste"}}
	case "windows":
		return []command{{name: "powershell", args: []string{"-NoProfile", "-Command", "Get-Clipboard -Raw"}}}
	default:
		var cands []command
		if e.getenv("WAYLAND_DISPLAY") != "" {
			cands = append(cands, command{name: "wl-paste", args: []string{"--no-newline"}})
		}
		return append(cands,
			command{name: "xclip", args: []string{"-selection", "clipboard", "-o"}},
			command{name: "xsel", args: []string{"--clipboard", "--output"}},
		)
	}
}

// resolve returns the first candidate whose utility is installed
func (e *Exec) resolve(cands []command) (*exec.Cmd, error) {
	for _, cand := range cands {
		path, err := e.lookPath(cand.name)
		if err != nil {
			continue
		}
		return exec.Command(path, cand.args...), nil
	}
	return nil, fmt.Errorf("%w: no clipboard utility found on %s (install xclip, xsel or wl-clipboard)", ErrUnavailable, e.goos)
}

// HasText reports whether the clipboard currently holds non-empty text
func (e *Exec) HasText() bool {
	data, err := e.ReadText()
	return err == nil && len(data) > 0
}

// ReadText returns the clipboard text as printed by the paste utility
func (e *Exec) ReadText() ([]byte, error) {
	cmd, err := e.resolve(e.pasteCandidates())
	if err != nil {
		return nil, err
	}

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to read clipboard with %s: %w", cmd.Path, err)
	}
	if stdout.Len() == 0 {
		return nil, ErrNoText
	}
	return stdout.Bytes(), nil
}

// WriteText pipes data into the copy utility
func (e *Exec) WriteText(data []byte) error {
	cmd, err := e.resolve(e.copyCandidates())
	if err != nil {
		return err
	}

	cmd.Stdin = bytes.NewReader(data)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to write clipboard with %s: %w", cmd.Path, err)
	}
	return nil
}
