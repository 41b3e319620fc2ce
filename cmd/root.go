package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"clipboard/internal/clipboard"
	"clipboard/internal/config"
	"clipboard/internal/logging"
	"clipboard/internal/report"
	"clipboard/internal/transfer"
	"clipboard/internal/validation"
)

// Deps are the process-level collaborators of a run
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer

	// Clipboard overrides the backend selected with --backend when non-nil
	Clipboard clipboard.Service

	// DetectColor decides once whether Stdout receives ANSI colour
	DetectColor func(io.Writer) bool
}

type app struct {
	deps Deps
	rep  *report.Reporter

	input    string
	output   string
	backend  string
	logLevel string
	strict   bool
	noColor  bool
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   config.AppName + " [OPTIONS].. <file>",
		Short: "A CLI tool to copy/paste to/from clipboard/files",
		Long: `Clipboard copies text between the system clipboard and files.

Exactly one source and one destination are used per run. A side that is not
given a file is the clipboard; at least one side must be a file.

Common usage:
  clipboard -i notes.txt              # Copy notes.txt to the clipboard
  clipboard -o paste.txt              # Write the clipboard to paste.txt
  clipboard -i a.txt -o b.txt         # Copy a.txt to b.txt, clipboard untouched
  clipboard --backend exec -i a.txt   # Use pbcopy/xclip/xsel/wl-copy directly`,
		Version:               config.Version,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run()
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetOut(a.deps.Stdout)
	rootCmd.SetErr(a.deps.Stdout)
	rootCmd.SetVersionTemplate("Version {{.Version}}\n")

	flags := rootCmd.Flags()
	flags.StringVarP(&a.input, "input", "i", "", "Input `file` (clipboard if not specified)")
	flags.StringVarP(&a.output, "output", "o", "", "Output `file` (clipboard if not specified)")
	flags.BoolP("help", "h", false, "Print usage")
	flags.BoolP("version", "v", false, "Print version")
	flags.StringVar(&a.backend, "backend", config.EnvOrDefault(config.BackendEnv, config.DefaultBackend),
		"Clipboard backend: system, exec (env "+config.BackendEnv+")")
	flags.BoolVar(&a.strict, "strict", false, "Treat every destination failure as fatal")
	flags.StringVar(&a.logLevel, "log-level", config.EnvOrDefault(config.LogLevelEnv, config.DefaultLogLevel),
		"Diagnostic log level on stderr: debug, info, warn, error (env "+config.LogLevelEnv+")")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable coloured output")

	rootCmd.AddCommand(newDocsCommand(rootCmd))

	return rootCmd
}

// reporter resolves the colour decision on first use and keeps it for the run
func (a *app) reporter() *report.Reporter {
	if a.rep == nil {
		color := !a.noColor && a.deps.DetectColor(a.deps.Stdout)
		a.rep = report.New(a.deps.Stdout, color)
	}
	return a.rep
}

func (a *app) run() error {
	req, err := transfer.NewRequest(a.input, a.output)
	if err != nil {
		return err
	}
	if err := validation.ValidateBackend(a.backend); err != nil {
		return err
	}
	if err := validation.ValidateLogLevel(a.logLevel); err != nil {
		return err
	}

	logger := logging.New(a.logLevel, a.deps.Stderr)

	clip := a.deps.Clipboard
	if clip == nil {
		if clip, err = clipboard.New(a.backend); err != nil {
			return err
		}
		logger.Debug("Clipboard backend selected.", "backend", a.backend)
	}

	t := transfer.New(clip, transfer.WithStrict(a.strict), transfer.WithLogger(logger))
	result, err := t.Run(req)
	if result != nil {
		a.reporter().Status(result.Message)
	}
	return err
}

// Run executes the command line args and returns the process exit code
func Run(args []string, deps Deps) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.DetectColor == nil {
		deps.DetectColor = report.DetectColor
	}

	a := &app{deps: deps}
	rootCmd := newRootCommand(a)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return a.reporter().Fail(err)
}

// Execute runs the command line of this process and exits with its code
func Execute() {
	os.Exit(Run(os.Args[1:], Deps{}))
}
