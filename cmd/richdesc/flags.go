package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for flag parsing.
var ErrTooManyArgs = errors.New("at most one input file may be given")

// cliFlags holds parsed command-line options.
type cliFlags struct {
	input    string // positional; empty or "-" means stdin
	output   string
	policy   string
	dialect  string
	fallback string
	quiet    bool
	version  bool
}

// parseFlags parses args (including the program name at args[0]).
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("richdesc", flag.ContinueOnError)

	f := &cliFlags{}
	fs.StringVarP(&f.output, "output", "o", "", "write markup to `file` (default stdout)")
	fs.StringVar(&f.policy, "policy", "", "YAML policy `file` overriding the default allowlist")
	fs.StringVar(&f.dialect, "dialect", "constrained", "markdown dialect: constrained or extended")
	fs.StringVar(&f.fallback, "fallback", "", "placeholder `text` for empty or unusable input")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress progress output")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: richdesc [flags] [input]\n\n")
		fmt.Fprintf(fs.Output(), "Render untrusted catalog rich text into safe HTML.\n")
		fmt.Fprintf(fs.Output(), "Reads from input (or stdin) and writes to --output (or stdout).\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	if fs.NArg() > 1 {
		return nil, ErrTooManyArgs
	}
	f.input = fs.Arg(0)

	return f, nil
}
