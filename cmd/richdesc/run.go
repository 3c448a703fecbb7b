package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	richdesc "github.com/mlanted/go-richdesc"
)

// Sentinel errors for CLI operations.
var (
	ErrReadInput   = errors.New("failed to read input")
	ErrWriteOutput = errors.New("failed to write output")
)

// filePermissions is the mode for created output files.
const filePermissions = 0o644 // rw-r--r--

// run reads the input, renders it, and writes the result. stdin is the
// fallback input source so the tool composes in pipelines.
func run(flags *cliFlags, stdin io.Reader, stdout io.Writer) error {
	svc, err := buildService(flags)
	if err != nil {
		return err
	}

	raw, err := readInput(flags.input, stdin)
	if err != nil {
		return err
	}

	markup := svc.Render(raw)

	if err := writeOutput(flags.output, markup, stdout); err != nil {
		return err
	}

	if !flags.quiet && flags.output != "" {
		fmt.Fprintf(os.Stderr, "Created %s\n", flags.output)
	}
	return nil
}

// buildService assembles a Service from CLI flags.
func buildService(flags *cliFlags) (*richdesc.Service, error) {
	dialect, err := richdesc.ParseDialect(flags.dialect)
	if err != nil {
		return nil, err
	}

	opts := []richdesc.Option{richdesc.WithDialect(dialect)}

	if flags.policy != "" {
		policy, err := richdesc.LoadPolicy(flags.policy)
		if err != nil {
			return nil, err
		}
		opts = append(opts, richdesc.WithPolicy(policy))
	}
	if flags.fallback != "" {
		opts = append(opts, richdesc.WithFallback(flags.fallback))
	}

	return richdesc.New(opts...), nil
}

// readInput reads the named file, or stdin when path is empty or "-".
func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- input path is operator-provided
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return string(data), nil
}

// writeOutput writes markup to the named file, or stdout when path is
// empty.
func writeOutput(path, markup string, stdout io.Writer) error {
	if path == "" {
		if _, err := io.WriteString(stdout, markup+"\n"); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}

	if err := os.WriteFile(path, []byte(markup), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
