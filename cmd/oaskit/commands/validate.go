package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/oaskit"
	"github.com/erraggy/oaskit/internal/issues"
	"github.com/erraggy/oaskit/validator"
)

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	Stdin      bool
	Quiet      bool
	NoWarnings bool
	Verbose    bool
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &ValidateFlags{}

	fs.BoolVar(&flags.Stdin, "stdin", false, "read the document from stdin")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the validation result")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress reader warnings (only show errors)")
	fs.BoolVar(&flags.Verbose, "v", false, "log details to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oaskit validate [flags] <file>\n\n")
		Writef(fs.Output(), "Validate the structure of an OpenAPI 3.0 or 3.1 document against the\n")
		Writef(fs.Output(), "version it declares.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Validation successful\n")
		Writef(fs.Output(), "  1    Validation failed with errors\n")
	}

	return fs, flags
}

// ErrInvalid is returned by HandleValidate for a document with errors.
var ErrInvalid = errors.New("validation failed")

// HandleValidate executes the validate command
func HandleValidate(args []string) error {
	fs, flags := SetupValidateFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	path, err := inputPath(fs.Args(), flags.Stdin)
	if err != nil {
		fs.Usage()
		return fmt.Errorf("validate: %w", err)
	}

	res, err := readDocument(path, 0, newLogger(flags.Verbose))
	if err != nil {
		return err
	}
	list, err := validator.New().Issues(res.Document, res.Dialect)
	if err != nil {
		return err
	}

	if !flags.Quiet {
		Writef(Stdout, "oaskit version: %s\n", oaskit.Version())
		Writef(Stdout, "Specification: %s\n", formatSpecPath(path))
		Writef(Stdout, "OAS Version: %s\n\n", res.Version)
		if !flags.NoWarnings {
			for _, w := range res.Warnings {
				Writef(Stdout, "  %s\n", w)
			}
		}
		for _, issue := range list {
			Writef(Stdout, "  %s\n", issue)
		}
	}

	if n := issues.Count(list, issues.SeverityError); n > 0 {
		Writef(Stdout, "✗ Validation failed: %d error(s)\n", n)
		return ErrInvalid
	}
	Writef(Stdout, "✓ Validation passed\n")
	return nil
}

// formatSpecPath returns a display-friendly path for the specification.
func formatSpecPath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}
