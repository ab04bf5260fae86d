package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/erraggy/oaskit/codec"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	Target  string
	Output  string
	Format  string
	Stdin   bool
	Strict  bool
	Quiet   bool
	Verbose bool
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.Target, "to", "", "target OpenAPI version: 3.0, 3.1 or a full version (required)")
	fs.StringVar(&flags.Output, "out", "", "output file (default: stdout)")
	fs.StringVar(&flags.Output, "o", "", "output file (shorthand)")
	fs.StringVar(&flags.Format, "format", "", "output format: json or yaml (default: input format)")
	fs.BoolVar(&flags.Stdin, "stdin", false, "read the document from stdin")
	fs.BoolVar(&flags.Strict, "strict", false, "fail instead of writing a lossy conversion")
	fs.BoolVar(&flags.Quiet, "q", false, "do not print conversion warnings")
	fs.BoolVar(&flags.Verbose, "v", false, "log details to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oaskit convert -to <version> [flags] <file>\n\n")
		Writef(fs.Output(), "Convert an OpenAPI document between 3.0 and 3.1.\n")
		Writef(fs.Output(), "Lossy steps are reported as warnings on stderr; -strict makes them fatal.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oaskit convert -to 3.1 openapi.yaml -o openapi-3.1.yaml\n")
		Writef(fs.Output(), "  cat openapi.json | oaskit convert -to 3.0.3 -stdin -format yaml\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	fs, flags := SetupConvertFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	path, err := inputPath(fs.Args(), flags.Stdin)
	if err != nil {
		fs.Usage()
		return fmt.Errorf("convert: %w", err)
	}
	if flags.Target == "" {
		return fmt.Errorf("convert: -to is required")
	}
	dialect, ok := codec.ParseDialect(flags.Target)
	if !ok {
		return fmt.Errorf("convert: unsupported target version %q", flags.Target)
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	logger := newLogger(flags.Verbose)
	res, err := readDocument(path, 0, logger)
	if err != nil {
		return err
	}

	opts := []codec.Option{
		codec.WithDialect(dialect),
		codec.WithStrict(flags.Strict),
		codec.WithLogger(logger),
	}
	if flags.Target != "3.0" && flags.Target != "3.1" {
		opts = append(opts, codec.WithVersion(flags.Target))
	}
	warnings := Stderr
	if flags.Quiet {
		warnings = io.Discard
	}
	return writeDocument(res.Document, flags.Output, outputFormat(flags.Format, res.Format), warnings, opts...)
}
