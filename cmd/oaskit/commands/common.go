// Package commands provides CLI command handlers for oaskit.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/erraggy/oaskit"
	"github.com/erraggy/oaskit/codec"
	"github.com/erraggy/oaskit/internal/pathutil"
	"github.com/erraggy/oaskit/model"
)

// Output format constants
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// outputFileMode keeps written documents private to their owner.
const outputFileMode os.FileMode = 0o600

// Stdin and Stdout are the streams commands read from and write to. Tests
// replace them.
var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Writef writes formatted output to w. A failed write is reported on
// os.Stderr since w is usually the terminal itself.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// stringList is a flag that may be given more than once.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// ValidateOutputFormat validates an output format. The empty format means
// "same as the input".
func ValidateOutputFormat(format string) error {
	switch format {
	case "", FormatJSON, FormatYAML:
		return nil
	}
	return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", format, FormatJSON, FormatYAML)
}

// inputPath resolves the input of a single-document command: either the
// one positional argument or stdin.
func inputPath(args []string, stdin bool) (string, error) {
	switch {
	case len(args) == 0 && !stdin:
		return "", errors.New("requires an input file or -stdin")
	case len(args) > 0 && stdin:
		return "", errors.New("specify either an input file or -stdin, not both")
	case stdin:
		return StdinFilePath, nil
	case len(args) > 1:
		return "", fmt.Errorf("expected exactly one input file, got %d", len(args))
	}
	return args[0], nil
}

// readDocument reads one document from path, or from Stdin for "-".
func readDocument(path string, maxSize int64, logger oaskit.Logger) (*codec.Result, error) {
	opts := []codec.Option{codec.WithLogger(logger)}
	if maxSize > 0 {
		opts = append(opts, codec.WithMaxSize(maxSize))
	}
	r, err := codec.NewReader(opts...)
	if err != nil {
		return nil, err
	}
	if path == StdinFilePath {
		return r.ReadFrom("<stdin>", Stdin, codec.FormatUnknown)
	}
	return r.ReadFile(path)
}

// outputFormat picks the format flag value, else the input format, else YAML.
func outputFormat(flag string, input codec.Format) codec.Format {
	if f := codec.ParseFormat(flag); f != codec.FormatUnknown {
		return f
	}
	if input != codec.FormatUnknown {
		return input
	}
	return codec.FormatYAML
}

// writeDocument encodes doc and writes it to out, or to Stdout when out is
// empty. Conversion warnings go to warnings.
func writeDocument(doc *model.OpenAPI, out string, format codec.Format, warnings io.Writer, opts ...codec.Option) error {
	w, err := codec.NewWriter(format, opts...)
	if err != nil {
		return err
	}
	res, err := w.Write(doc)
	if res != nil {
		for _, warn := range res.Warnings {
			Writef(warnings, "%s\n", warn)
		}
	}
	if err != nil {
		return err
	}
	if out == "" {
		_, err = Stdout.Write(res.Data)
		return err
	}
	path, err := pathutil.SanitizeOutputPath(out)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, res.Data, outputFileMode); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}

// newLogger returns a text logger on Stderr, at debug level when verbose.
func newLogger(verbose bool) oaskit.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return oaskit.NewSlogAdapter(slog.New(slog.NewTextHandler(Stderr, &slog.HandlerOptions{Level: level})))
}
