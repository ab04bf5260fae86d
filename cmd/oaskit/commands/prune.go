package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/erraggy/oaskit/filter"
	"github.com/erraggy/oaskit/model"
)

// PruneFlags contains flags for the prune command
type PruneFlags struct {
	Categories string
	Output     string
	Format     string
	Stdin      bool
	Quiet      bool
	Verbose    bool
}

// SetupPruneFlags creates and configures a FlagSet for the prune command.
func SetupPruneFlags() (*flag.FlagSet, *PruneFlags) {
	fs := flag.NewFlagSet("prune", flag.ContinueOnError)
	flags := &PruneFlags{}

	fs.StringVar(&flags.Categories, "categories", "", "comma-separated component categories to prune (default: all)")
	fs.StringVar(&flags.Output, "out", "", "output file (default: stdout)")
	fs.StringVar(&flags.Output, "o", "", "output file (shorthand)")
	fs.StringVar(&flags.Format, "format", "", "output format: json or yaml (default: input format)")
	fs.BoolVar(&flags.Stdin, "stdin", false, "read the document from stdin")
	fs.BoolVar(&flags.Quiet, "q", false, "do not list removed components")
	fs.BoolVar(&flags.Verbose, "v", false, "log details to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oaskit prune [flags] <file>\n\n")
		Writef(fs.Output(), "Remove components that nothing in the document refers to, repeating\n")
		Writef(fs.Output(), "until no more can be removed.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oaskit prune openapi.yaml -o pruned.yaml\n")
		Writef(fs.Output(), "  oaskit prune -categories schemas,parameters openapi.json\n")
	}

	return fs, flags
}

// HandlePrune executes the prune command
func HandlePrune(args []string) error {
	fs, flags := SetupPruneFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	path, err := inputPath(fs.Args(), flags.Stdin)
	if err != nil {
		fs.Usage()
		return fmt.Errorf("prune: %w", err)
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	categories, err := parseCategories(flags.Categories)
	if err != nil {
		return err
	}

	logger := newLogger(flags.Verbose)
	res, err := readDocument(path, 0, logger)
	if err != nil {
		return err
	}

	opts := []filter.UnusedOption{filter.WithLogger(logger)}
	if len(categories) > 0 {
		opts = append(opts, filter.WithCategories(categories...))
	}
	unused := filter.NewUnusedComponents(opts...)
	filter.Apply(res.Document, unused)

	report := Stderr
	if flags.Quiet {
		report = io.Discard
	}
	for _, key := range unused.Removed() {
		Writef(report, "removed %s\n", key)
	}
	Writef(report, "%d component(s) removed\n", len(unused.Removed()))

	return writeDocument(res.Document, flags.Output, outputFormat(flags.Format, res.Format), report)
}

func parseCategories(list string) ([]model.Category, error) {
	if list == "" {
		return nil, nil
	}
	var out []model.Category
	for name := range strings.SplitSeq(list, ",") {
		c, ok := model.ParseCategory(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("prune: unknown component category %q", name)
		}
		out = append(out, c)
	}
	return out, nil
}
