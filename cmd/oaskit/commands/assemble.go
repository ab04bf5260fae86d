package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oaskit/assembly"
	"github.com/erraggy/oaskit/codec"
	"github.com/erraggy/oaskit/loader"
)

// AssembleFlags contains flags for the assemble command
type AssembleFlags struct {
	Config       string
	Reader       string
	Static       stringList
	Output       string
	Format       string
	Version      string
	ArchiveName  string
	Title        string
	Servers      stringList
	RemoveUnused bool
	MaxSize      int64
	Validate     bool
	FailOnDupIDs bool
	Verbose      bool
}

// SetupAssembleFlags creates and configures a FlagSet for the assemble command.
func SetupAssembleFlags() (*flag.FlagSet, *AssembleFlags) {
	fs := flag.NewFlagSet("assemble", flag.ContinueOnError)
	flags := &AssembleFlags{}

	fs.StringVar(&flags.Config, "config", "", "YAML assembly configuration file")
	fs.StringVar(&flags.Reader, "reader", "", "document used as the reader model (lowest precedence)")
	fs.Var(&flags.Static, "static", "static file; repeat for more, the first one wins conflicts")
	fs.StringVar(&flags.Output, "out", "", "output file (default: stdout)")
	fs.StringVar(&flags.Output, "o", "", "output file (shorthand)")
	fs.StringVar(&flags.Format, "format", FormatYAML, "output format: json or yaml")
	fs.StringVar(&flags.Version, "version", "", "openapi version of the result, e.g. 3.0.3")
	fs.StringVar(&flags.ArchiveName, "archive-name", "", "name used for the default title")
	fs.StringVar(&flags.Title, "title", "", "info title of the result")
	fs.Var(&flags.Servers, "server", "server URL; repeat for more")
	fs.BoolVar(&flags.RemoveUnused, "remove-unused", false, "remove components nothing refers to")
	fs.Int64Var(&flags.MaxSize, "max-size", 0, "maximum size of each static file in bytes")
	fs.BoolVar(&flags.Validate, "validate", false, "validate the structure of the result")
	fs.BoolVar(&flags.FailOnDupIDs, "fail-on-duplicate-ids", false, "fail when operationIds repeat")
	fs.BoolVar(&flags.Verbose, "v", false, "log pipeline stages to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oaskit assemble [flags]\n\n")
		Writef(fs.Output(), "Merge a reader model and static files into one OpenAPI document.\n")
		Writef(fs.Output(), "Static files win conflicts with the reader model.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oaskit assemble -static openapi.yaml -static openapi.json -o api.yaml\n")
		Writef(fs.Output(), "  oaskit assemble -reader base.yaml -static extra.yaml -remove-unused\n")
		Writef(fs.Output(), "  oaskit assemble -config assembly.yaml -format json\n")
	}

	return fs, flags
}

// HandleAssemble executes the assemble command
func HandleAssemble(args []string) error {
	fs, flags := SetupAssembleFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("assemble command takes no positional arguments")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	cfg, err := loadConfig(flags.Config)
	if err != nil {
		return err
	}
	applyAssembleFlags(fs, flags, cfg)

	logger := newLogger(flags.Verbose)
	c, err := assembly.New(cfg, assembly.WithLogger(logger))
	if err != nil {
		return err
	}

	if flags.Reader != "" {
		res, err := readDocument(flags.Reader, cfg.StaticFileMaxSize, logger)
		if err != nil {
			return err
		}
		if err := c.SetReaderModel(res.Document); err != nil {
			return err
		}
	}
	if len(flags.Static) > 0 {
		primary := loader.FileSource(flags.Static[0])
		var standard []loader.Source
		for _, path := range flags.Static[1:] {
			standard = append(standard, loader.FileSource(path))
		}
		if err := c.LoadStatic(context.Background(), &primary, standard...); err != nil {
			return err
		}
	}

	doc, err := c.Assemble()
	if err != nil {
		return err
	}
	return writeDocument(doc, flags.Output, codec.ParseFormat(flags.Format), Stderr)
}

// loadConfig reads an assembly configuration file. Keys it does not know
// are an error. Without a path it returns the default configuration.
func loadConfig(path string) (*assembly.Config, error) {
	cfg := assembly.DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path) //nolint:gosec // path is caller provided
	if err != nil {
		return nil, fmt.Errorf("opening config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return cfg, nil
}

// applyAssembleFlags overrides configuration values with the flags that
// were given on the command line.
func applyAssembleFlags(fs *flag.FlagSet, flags *AssembleFlags, cfg *assembly.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "version":
			cfg.OpenAPIVersion = flags.Version
		case "archive-name":
			cfg.ArchiveName = flags.ArchiveName
		case "title":
			cfg.Info.Title = flags.Title
		case "server":
			cfg.Servers = flags.Servers
		case "remove-unused":
			cfg.RemoveUnusedComponents = flags.RemoveUnused
		case "max-size":
			cfg.StaticFileMaxSize = flags.MaxSize
		case "validate":
			cfg.ValidateStructure = flags.Validate
		case "fail-on-duplicate-ids":
			if flags.FailOnDupIDs {
				cfg.DuplicateOperationIDBehavior = assembly.DuplicateOperationIDFail
			} else {
				cfg.DuplicateOperationIDBehavior = assembly.DuplicateOperationIDWarn
			}
		}
	})
}
