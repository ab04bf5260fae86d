package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/erraggy/oaskit"
	"github.com/erraggy/oaskit/cmd/oaskit/commands"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes a command and returns the process exit code.
func run(args []string) int {
	if len(args) < 1 {
		printUsage()
		return 1
	}

	var err error
	switch command := args[0]; command {
	case "version", "-v", "--version":
		fmt.Printf("oaskit v%s\n", oaskit.Version())
		return 0
	case "help", "-h", "--help":
		printUsage()
		return 0
	case "assemble":
		err = commands.HandleAssemble(args[1:])
	case "convert":
		err = commands.HandleConvert(args[1:])
	case "prune":
		err = commands.HandlePrune(args[1:])
	case "validate":
		err = commands.HandleValidate(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		return 1
	}

	if err != nil {
		if !errors.Is(err, commands.ErrInvalid) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `oaskit - OpenAPI assembly and conversion tools

Usage:
  oaskit <command> [flags]

Commands:
  assemble   Merge a reader model and static files into one document
  convert    Convert a document between OpenAPI 3.0 and 3.1
  prune      Remove unused components
  validate   Validate the structure of a document
  version    Show version information
  help       Show this help message

Run 'oaskit <command> -h' for more information on a command.
`)
}
