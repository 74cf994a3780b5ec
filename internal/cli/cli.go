// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/retrodump/internal/options"
)

// ParseFlags parses command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "" && opts.Batch == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if opts.Batch == "" && len(args) > 0 {
		opts.Input = args[0]
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage and all flag defaults.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrodump [options] <memory dump .json file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after dump file, please pass the dump file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Format = strings.ToLower(strings.TrimSpace(opts.Format))
	if opts.Format == "txt" || opts.Format == "prose" {
		opts.Format = options.FormatText
	}

	validFormats := []string{"", options.FormatJSON, options.FormatText}
	for _, valid := range validFormats {
		if opts.Format == valid {
			return nil
		}
	}

	return fmt.Errorf("unsupported output format: %s. Valid options: %s, %s",
		opts.Format, options.FormatJSON, options.FormatText)
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input memory dump .json file")
	flags.StringVar(&opts.Output, "o", "", "name of the output file, printed on console if no name given")
	flags.StringVar(&opts.Tables, "t", options.DefaultTables, "directory containing the charset, species, moves, types and items table files")
	flags.StringVar(&opts.Layout, "l", "", "memory layout profile .ini file, the built in red-blue-en layout is used if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically output file naming, for example *.json")
	flags.StringVar(&opts.Format, "f", "", "output format (json/text), detected from the output file extension if not given")
	flags.BoolVar(&opts.Verify, "verify", false, "verify that decoding the dump a second time produces identical output")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
