// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"passgen/internal/output"
	"passgen/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Base-word input (exactly one source)
	Words string
	Input string

	// Config
	ConfigFile string

	// Generation parameters
	Years         int
	MinLen        int
	MaxLen        int
	Leet          bool
	LeetCap       int
	EnforcePolicy bool

	// Performance
	Threads int

	// Output
	OutputFile      string
	Format          string
	Quiet           bool
	NoMatchExitCode int

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: password wordlist generator

Expands base words against pattern templates, case forms, and leetspeak
substitutions from a JSON/YAML config.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Base-word input
	fs.StringVar(&opt.Words, "words", "", "comma-separated base words [*]")
	fs.StringVar(&opt.Input, "input", "", "file with one base word per line, '-' = stdin [*]")

	// Config
	fs.StringVar(&opt.ConfigFile, "config", "", "JSON or YAML generation config [*]")

	// Generation parameters
	fs.IntVar(&opt.MinLen, "minlen", 0, "discard candidates shorter than this [0]")
	fs.IntVar(&opt.MaxLen, "maxlen", 0, "discard candidates longer than this (0 = no limit) [0]")
	fs.IntVar(&opt.Years, "years", 2, "year pool = current + N-1 previous years [2]")
	fs.BoolVar(&opt.Leet, "leet", false, "apply exhaustive leetspeak substitution [false]")
	fs.IntVar(&opt.LeetCap, "leet-cap", 0, "max leet variants per candidate (0 = built-in cap) [0]")
	fs.BoolVar(&opt.EnforcePolicy, "enforce-policy", false, "filter by policy requirements in config [false]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "base words expanded in parallel (0 = sequential) [0]")

	// Output
	fs.StringVar(&opt.OutputFile, "output", "", "write candidates to this file (default stdout)")
	fs.StringVar(&opt.Format, "format", output.FormatText, "output format: text | json | jsonl [text]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings and the summary line [false]")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 1, "exit code when no candidates survive [1]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	usingWords := opt.Words != ""
	usingInput := opt.Input != ""
	switch {
	case usingWords && usingInput:
		return opt, errors.New("--words conflicts with --input")
	case !usingWords && !usingInput:
		return opt, errors.New("provide --words or --input")
	}
	if opt.ConfigFile == "" {
		return opt, errors.New("--config is required")
	}
	if opt.Years < 1 {
		return opt, errors.New("--years must be ≥ 1")
	}
	if opt.MinLen < 0 {
		return opt, errors.New("--minlen must be ≥ 0")
	}
	if opt.MaxLen < 0 {
		return opt, errors.New("--maxlen must be ≥ 0")
	}
	if opt.LeetCap < 0 {
		return opt, errors.New("--leet-cap must be ≥ 0")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.NoMatchExitCode < 0 || opt.NoMatchExitCode > 255 {
		return opt, errors.New("--no-match-exit-code must be in 0..255")
	}
	switch opt.Format {
	case output.FormatText, output.FormatJSON, output.FormatJSONL:
	default:
		return opt, fmt.Errorf("invalid --format %q", opt.Format)
	}
	return opt, nil
}
