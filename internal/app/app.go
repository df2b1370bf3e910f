// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"passgen-core/engine"
	"passgen-core/leet"
	"passgen-core/pattern"
	"passgen/internal/cli"
	"passgen/internal/config"
	"passgen/internal/input"
	"passgen/internal/runner"
	"passgen/internal/version"
	"passgen/internal/writers"
)

// RunContext executes the CLI with explicit streams and returns the process
// exit code: 0 ok, 2 usage/config error, 3 runtime/write error, 130
// cancelled, or the configured no-match exit code when nothing survives.
func RunContext(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("passgen")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return 2
	}

	if opts.Version {
		fmt.Fprintf(outw, "passgen version %s\n", version.Version)
		return 0
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	words, err := input.Words(opts.Words, opts.Input, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if len(words) == 0 {
		fmt.Fprintln(stderr, "error: no base words provided")
		return 2
	}

	forms, err := cfg.CaseForms()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	table, err := cfg.LeetTable()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	reqs, unknown := cfg.Policy()
	if !opts.Quiet {
		for _, u := range unknown {
			fmt.Fprintf(stderr, "warning: unknown policy requirement %q (ignored)\n", u)
		}
		if opts.MaxLen > 0 && opts.MinLen > opts.MaxLen {
			fmt.Fprintf(stderr, "warning: --minlen (%d) exceeds --maxlen (%d); no candidates can survive\n",
				opts.MinLen, opts.MaxLen)
		}
		if len(forms) == 0 {
			fmt.Fprintln(stderr, "warning: case_variants is empty; no candidates can survive")
		}
	}

	dest := io.Writer(outw)
	if opts.OutputFile != "" {
		fh, err := os.Create(opts.OutputFile)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
		defer func() { _ = fh.Close() }()
		dest = bufio.NewWriter(fh)
	}

	eng := engine.New(cfg.TemplateGroups(), cfg.Pools(opts.Years, time.Now()), engine.Options{
		CaseForms:     forms,
		ApplyLeet:     opts.Leet,
		LeetTable:     table,
		LeetLimits:    leet.Limits{MaxVariants: opts.LeetCap},
		MinLen:        opts.MinLen,
		MaxLen:        opts.MaxLen,
		EnforcePolicy: opts.EnforcePolicy,
		Policy:        reqs,
	})

	inCh, writeErr := writers.StartCandidateWriter(dest, opts.Format, 256)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	total, perr := runner.ForEachCandidate(ctx, runner.Config{Threads: opts.Threads}, eng, words,
		func(s string) error {
			select {
			case inCh <- s:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if bw, ok := dest.(*bufio.Writer); ok {
		if e := bw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			fmt.Fprintln(stderr, e)
			return 3
		}
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, perr)
		var uerr *pattern.UnknownSlotError
		if errors.As(perr, &uerr) {
			return 2
		}
		return 3
	}

	if !opts.Quiet {
		fmt.Fprintf(stderr, "wrote %d candidates\n", total)
	}
	if total == 0 {
		return opts.NoMatchExitCode
	}
	return 0
}

// Run parses argv against the OS streams with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, os.Stdin, stdout, stderr)
}
