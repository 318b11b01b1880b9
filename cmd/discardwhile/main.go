package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"discardwhile/internal/config"
	"discardwhile/internal/run"
	"discardwhile/seqs"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const usage = `discardwhile -- skip lines while they match, print the first line that does not

# Usage

discardwhile [flags] [FILE...]

Reads FILEs in order; '-' or no FILE reads standard input.
Exits 0 when a non-matching line was found, 1 when every line was discarded, 2 on error.

# Examples

// print the first line that is neither blank nor a comment
discardwhile -b -p '#' config.ini

// strip a license header, keep the rest of the file
discardwhile -p '//' -b --rest main.go

// how many lines precede the YAML front matter delimiter
discardwhile -v -e '^---$' -c README.md

// the same, as JSON
discardwhile -v -e '^---$' -o json README.md

# Config file

--config takes a YAML document whose keys are the long flag names
(regexp, prefix, blank, invert, count, rest, max, format, overflow, log_file, debug).
Flags given on the command line override it.

# Flags

`

const (
	exitFound     = 0
	exitExhausted = 1
	exitError     = 2
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("discardwhile", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	var (
		debug      = fs.Bool("debug", false, "enable debug logs")
		configFile = fs.String("config", "", "YAML config file")
		logFile    = fs.String("log-file", "", "write logs to this file, rotated by size, instead of stderr")
		blank      = fs.BoolP("blank", "b", false, "blank lines match")
		invert     = fs.BoolP("invert", "v", false, "discard lines while they do NOT match")
		count      = fs.BoolP("count", "c", false, "print the number of discarded lines first")
		rest       = fs.BoolP("rest", "r", false, "print the lines after the first non-matching one too")
		maxLines   = fs.UintP("max", "n", 0, "read at most this many lines; 0 means no limit")
		format     = fs.StringP("format", "o", string(config.FormatText), "output format: text, json or yaml")
		overflow   = fs.String("overflow", "default", `discard counter overflow policy: default, wrap, saturate or panic;
default is panic in builds with -tags checked and wrap otherwise`)
		regexps  []string
		prefixes []string
	)
	// workaround: https://github.com/spf13/pflag/issues/370
	fs.StringArrayVarP(&regexps, "regexp", "e", nil, "lines matching this regexp match; repeatable")
	fs.StringArrayVarP(&prefixes, "prefix", "p", nil, "lines starting with this prefix match; repeatable")

	err := fs.Parse(args)
	if errors.Is(err, pflag.ErrHelp) {
		return exitFound
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return exitError
	}

	c := config.NewConfig(stdin, stdout)
	if *configFile != "" {
		if err := c.LoadFile(*configFile); err != nil {
			fmt.Fprintln(stderr, err)
			return exitError
		}
	}

	var flagErr error
	overrides := map[string]func(){
		"debug":    func() { c.Debug = *debug },
		"log-file": func() { c.LogFile = *logFile },
		"regexp":   func() { c.Regexps = regexps },
		"prefix":   func() { c.Prefixes = prefixes },
		"blank":    func() { c.Blank = *blank },
		"invert":   func() { c.Invert = *invert },
		"count":    func() { c.Count = *count },
		"rest":     func() { c.Rest = *rest },
		"max":      func() { c.Max = *maxLines },
		"format":   func() { c.Format = config.Format(*format) },
		"overflow": func() {
			o, err := seqs.ParseOverflow(*overflow)
			if err != nil {
				flagErr = fmt.Errorf("%w: %w", config.ErrConfig, err)
				return
			}
			c.Overflow = o
		},
	}
	fs.Visit(func(f *pflag.Flag) {
		if set, ok := overrides[f.Name]; ok {
			set()
		}
	})

	c.SetupLogger(stderr)
	defer c.Close()
	if flagErr != nil {
		return fail(flagErr)
	}
	if err := c.Init(fs.Args()); err != nil {
		return fail(err)
	}

	if c.Debug {
		cy, _ := yaml.Marshal(c)
		slog.Debug("config", slog.String("yaml", string(cy)), slog.Any("files", c.Files))
	}
	return fail(run.Main(c))
}

func fail(err error) int {
	switch {
	case err == nil:
		return exitFound
	case errors.Is(err, run.ErrExhausted):
		slog.Debug("exhausted")
		return exitExhausted
	default:
		slog.Error("exit", slog.Any("err", err))
		return exitError
	}
}
