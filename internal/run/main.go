package run

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"discardwhile/internal/config"
	"discardwhile/seqs"

	"gopkg.in/yaml.v3"
)

// ErrExhausted is returned when every input line was discarded.
var ErrExhausted = errors.New("Exhausted")

type Result struct {
	Found     bool     `json:"found" yaml:"found"`
	Line      string   `json:"line" yaml:"line"`
	Discarded uint     `json:"discarded" yaml:"discarded"`
	Rest      []string `json:"rest,omitempty" yaml:"rest,omitempty"`
}

func Main(c *config.Config) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGPIPE,
	)
	defer stop()
	return run(ctx, c)
}

func run(ctx context.Context, c *config.Config) error {
	predicate, err := c.Rule.Compile()
	if err != nil {
		return err
	}

	src := newSource(ctx, c.Reader, c.Files)
	defer src.Close()

	var it seqs.Iterator[string] = src
	if c.Debug {
		it = seqs.Inspect(it, func(line string) {
			slog.Debug("pull", slog.String("line", line))
		})
	}
	if c.Max > 0 {
		it = seqs.Limit(it, c.Max)
	}

	slog.Debug("start scan", slog.Any("files", c.Files), slog.String("overflow", c.Overflow.String()))
	line, found, n := seqs.DiscardWhileN[uint](it, predicate, c.Overflow)
	if err := src.Err(); err != nil {
		return err
	}
	slog.Debug("end scan", slog.Bool("found", found), slog.Uint64("discarded", uint64(n)))

	r := Result{
		Found:     found,
		Line:      line,
		Discarded: n,
	}
	if c.Rest && found {
		r.Rest = seqs.Collect(it)
		if err := src.Err(); err != nil {
			return err
		}
	}

	if err := write(c, r); err != nil {
		return fmt.Errorf("%w: write result", err)
	}
	if !found {
		return ErrExhausted
	}
	return nil
}

func write(c *config.Config, r Result) error {
	switch c.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(c.Writer)
		enc.SetEscapeHTML(false)
		return enc.Encode(r)
	case config.FormatYAML:
		enc := yaml.NewEncoder(c.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeText(c.Writer, c.Count, r)
	}
}

func writeText(w io.Writer, count bool, r Result) error {
	if count {
		if _, err := fmt.Fprintln(w, r.Discarded); err != nil {
			return err
		}
	}
	if !r.Found {
		return nil
	}
	if _, err := fmt.Fprintln(w, r.Line); err != nil {
		return err
	}
	for _, line := range r.Rest {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
