package run

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"discardwhile/internal/config"
	"discardwhile/seqs"
)

// source yields the lines of several files in order, opening each file only
// when the previous one is exhausted.
type source struct {
	ctx   context.Context
	stdin io.Reader
	files []string

	cur    *seqs.LineIter
	name   string
	closer io.Closer
	err    error
}

func newSource(ctx context.Context, stdin io.Reader, files []string) *source {
	return &source{
		ctx:   ctx,
		stdin: stdin,
		files: files,
	}
}

func (s *source) Next() (string, bool) {
	for s.err == nil {
		if s.cur != nil {
			if line, ok := s.cur.Next(); ok {
				return line, true
			}
			if err := s.cur.Err(); err != nil {
				s.err = fmt.Errorf("%w: read input", err)
			}
			s.close()
			continue
		}
		if len(s.files) == 0 {
			return "", false
		}
		if err := s.ctx.Err(); err != nil {
			s.err = err
			break
		}
		s.open(s.files[0])
		s.files = s.files[1:]
	}
	return "", false
}

func (s *source) open(name string) {
	slog.Debug("open input", slog.String("name", name))
	s.name = name
	if name == config.StdinName {
		s.cur = seqs.Lines(s.stdin)
		return
	}
	f, err := os.Open(name)
	if err != nil {
		s.err = fmt.Errorf("%w: open input", err)
		return
	}
	s.closer = f
	s.cur = seqs.Lines(f)
}

func (s *source) close() {
	if s.closer != nil {
		_ = s.closer.Close()
		s.closer = nil
	}
	s.cur = nil
}

// Err returns the error that ended the iteration early, if any.
func (s *source) Err() error {
	return s.err
}

// Close releases the file being read, if any.
func (s *source) Close() {
	s.close()
}
