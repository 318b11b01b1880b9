package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"discardwhile/internal/match"
	"discardwhile/seqs"

	"gopkg.in/natefinch/lumberjack.v2"
	"gopkg.in/yaml.v3"
)

var (
	ErrConfig = errors.New("Config")
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func (f Format) Valid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// StdinName is the file name that reads standard input.
const StdinName = "-"

func NewConfig(r io.Reader, w io.Writer) *Config {
	return &Config{
		Format:   FormatText,
		Overflow: seqs.DefaultOverflow(),
		Reader:   r,
		Writer:   w,
	}
}

type Config struct {
	Debug bool `yaml:"debug"`

	match.Rule `yaml:",inline"`

	Count    bool          `yaml:"count"`
	Rest     bool          `yaml:"rest"`
	Max      uint          `yaml:"max"`
	Format   Format        `yaml:"format"`
	Overflow seqs.Overflow `yaml:"overflow"`
	LogFile  string        `yaml:"log_file"`

	Files []string `yaml:"-"`

	Reader io.Reader `yaml:"-" json:"-"`
	Writer io.Writer `yaml:"-" json:"-"`

	logCloser io.Closer
}

// Load merges the YAML document read from r into c. Keys absent from the
// document keep their current values. c is left untouched on error.
func (c *Config) Load(r io.Reader) error {
	next := *c
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&next); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	*c = next
	return nil
}

func (c *Config) LoadFile(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	defer f.Close()
	if err := c.Load(f); err != nil {
		return fmt.Errorf("%w: load %s", err, name)
	}
	return nil
}

func (c *Config) Init(files []string) error {
	if !c.Format.Valid() {
		return fmt.Errorf("%w: unknown format %q", ErrConfig, c.Format)
	}
	if _, err := c.Rule.Compile(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if len(files) == 0 {
		files = []string{StdinName}
	}
	c.Files = files
	return nil
}

// SetupLogger installs the default slog logger. Logs go to w unless LogFile
// is set, in which case they go to a rotating file.
func (c *Config) SetupLogger(w io.Writer) {
	if c.LogFile != "" {
		lj := &lumberjack.Logger{
			Filename:   c.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		}
		c.logCloser = lj
		w = lj
	}
	level := slog.LevelInfo
	if c.Debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	slog.SetDefault(slog.New(handler))
}

func (c *Config) Close() error {
	if c.logCloser == nil {
		return nil
	}
	return c.logCloser.Close()
}
