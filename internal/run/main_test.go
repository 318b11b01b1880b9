package run_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"discardwhile/internal/config"
	"discardwhile/internal/match"
	"discardwhile/internal/run"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const doc = `# title
# author

body
more
`

func TestRun(t *testing.T) {
	for _, tc := range []struct {
		title   string
		stdin   string
		setup   func(c *config.Config)
		want    string
		wantErr error
	}{
		{
			title: "default rule skips blank lines",
			stdin: "\n  \nfirst\nsecond\n",
			want:  "first\n",
		},
		{
			title: "prefix and blank",
			stdin: doc,
			setup: func(c *config.Config) {
				c.Prefixes = []string{"#"}
				c.Blank = true
			},
			want: "body\n",
		},
		{
			title: "count and rest",
			stdin: doc,
			setup: func(c *config.Config) {
				c.Prefixes = []string{"#"}
				c.Blank = true
				c.Count = true
				c.Rest = true
			},
			want: "3\nbody\nmore\n",
		},
		{
			title: "first line does not match",
			stdin: doc,
			setup: func(c *config.Config) {
				c.Regexps = []string{`^\d+$`}
				c.Count = true
			},
			want: "0\n# title\n",
		},
		{
			title: "exhausted",
			stdin: "# a\n# b\n",
			setup: func(c *config.Config) {
				c.Prefixes = []string{"#"}
			},
			want:    "",
			wantErr: run.ErrExhausted,
		},
		{
			title: "exhausted with count",
			stdin: "# a\n# b\n",
			setup: func(c *config.Config) {
				c.Prefixes = []string{"#"}
				c.Count = true
			},
			want:    "2\n",
			wantErr: run.ErrExhausted,
		},
		{
			title: "empty input",
			stdin: "",
			setup: func(c *config.Config) {
				c.Count = true
			},
			want:    "0\n",
			wantErr: run.ErrExhausted,
		},
		{
			title: "invert",
			stdin: "a\nb\n---\nc\n",
			setup: func(c *config.Config) {
				c.Regexps = []string{`^---$`}
				c.Invert = true
				c.Rest = true
			},
			want: "---\nc\n",
		},
		{
			title: "max bounds the scan",
			stdin: "# 1\n# 2\n# 3\nbody\n",
			setup: func(c *config.Config) {
				c.Prefixes = []string{"#"}
				c.Max = 2
				c.Count = true
			},
			want:    "2\n",
			wantErr: run.ErrExhausted,
		},
		{
			title: "max bounds rest",
			stdin: "# 1\nbody\na\nb\n",
			setup: func(c *config.Config) {
				c.Prefixes = []string{"#"}
				c.Max = 3
				c.Rest = true
			},
			want: "body\na\n",
		},
		{
			title: "json",
			stdin: doc,
			setup: func(c *config.Config) {
				c.Prefixes = []string{"#"}
				c.Blank = true
				c.Format = config.FormatJSON
			},
			want: `{"found":true,"line":"body","discarded":3}` + "\n",
		},
		{
			title: "json exhausted",
			stdin: "<a>\n",
			setup: func(c *config.Config) {
				c.Regexps = []string{"^<"}
				c.Format = config.FormatJSON
			},
			want:    `{"found":false,"line":"","discarded":1}` + "\n",
			wantErr: run.ErrExhausted,
		},
	} {
		t.Run(tc.title, func(t *testing.T) {
			var out bytes.Buffer
			c := config.NewConfig(strings.NewReader(tc.stdin), &out)
			c.Debug = true
			c.SetupLogger(os.Stderr)
			if tc.setup != nil {
				tc.setup(c)
			}
			require.NoError(t, c.Init(nil))

			err := run.Main(c)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.want, out.String())
		})
	}
}

func TestRun_YAML(t *testing.T) {
	var out bytes.Buffer
	c := config.NewConfig(strings.NewReader(doc), &out)
	c.Rule = match.Rule{Prefixes: []string{"#"}, Blank: true}
	c.Rest = true
	c.Format = config.FormatYAML
	require.NoError(t, c.Init(nil))
	require.NoError(t, run.Main(c))

	var got run.Result
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, run.Result{
		Found:     true,
		Line:      "body",
		Discarded: 3,
		Rest:      []string{"more"},
	}, got)
}

func TestRun_Files(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
		return p
	}
	header := write("header.txt", "# a\n# b\n")
	body := write("body.txt", "# c\nbody\nmore\n")

	t.Run("continues into the next file", func(t *testing.T) {
		var out bytes.Buffer
		c := config.NewConfig(strings.NewReader("stdin\n"), &out)
		c.Prefixes = []string{"#"}
		c.Count = true
		c.Rest = true
		require.NoError(t, c.Init([]string{header, body, config.StdinName}))
		require.NoError(t, run.Main(c))
		assert.Equal(t, "3\nbody\nmore\nstdin\n", out.String())
	})

	t.Run("later files are not opened", func(t *testing.T) {
		var out bytes.Buffer
		c := config.NewConfig(nil, &out)
		c.Prefixes = []string{"#"}
		require.NoError(t, c.Init([]string{body, filepath.Join(dir, "missing.txt")}))
		require.NoError(t, run.Main(c))
		assert.Equal(t, "body\n", out.String())
	})

	t.Run("unreadable input", func(t *testing.T) {
		var out bytes.Buffer
		c := config.NewConfig(nil, &out)
		require.NoError(t, c.Init([]string{dir}))
		err := run.Main(c)
		require.Error(t, err)
		assert.ErrorContains(t, err, "read input")
		assert.Equal(t, 1, strings.Count(err.Error(), dir), "path appears once: %v", err)
		assert.Empty(t, out.String())
	})

	t.Run("missing file", func(t *testing.T) {
		var out bytes.Buffer
		c := config.NewConfig(nil, &out)
		c.Prefixes = []string{"#"}
		require.NoError(t, c.Init([]string{header, filepath.Join(dir, "missing.txt")}))
		err := run.Main(c)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.ErrorContains(t, err, "open input")
		assert.Empty(t, out.String())
	})
}
