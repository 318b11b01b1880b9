// Package match builds line predicates for discardwhile.
package match

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var ErrRule = errors.New("Rule")

// Rule describes which lines are discarded.
//
// A line matches when any regexp matches it, when it starts with any prefix,
// or, with Blank, when it contains only white space. A Rule with no regexp,
// no prefix and Blank unset matches blank lines. Invert discards the lines
// that do not match instead.
type Rule struct {
	Regexps  []string `yaml:"regexp,omitempty" json:"regexp,omitempty"`
	Prefixes []string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Blank    bool     `yaml:"blank,omitempty" json:"blank,omitempty"`
	Invert   bool     `yaml:"invert,omitempty" json:"invert,omitempty"`
}

func (r Rule) IsZero() bool {
	return len(r.Regexps) == 0 && len(r.Prefixes) == 0 && !r.Blank
}

// Compile returns the predicate for r: true means the line is discarded.
func (r Rule) Compile() (func(string) bool, error) {
	res := make([]*regexp.Regexp, len(r.Regexps))
	for i, p := range r.Regexps {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("%w: regexp[%d]: %w", ErrRule, i, err)
		}
		res[i] = re
	}
	var (
		prefixes = r.Prefixes
		blank    = r.Blank || r.IsZero()
		invert   = r.Invert
	)
	return func(line string) bool {
		return matches(line, res, prefixes, blank) != invert
	}, nil
}

func matches(line string, res []*regexp.Regexp, prefixes []string, blank bool) bool {
	if blank && strings.TrimSpace(line) == "" {
		return true
	}
	for _, p := range prefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	for _, re := range res {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
