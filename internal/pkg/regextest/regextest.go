// Package regextest runs a regular expression against sample text and reports
// the matches.
package regextest

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	DefaultOpen  = "[["
	DefaultClose = "]]"
)

var (
	ErrEmptyPattern   = errors.New("pattern is empty")
	ErrInvalidPattern = errors.New("invalid pattern")
)

// Request carries the pattern, the text and the flag toggles.
type Request struct {
	Pattern    string `json:"pattern" yaml:"pattern"`
	Text       string `json:"text" yaml:"text"`
	Global     bool   `json:"global" yaml:"global"`
	IgnoreCase bool   `json:"ignore_case" yaml:"ignore_case"`
	Multiline  bool   `json:"multiline" yaml:"multiline"`

	// Open and Close surround each match in Result.Highlighted.
	Open  string `json:"open,omitempty" yaml:"open,omitempty"`
	Close string `json:"close,omitempty" yaml:"close,omitempty"`
}

// Match is a single hit. Index is the byte offset into the text.
type Match struct {
	Text   string            `json:"text" yaml:"text"`
	Index  int               `json:"index" yaml:"index"`
	Groups []string          `json:"groups,omitempty" yaml:"groups,omitempty"`
	Named  map[string]string `json:"named,omitempty" yaml:"named,omitempty"`
}

type Result struct {
	Expression  string  `json:"expression" yaml:"expression"`
	Count       int     `json:"count" yaml:"count"`
	Matches     []Match `json:"matches" yaml:"matches"`
	Highlighted string  `json:"highlighted" yaml:"highlighted"`
}

// Compile applies the flags as inline modifiers.
func Compile(req Request) (*regexp.Regexp, error) {
	if req.Pattern == "" {
		return nil, ErrEmptyPattern
	}

	var flags string
	if req.IgnoreCase {
		flags += "i"
	}
	if req.Multiline {
		flags += "m"
	}

	expr := req.Pattern
	if flags != "" {
		expr = "(?" + flags + ")" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return re, nil
}

// Test returns every match when Global is set, otherwise only the first.
func Test(req Request) (Result, error) {
	re, err := Compile(req)
	if err != nil {
		return Result{}, err
	}

	limit := 1
	if req.Global {
		limit = -1
	}

	names := re.SubexpNames()
	locs := re.FindAllStringSubmatchIndex(req.Text, limit)

	res := Result{Expression: re.String(), Count: len(locs), Matches: make([]Match, 0, len(locs))}
	for _, loc := range locs {
		m := Match{Text: req.Text[loc[0]:loc[1]], Index: loc[0]}
		for g := 1; g < len(loc)/2; g++ {
			var text string
			if loc[2*g] >= 0 {
				text = req.Text[loc[2*g]:loc[2*g+1]]
			}
			m.Groups = append(m.Groups, text)
			if names[g] != "" {
				if m.Named == nil {
					m.Named = make(map[string]string)
				}
				m.Named[names[g]] = text
			}
		}
		res.Matches = append(res.Matches, m)
	}

	res.Highlighted = highlight(req, locs)
	return res, nil
}

func highlight(req Request, locs [][]int) string {
	open, closing := req.Open, req.Close
	if open == "" {
		open = DefaultOpen
	}
	if closing == "" {
		closing = DefaultClose
	}

	var b strings.Builder
	last := 0
	for _, loc := range locs {
		b.WriteString(req.Text[last:loc[0]])
		b.WriteString(open)
		b.WriteString(req.Text[loc[0]:loc[1]])
		b.WriteString(closing)
		last = loc[1]
	}
	b.WriteString(req.Text[last:])
	return b.String()
}
