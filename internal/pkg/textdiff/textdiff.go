// Package textdiff compares two texts line by line.
package textdiff

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Kind classifies a diff line.
type Kind string

const (
	Unchanged Kind = "unchanged"
	Removed   Kind = "removed"
	Added     Kind = "added"
)

var ErrNothingToCompare = errors.New("both texts are empty")

// Line is one rendered row of a positional diff. Number is the 1-based
// position shared by both inputs.
type Line struct {
	Number int    `json:"number" yaml:"number"`
	Kind   Kind   `json:"kind" yaml:"kind"`
	Text   string `json:"text" yaml:"text"`
}

// Result holds the rows plus simple counters.
type Result struct {
	Lines     []Line `json:"lines" yaml:"lines"`
	Unchanged int    `json:"unchanged" yaml:"unchanged"`
	Removed   int    `json:"removed" yaml:"removed"`
	Added     int    `json:"added" yaml:"added"`
}

// Identical reports whether no line differs.
func (r Result) Identical() bool {
	return r.Removed == 0 && r.Added == 0
}

// Compare pairs the n-th line of left with the n-th line of right. A line
// changed on both sides is emitted as a removal followed by an addition.
func Compare(left, right string) (Result, error) {
	if strings.TrimSpace(left) == "" && strings.TrimSpace(right) == "" {
		return Result{}, ErrNothingToCompare
	}

	a := strings.Split(left, "\n")
	b := strings.Split(right, "\n")
	n := max(len(a), len(b))

	res := Result{Lines: make([]Line, 0, n)}
	for i := 0; i < n; i++ {
		l, r := lineAt(a, i), lineAt(b, i)
		num := i + 1

		switch {
		case l == r:
			res.Lines = append(res.Lines, Line{Number: num, Kind: Unchanged, Text: l})
			res.Unchanged++
		case r == "":
			res.Lines = append(res.Lines, Line{Number: num, Kind: Removed, Text: l})
			res.Removed++
		case l == "":
			res.Lines = append(res.Lines, Line{Number: num, Kind: Added, Text: r})
			res.Added++
		default:
			res.Lines = append(res.Lines,
				Line{Number: num, Kind: Removed, Text: l},
				Line{Number: num, Kind: Added, Text: r},
			)
			res.Removed++
			res.Added++
		}
	}
	return res, nil
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}

// Unified renders a standard unified diff with the given lines of context.
func Unified(left, right string, context int) (string, error) {
	if context < 0 {
		context = 3
	}

	out, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(left),
		B:        difflib.SplitLines(right),
		FromFile: "left",
		ToFile:   "right",
		Context:  context,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render unified diff: %w", err)
	}
	return out, nil
}

// String renders the positional diff with -/+ markers.
func (r Result) String() string {
	var b strings.Builder
	for _, l := range r.Lines {
		switch l.Kind {
		case Removed:
			fmt.Fprintf(&b, "-%d\t%s\n", l.Number, l.Text)
		case Added:
			fmt.Fprintf(&b, "+%d\t%s\n", l.Number, l.Text)
		default:
			fmt.Fprintf(&b, " %d\t%s\n", l.Number, l.Text)
		}
	}
	return b.String()
}
