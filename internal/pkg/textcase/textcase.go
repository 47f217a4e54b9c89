// Package textcase rewrites text in common letter-case styles.
package textcase

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleWord = regexp.MustCompile(`\w\S*`)

// Result holds every style for one input.
type Result struct {
	Upper    string `json:"upper" yaml:"upper"`
	Lower    string `json:"lower" yaml:"lower"`
	Title    string `json:"title" yaml:"title"`
	Sentence string `json:"sentence" yaml:"sentence"`
	Camel    string `json:"camel" yaml:"camel"`
	Pascal   string `json:"pascal" yaml:"pascal"`
	Snake    string `json:"snake" yaml:"snake"`
	Kebab    string `json:"kebab" yaml:"kebab"`
}

// Convert renders s in every style. Empty input yields an empty Result.
func Convert(s string) Result {
	if s == "" {
		return Result{}
	}

	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	words := Words(s)
	return Result{
		Upper:    upper.String(s),
		Lower:    lower.String(s),
		Title:    Title(s),
		Sentence: Sentence(s),
		Camel:    Camel(words),
		Pascal:   Pascal(words),
		Snake:    strings.ToLower(strings.Join(words, "_")),
		Kebab:    strings.ToLower(strings.Join(words, "-")),
	}
}

// Title upper-cases the first character of every word run and lower-cases
// the remainder of the run.
func Title(s string) string {
	lower := cases.Lower(language.Und)
	return titleWord.ReplaceAllStringFunc(s, func(w string) string {
		head, rest := splitFirst(w)
		return strings.ToUpper(head) + lower.String(rest)
	})
}

// Sentence upper-cases the first character and lower-cases everything else.
func Sentence(s string) string {
	head, rest := splitFirst(s)
	return strings.ToUpper(head) + cases.Lower(language.Und).String(rest)
}

// Camel joins words as camelCase.
func Camel(words []string) string {
	if len(words) == 0 {
		return ""
	}
	return strings.ToLower(words[0]) + Pascal(words[1:])
}

// Pascal joins words as PascalCase.
func Pascal(words []string) string {
	title := cases.Title(language.Und)
	var b strings.Builder
	for _, w := range words {
		b.WriteString(title.String(w))
	}
	return b.String()
}

// Words splits s on anything that is not a letter or digit, and inside a run
// on lower-to-upper transitions and before the last capital of an acronym
// ("parseHTTPRequest" -> parse, HTTP, Request). A single leading rune before
// an all-capital run stays attached ("wORLD" is one word).
func Words(s string) []string {
	var words []string
	runes := []rune(s)
	start := -1

	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, string(runes[start:end]))
		}
		start = -1
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
			continue
		}

		prev := runes[i-1]
		switch {
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			if i-start == 1 && upperRun(runes[i:]) {
				continue
			}
			flush(i)
			start = i
		case unicode.IsUpper(prev) && unicode.IsLower(r) && i-1 > start:
			flush(i - 1)
			start = i - 1
		}
	}
	flush(len(runes))
	return words
}

// upperRun reports whether the letters in rs up to the next separator are
// all upper case.
func upperRun(rs []rune) bool {
	for _, r := range rs {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		if unicode.IsLower(r) {
			return false
		}
	}
	return true
}

func splitFirst(s string) (string, string) {
	_, size := utf8.DecodeRuneInString(s)
	return s[:size], s[size:]
}
