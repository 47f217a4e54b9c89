//go:build unit

package textcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, Result{}, Convert(""))
	})

	t.Run("Phrase", func(t *testing.T) {
		r := Convert("hello wORLD from go")
		assert.Equal(t, "HELLO WORLD FROM GO", r.Upper)
		assert.Equal(t, "hello world from go", r.Lower)
		assert.Equal(t, "Hello World From Go", r.Title)
		assert.Equal(t, "Hello world from go", r.Sentence)
		assert.Equal(t, "helloWorldFromGo", r.Camel)
		assert.Equal(t, "HelloWorldFromGo", r.Pascal)
		assert.Equal(t, "hello_world_from_go", r.Snake)
		assert.Equal(t, "hello-world-from-go", r.Kebab)
	})

	t.Run("Identifier", func(t *testing.T) {
		r := Convert("parseHTTPRequest")
		assert.Equal(t, "parseHttpRequest", r.Camel)
		assert.Equal(t, "ParseHttpRequest", r.Pascal)
		assert.Equal(t, "parse_http_request", r.Snake)
		assert.Equal(t, "parse-http-request", r.Kebab)
	})

	t.Run("Unicode", func(t *testing.T) {
		r := Convert("straße ñandú")
		assert.Equal(t, "STRASSE ÑANDÚ", r.Upper)
		assert.Equal(t, "straße-ñandú", r.Kebab)
		assert.Equal(t, "Straße ñandú", r.Sentence)
	})
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Hello-world  Again!", Title("hELLO-WORLD  again!"))
}

func TestWords(t *testing.T) {
	tests := map[string][]string{
		"snake_case_input":   {"snake", "case", "input"},
		"kebab-case--input":  {"kebab", "case", "input"},
		"XMLHttpRequest":     {"XML", "Http", "Request"},
		"version2Update":     {"version2", "Update"},
		"  spaced   words  ": {"spaced", "words"},
		"ID":                 {"ID"},
		"hello wORLD":        {"hello", "wORLD"},
		"getID":              {"get", "ID"},
		"iPhone":             {"i", "Phone"},
		"!!!":                nil,
	}
	for in, want := range tests {
		assert.Equal(t, want, Words(in), in)
	}
}
