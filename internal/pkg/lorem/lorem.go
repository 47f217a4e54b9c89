// Package lorem generates placeholder Latin text.
package lorem

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind selects the unit counted by Generate.
type Kind string

const (
	Words      Kind = "words"
	Sentences  Kind = "sentences"
	Paragraphs Kind = "paragraphs"
)

const (
	MaxCount = 1000

	minSentenceWords     = 5
	sentenceWordSpread   = 10
	minParagraphSentence = 3
	paragraphSpread      = 5
)

var ErrUnknownKind = errors.New("unknown lorem kind")

var vocabulary = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit",
	"sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore", "et", "dolore",
	"magna", "aliqua", "enim", "ad", "minim", "veniam", "quis", "nostrud",
	"exercitation", "ullamco", "laboris", "nisi", "aliquip", "ex", "ea", "commodo",
	"consequat", "duis", "aute", "irure", "in", "reprehenderit", "voluptate",
	"velit", "esse", "cillum", "fugiat", "nulla", "pariatur", "excepteur", "sint",
	"occaecat", "cupidatat", "non", "proident", "sunt", "culpa", "qui", "officia",
	"deserunt", "mollit", "anim", "id", "est", "laborum",
}

// Vocabulary returns a copy of the word list.
func Vocabulary() []string {
	return append([]string(nil), vocabulary...)
}

// ParseKind maps a user supplied name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case Words, Sentences, Paragraphs:
		return k, nil
	case "":
		return Paragraphs, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Generator draws words from an injectable random source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded from the runtime.
func NewGenerator() *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewGeneratorWithSource makes output reproducible for a fixed source.
func NewGeneratorWithSource(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// Generate returns count units of kind. Count defaults to 1 and is capped at MaxCount.
func (g *Generator) Generate(kind Kind, count int) (string, error) {
	if count <= 0 {
		count = 1
	}
	if count > MaxCount {
		count = MaxCount
	}

	switch kind {
	case Words:
		return strings.Join(g.words(count), " "), nil
	case Sentences:
		return g.sentences(count), nil
	case Paragraphs:
		paragraphs := make([]string, count)
		for i := range paragraphs {
			paragraphs[i] = g.sentences(minParagraphSentence + g.rng.IntN(paragraphSpread))
		}
		return strings.Join(paragraphs, "\n\n"), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func (g *Generator) words(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = vocabulary[g.rng.IntN(len(vocabulary))]
	}
	return out
}

func (g *Generator) sentences(n int) string {
	out := make([]string, n)
	for i := range out {
		words := g.words(minSentenceWords + g.rng.IntN(sentenceWordSpread))
		words[0] = capitalize(words[0])
		out[i] = strings.Join(words, " ") + "."
	}
	return strings.Join(out, " ")
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// Generate uses a fresh runtime-seeded generator.
func Generate(kind Kind, count int) (string, error) {
	return NewGenerator().Generate(kind, count)
}
