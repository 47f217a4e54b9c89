package password

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

const (
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"
	Symbols   = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	MinLength     = 4
	MaxLength     = 128
	DefaultLength = 16
)

var (
	// ErrNoCharacterClass is returned when every character class is disabled.
	ErrNoCharacterClass = errors.New("select at least one character class")
	// ErrInvalidLength is returned for a length outside [MinLength, MaxLength].
	ErrInvalidLength = fmt.Errorf("length must be between %d and %d", MinLength, MaxLength)
)

// Options selects the length and character classes of a generated password.
type Options struct {
	Length    int  `json:"length" yaml:"length"`
	Uppercase bool `json:"uppercase" yaml:"uppercase"`
	Lowercase bool `json:"lowercase" yaml:"lowercase"`
	Numbers   bool `json:"numbers" yaml:"numbers"`
	Symbols   bool `json:"symbols" yaml:"symbols"`
}

// DefaultOptions enables every class with the default length.
func DefaultOptions() Options {
	return Options{Length: DefaultLength, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true}
}

// Charset returns the union of the selected classes in a fixed order.
func (o Options) Charset() string {
	charset := ""
	if o.Uppercase {
		charset += Uppercase
	}
	if o.Lowercase {
		charset += Lowercase
	}
	if o.Numbers {
		charset += Digits
	}
	if o.Symbols {
		charset += Symbols
	}
	return charset
}

// Generated is a password together with its strength.
type Generated struct {
	Password string   `json:"password" yaml:"password"`
	Length   int      `json:"length" yaml:"length"`
	Strength Strength `json:"strength" yaml:"strength"`
}

// Generator draws characters uniformly from a charset using a random source.
type Generator struct {
	source io.Reader
}

// NewGenerator returns a generator backed by crypto/rand.
func NewGenerator() *Generator {
	return &Generator{source: rand.Reader}
}

// NewGeneratorWithSource returns a generator reading randomness from r.
func NewGeneratorWithSource(r io.Reader) *Generator {
	return &Generator{source: r}
}

// Generate builds a password for opts and evaluates it.
func (g *Generator) Generate(opts Options) (Generated, error) {
	if opts.Length < MinLength || opts.Length > MaxLength {
		return Generated{}, fmt.Errorf("%w: got %d", ErrInvalidLength, opts.Length)
	}

	charset := opts.Charset()
	if charset == "" {
		return Generated{}, ErrNoCharacterClass
	}

	buf := make([]byte, opts.Length)
	for i := range buf {
		n, err := g.index(len(charset))
		if err != nil {
			return Generated{}, fmt.Errorf("failed to read random source: %w", err)
		}
		buf[i] = charset[n]
	}

	pwd := string(buf)
	return Generated{Password: pwd, Length: len(pwd), Strength: Evaluate(pwd)}, nil
}

// index returns a uniform value in [0,n) for n <= 256, rejecting bytes that
// would bias the modulo.
func (g *Generator) index(n int) (int, error) {
	limit := 256 - 256%n
	var b [1]byte
	for {
		if _, err := io.ReadFull(g.source, b[:]); err != nil {
			return 0, err
		}
		if int(b[0]) < limit {
			return int(b[0]) % n, nil
		}
	}
}

// Generate builds a password with crypto/rand.
func Generate(opts Options) (Generated, error) {
	return NewGenerator().Generate(opts)
}
