// Package hash computes hex digests of text with a fixed set of algorithms.
package hash

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	stdhash "hash"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

const (
	MD5        = "md5"
	SHA1       = "sha1"
	SHA256     = "sha256"
	SHA512     = "sha512"
	SHA3_256   = "sha3-256"
	BLAKE2b256 = "blake2b-256"
)

var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// DefaultAlgorithms is the set shown when the caller does not choose.
var DefaultAlgorithms = []string{MD5, SHA1, SHA256}

var providers = map[string]func() stdhash.Hash{
	MD5:      md5.New,
	SHA1:     sha1.New,
	SHA256:   sha256.New,
	SHA512:   sha512.New,
	SHA3_256: sha3.New256,
	BLAKE2b256: func() stdhash.Hash {
		// only fails for keys longer than 64 bytes
		h, _ := blake2b.New256(nil)
		return h
	},
}

// Digest is one algorithm's output.
type Digest struct {
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	Hex       string `json:"hex" yaml:"hex"`
}

// Algorithms lists every supported algorithm name, sorted.
func Algorithms() []string {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sum returns the lowercase hex digest of the UTF-8 bytes of input.
func Sum(algorithm, input string) (string, error) {
	newHash, ok := providers[strings.ToLower(algorithm)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}

	h := newHash()
	h.Write([]byte(input))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// SumAll hashes input with each algorithm in order. An empty input yields
// empty digests. Without algorithms DefaultAlgorithms is used.
func SumAll(input string, algorithms ...string) ([]Digest, error) {
	if len(algorithms) == 0 {
		algorithms = DefaultAlgorithms
	}

	out := make([]Digest, 0, len(algorithms))
	for _, alg := range algorithms {
		name := strings.ToLower(alg)
		if _, ok := providers[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
		}
		d := Digest{Algorithm: name}
		if input != "" {
			d.Hex, _ = Sum(name, input)
		}
		out = append(out, d)
	}
	return out, nil
}
