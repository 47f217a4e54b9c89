// Package password generates random passwords and scores their strength.
package password

import "unicode/utf8"

// Level is a qualitative strength bucket.
type Level string

const (
	LevelWeak      Level = "weak"
	LevelFair      Level = "fair"
	LevelGood      Level = "good"
	LevelExcellent Level = "excellent"
)

// MaxScore is the highest score Score can return.
const MaxScore = 7

// Strength is the evaluation of a password.
type Strength struct {
	Score   int    `json:"score" yaml:"score"`
	Level   Level  `json:"level" yaml:"level"`
	Percent int    `json:"percent" yaml:"percent"`
	Color   string `json:"color" yaml:"color"`
}

// Score returns a value in [0,7]: one point each for a length of at least 8, 12
// and 16 characters, and one point each for containing a lowercase letter, an
// uppercase letter, a digit and a character that is not an ASCII letter or digit.
func Score(p string) int {
	score := 0

	n := utf8.RuneCountInString(p)
	for _, min := range []int{8, 12, 16} {
		if n >= min {
			score++
		}
	}

	var hasLower, hasUpper, hasDigit, hasOther bool
	for _, r := range p {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasOther = true
		}
	}
	for _, ok := range []bool{hasLower, hasUpper, hasDigit, hasOther} {
		if ok {
			score++
		}
	}

	return score
}

// LevelFor buckets a score: <=2 weak, <=4 fair, <=6 good, above that excellent.
func LevelFor(score int) Level {
	switch {
	case score <= 2:
		return LevelWeak
	case score <= 4:
		return LevelFair
	case score <= 6:
		return LevelGood
	default:
		return LevelExcellent
	}
}

// Evaluate scores p and attaches the display meter for its level.
func Evaluate(p string) Strength {
	score := Score(p)
	level := LevelFor(score)

	s := Strength{Score: score, Level: level}
	switch level {
	case LevelWeak:
		s.Percent, s.Color = 25, "#ef4444"
	case LevelFair:
		s.Percent, s.Color = 50, "#f59e0b"
	case LevelGood:
		s.Percent, s.Color = 75, "#10b981"
	default:
		s.Percent, s.Color = 100, "#059669"
	}
	return s
}
