package scanner

import (
	"fmt"
	"strconv"
	"strings"
)

// Result is the outcome of a transform: either a transformed value for a token,
// the plain lexeme, or the instruction to drop the token.
type Result struct {
	value   interface{}
	keep    bool // has a transformed value
	discard bool
}

// Keep creates a transform result carrying a value.
func Keep(v interface{}) Result {
	return Result{value: v, keep: true}
}

// Discard creates a transform result which drops the token from the stream.
func Discard() Result {
	return Result{discard: true}
}

// AsIs creates a transform result which leaves the token untransformed.
func AsIs() Result {
	return Result{}
}

// Discarded is true if the token is to be dropped.
func (r Result) Discarded() bool {
	return r.discard
}

// Value returns the transformed value, if any.
func (r Result) Value() (interface{}, bool) {
	return r.value, r.keep
}

// Transform is a per-kind action on matched lexemes.
type Transform func(lexeme string) Result

// Apply runs a transform, which may be nil.
func (tf Transform) Apply(lexeme string) Result {
	if tf == nil {
		return AsIs()
	}
	return tf(lexeme)
}

// --- Pre-defined transforms ------------------------------------------------

// Skip is a pre-defined transform which drops the matched lexeme, e.g. for
// whitespace and comments.
func Skip(string) Result {
	return Discard()
}

// Lexeme is a pre-defined transform which stores the lexeme as a string value.
func Lexeme(lexeme string) Result {
	return Keep(lexeme)
}

// Int is a pre-defined transform which converts decimal lexemes to int.
// Lexemes which do not parse are left untransformed.
func Int(lexeme string) Result {
	n, err := strconv.Atoi(lexeme)
	if err != nil {
		tracer().Errorf("cannot convert %q to int: %v", lexeme, err)
		return AsIs()
	}
	return Keep(n)
}

// Float is a pre-defined transform which converts lexemes to float64.
// Lexemes which do not parse are left untransformed.
func Float(lexeme string) Result {
	f, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		tracer().Errorf("cannot convert %q to float: %v", lexeme, err)
		return AsIs()
	}
	return Keep(f)
}

// Unsigned is a pre-defined transform for signed decimals and fractions,
// e.g. "3", "-1.5" or "+1/20". The value is a float64.
func Unsigned(lexeme string) Result {
	f, err := unsignedValue(lexeme)
	if err != nil {
		tracer().Errorf(err.Error())
		return AsIs()
	}
	return Keep(f)
}

// Unquote is a pre-defined transform which unquotes Go-style string literals.
func Unquote(lexeme string) Result {
	s, err := strconv.Unquote(lexeme)
	if err != nil {
		tracer().Errorf("cannot unquote %s: %v", lexeme, err)
		return AsIs()
	}
	return Keep(s)
}

func unsignedValue(s string) (float64, error) {
	var f float64 = 1.0
	lexeme := s
	if strings.HasPrefix(s, "+") {
		s = s[1:]
	} else if strings.HasPrefix(s, "-") {
		f *= -1.0
		s = s[1:]
	}
	if strings.Contains(s, "/") {
		a := strings.Split(s, "/")
		if len(a) != 2 {
			return 0, fmt.Errorf("malformed fraction: %q", lexeme)
		}
		nom, err1 := strconv.Atoi(a[0])
		denom, err2 := strconv.Atoi(a[1])
		if err1 != nil || err2 != nil || denom == 0 {
			return 0, fmt.Errorf("malformed fraction: %q", lexeme)
		}
		return f * (float64(nom) / float64(denom)), nil
	}
	a, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed number: %q", lexeme)
	}
	return f * a, nil
}

// TransformByName returns a pre-defined transform for one of the names
// "lexeme", "int", "float", "unsigned", "unquote" or "skip".
// The empty name selects no transform.
func TransformByName(name string) (Transform, error) {
	switch strings.ToLower(name) {
	case "":
		return nil, nil
	case "lexeme":
		return Lexeme, nil
	case "int":
		return Int, nil
	case "float":
		return Float, nil
	case "unsigned":
		return Unsigned, nil
	case "unquote":
		return Unquote, nil
	case "skip":
		return Skip, nil
	}
	return nil, fmt.Errorf("unknown transform %q", name)
}
