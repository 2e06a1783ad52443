package predict

import "fmt"

// Reserved token kinds. Tokenizers produce exactly one token of kind EOI
// at the end of input, and tokens of kind Unknown for input no rule matches.
const (
	EOI     = "EOI"
	Unknown = "unknown"
)

// --- Tokens ----------------------------------------------------------------

// Token represents an input token. Tokens are produced by a tokenizer and
// reflect terminals in a language.
//
// An example would be a token for a floating point numer:
//
//    Kind   = "float"      // name of the terminal this token matches
//    Lexeme = "3.1416"     // lexeme as it appeared in the input stream
//    Value  = 3.1416       // transformed value, a float64
//    Pos    = input:1:17   // 1-based line and column in source 'input'
//    Span   = (16…22)      // byte offsets into the input
//
// A token either carries a transformed value (set by a transform function of
// the tokenizer) or just its lexeme. Value() returns whichever is present.
// Tokens are immutable.
type Token struct {
	Kind        string
	Lexeme      string
	Pos         Position
	Span        Span
	value       interface{}
	transformed bool
}

// MakeToken creates a token without a transformed value.
func MakeToken(kind, lexeme string, pos Position, span Span) Token {
	return Token{
		Kind:   kind,
		Lexeme: lexeme,
		Pos:    pos,
		Span:   span,
	}
}

// WithValue returns a copy of t carrying a transformed value.
func (t Token) WithValue(v interface{}) Token {
	t.value = v
	t.transformed = true
	return t
}

// Value returns the transformed value of a token, if present. Otherwise the
// token's lexeme is returned.
func (t Token) Value() interface{} {
	if t.transformed {
		return t.value
	}
	return t.Lexeme
}

// Transformed is true if t carries a transformed value.
func (t Token) Transformed() bool {
	return t.transformed
}

// IsEOI is true for end-of-input tokens.
func (t Token) IsEOI() bool {
	return t.Kind == EOI
}

func (t Token) String() string {
	if t.Kind == EOI {
		return fmt.Sprintf("<%s @%s>", EOI, t.Pos)
	}
	return fmt.Sprintf("<%s %q @%s>", t.Kind, t.Lexeme, t.Pos)
}

// --- Positions -------------------------------------------------------------

// Position is a location in an input source. Line and column are 1-based,
// columns count runes, not bytes.
type Position struct {
	Source string // name of the input source, may be empty
	Line   int
	Col    int
}

// IsValid is false for the zero position.
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	if p.Source == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Col)
	}
	return fmt.Sprintf("%s:%d:%d", p.Source, p.Line, p.Col)
}

// --- Spans -----------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. Every token and
// every interior node of a syntax tree tracks which input positions it
// covers. A span denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering s and other. Null spans are neutral.
func (s Span) Extend(other Span) Span {
	if s.IsNull() {
		return other
	} else if other.IsNull() {
		return s
	}
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
