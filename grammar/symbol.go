package grammar

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/predict"
)

// SymbolKind tags grammar symbols.
type SymbolKind int8

// Grammar symbols are either terminals, non-terminals or epsilon.
const (
	EpsilonSymbol SymbolKind = iota
	TerminalSymbol
	NonTerminalSymbol
)

// Symbol is a grammar symbol. Symbols are values and may be compared with ==.
// Non-terminals are equal if their names are equal.
type Symbol struct {
	Kind SymbolKind
	Name string
}

// Epsilon is the symbol for the empty word.
var Epsilon = Symbol{Kind: EpsilonSymbol, Name: "ε"}

// EOI is the lookahead symbol at the end of input.
var EOI = Term(predict.EOI)

// Term creates a terminal symbol.
func Term(name string) Symbol {
	return Symbol{Kind: TerminalSymbol, Name: name}
}

// NonTerm creates a non-terminal symbol.
func NonTerm(name string) Symbol {
	return Symbol{Kind: NonTerminalSymbol, Name: name}
}

func (s Symbol) IsTerminal() bool {
	return s.Kind == TerminalSymbol
}

func (s Symbol) IsNonTerminal() bool {
	return s.Kind == NonTerminalSymbol
}

func (s Symbol) IsEpsilon() bool {
	return s.Kind == EpsilonSymbol
}

// IsEOI is true for the end-of-input terminal.
func (s Symbol) IsEOI() bool {
	return s == EOI
}

func (s Symbol) String() string {
	return s.Name
}

// symbolComparator orders symbols by kind first (epsilon < terminals < non-terminals),
// then by name.
func symbolComparator(a, b interface{}) int {
	s1 := a.(Symbol)
	s2 := b.(Symbol)
	if s1.Kind != s2.Kind {
		return utils.IntComparator(int(s1.Kind), int(s2.Kind))
	}
	return utils.StringComparator(s1.Name, s2.Name)
}

// --- Symbol sets -----------------------------------------------------------

// SymbolSet is an ordered set of grammar symbols, used for FIRST, FOLLOW and
// SELECT sets. The zero value is not usable, create sets with NewSymbolSet.
type SymbolSet struct {
	set *treeset.Set
}

// NewSymbolSet creates a set containing syms.
func NewSymbolSet(syms ...Symbol) *SymbolSet {
	S := &SymbolSet{set: treeset.NewWith(symbolComparator)}
	for _, sym := range syms {
		S.set.Add(sym)
	}
	return S
}

// Add adds symbols to S and returns true if S changed.
func (S *SymbolSet) Add(syms ...Symbol) bool {
	size := S.set.Size()
	for _, sym := range syms {
		S.set.Add(sym)
	}
	return S.set.Size() != size
}

// Union adds all symbols of T to S and returns true if S changed.
func (S *SymbolSet) Union(T *SymbolSet) bool {
	if T == nil {
		return false
	}
	size := S.set.Size()
	S.set.Add(T.set.Values()...)
	return S.set.Size() != size
}

// Remove removes a symbol from S.
func (S *SymbolSet) Remove(sym Symbol) {
	S.set.Remove(sym)
}

func (S *SymbolSet) Contains(sym Symbol) bool {
	return S.set.Contains(sym)
}

func (S *SymbolSet) Size() int {
	return S.set.Size()
}

func (S *SymbolSet) Empty() bool {
	return S.set.Empty()
}

// Values returns the symbols of S in sort order.
func (S *SymbolSet) Values() []Symbol {
	vals := S.set.Values()
	syms := make([]Symbol, len(vals))
	for i, v := range vals {
		syms[i] = v.(Symbol)
	}
	return syms
}

// Copy returns a shallow copy of S.
func (S *SymbolSet) Copy() *SymbolSet {
	C := NewSymbolSet()
	C.set.Add(S.set.Values()...)
	return C
}

// Without returns a copy of S with sym removed.
func (S *SymbolSet) Without(sym Symbol) *SymbolSet {
	C := S.Copy()
	C.set.Remove(sym)
	return C
}

// Equals is true if S and T contain the same symbols.
func (S *SymbolSet) Equals(T *SymbolSet) bool {
	if S.Size() != T.Size() {
		return false
	}
	it := S.set.Iterator()
	for it.Next() {
		if !T.set.Contains(it.Value()) {
			return false
		}
	}
	return true
}

func (S *SymbolSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, sym := range S.Values() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(sym.Name)
	}
	b.WriteByte('}')
	return b.String()
}
