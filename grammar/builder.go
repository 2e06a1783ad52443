package grammar

// Builder is a helper type to construct grammars step by step.
//
//    b := NewBuilder("G")
//    b.LHS("S").N("A").T("a").End()  // S  ->  A a
//    b.LHS("A").T("b").End()         // A  ->  b
//    b.LHS("A").Epsilon()            // A  ->
//    g, err := b.Grammar()
type Builder struct {
	name  string
	start string
	prods []*Production
}

// RuleBuilder collects the RHS of a single production.
type RuleBuilder struct {
	b   *Builder
	lhs string
	rhs []Symbol
}

// NewBuilder creates a builder for a grammar with a given name.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// StartWith sets an explicit start symbol. Without it, the first LHS is the
// start symbol.
func (b *Builder) StartWith(name string) *Builder {
	b.start = name
	return b
}

// LHS starts a new production for rule name.
func (b *Builder) LHS(name string) *RuleBuilder {
	return &RuleBuilder{b: b, lhs: name}
}

// N appends a non-terminal to the RHS.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, NonTerm(name))
	return rb
}

// T appends a terminal to the RHS.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, Term(name))
	return rb
}

// End closes the production.
func (rb *RuleBuilder) End() *Production {
	p := NewProduction(rb.lhs, rb.rhs...)
	rb.b.prods = append(rb.b.prods, p)
	return p
}

// Epsilon closes the production as an epsilon production. Symbols appended
// before are discarded.
func (rb *RuleBuilder) Epsilon() *Production {
	rb.rhs = nil
	return rb.End()
}

// Grammar creates the grammar from the productions collected so far.
func (b *Builder) Grammar() (*Grammar, error) {
	return New(b.name, b.prods, b.start)
}
