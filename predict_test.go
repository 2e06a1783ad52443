package predict

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTokenValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	pos := Position{Source: "in", Line: 2, Col: 5}
	tok := MakeToken("num", "42", pos, Span{10, 12})
	if tok.Transformed() || tok.Value() != "42" {
		t.Errorf("expected untransformed token to yield its lexeme, is %v", tok.Value())
	}
	v := tok.WithValue(42)
	if !v.Transformed() || v.Value() != 42 {
		t.Errorf("expected transformed value 42, is %v", v.Value())
	}
	if tok.Transformed() {
		t.Errorf("expected WithValue to leave the original token untouched")
	}
	if tok.String() != `<num "42" @in:2:5>` {
		t.Errorf("unexpected token string %s", tok)
	}
	eoi := MakeToken(EOI, "", Position{Line: 1, Col: 1}, Span{})
	if !eoi.IsEOI() || eoi.String() != "<EOI @1:1>" {
		t.Errorf("unexpected EOI token %s", eoi)
	}
}

func TestSpan(t *testing.T) {
	s := Span{3, 7}
	if s.From() != 3 || s.To() != 7 || s.Len() != 4 {
		t.Errorf("span accessors broken for %v", s)
	}
	if x := s.Extend(Span{1, 5}); x != (Span{1, 7}) {
		t.Errorf("expected (1…7), is %v", x)
	}
	if x := (Span{}).Extend(s); x != s {
		t.Errorf("expected null span to be neutral, is %v", x)
	}
	if (Position{}).IsValid() {
		t.Errorf("expected zero position to be invalid")
	}
}
