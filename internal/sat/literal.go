package sat

import "fmt"

// Var is a 0-based variable index. Variables are created monotonically by
// AddVariable and are never destroyed within a solve.
type Var int32

// Literal encodes a (variable, polarity) pair in a single word:
//
//	literal = (variable << 1) | polarity
//
// where polarity 0 denotes the positive literal and 1 its negation. This
// convention (rather than, say, signed integers) lets the assignment array
// be indexed directly by literal: assigns[l] and assigns[l.Opposite()] are
// always complementary.
type Literal int32

// PositiveLiteral returns the positive literal of variable v.
func PositiveLiteral(v Var) Literal {
	return Literal(v) << 1
}

// NegativeLiteral returns the negative literal (negation) of variable v.
func NegativeLiteral(v Var) Literal {
	return Literal(v)<<1 | 1
}

// MakeLiteral returns the literal for variable v under the given polarity
// bit (0 for positive, 1 for negative).
func MakeLiteral(v Var, polarity int) Literal {
	return Literal(v)<<1 | Literal(polarity&1)
}

// Var returns the variable this literal refers to.
func (l Literal) Var() Var {
	return Var(l >> 1)
}

// Polarity returns the literal's polarity bit: 0 if positive, 1 if negative.
func (l Literal) Polarity() int {
	return int(l & 1)
}

// IsPositive reports whether l is the positive literal of its variable.
func (l Literal) IsPositive() bool {
	return l&1 == 0
}

// Opposite returns the negation of l.
func (l Literal) Opposite() Literal {
	return l ^ 1
}

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.Var())
	}
	return fmt.Sprintf("!%d", l.Var())
}
