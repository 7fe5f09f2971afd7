// Package variant holds the declarative variant tables and the matcher
// dispatch that turns one prop value into a style fragment.
package variant

import "github.com/alexisbeaulieu97/variantkit/internal/style"

// Discriminant keys used when variants are written declaratively.
const (
	NumberKey   = ":number"
	WildcardKey = "..."
)

// NumericFunc computes a fragment for a numeric prop value. It receives every
// current prop so it can gate on other flags. A nil fragment contributes nothing.
type NumericFunc func(n float64, props style.Props) (style.Fragment, error)

// WildcardFunc computes a fragment for a value no other discriminant matched.
type WildcardFunc func(v style.Value, props style.Props) (style.Fragment, error)

// Matcher is one rule of a variant definition. The concrete types are
// Literal, NumericPredicate, BooleanBranch and Wildcard.
type Matcher interface {
	isMatcher()
}

// Literal matches when the prop value equals Value.
type Literal struct {
	Value    style.Value
	Fragment style.Fragment
}

// NumericPredicate matches every numeric prop value.
type NumericPredicate struct {
	Fn NumericFunc
}

// BooleanBranch matches boolean prop values. A nil side means that boolean
// has no branch, so the value falls through to the wildcard.
type BooleanBranch struct {
	True  style.Fragment
	False style.Fragment
}

// Wildcard matches when nothing else in the definition did.
type Wildcard struct {
	Fn WildcardFunc
}

func (Literal) isMatcher()          {}
func (NumericPredicate) isMatcher() {}
func (BooleanBranch) isMatcher()    {}
func (Wildcard) isMatcher()         {}

// When builds a Literal matcher.
func When(value style.Value, fragment style.Fragment) Literal {
	return Literal{Value: value, Fragment: fragment}
}

// Numeric builds a NumericPredicate matcher.
func Numeric(fn NumericFunc) NumericPredicate {
	return NumericPredicate{Fn: fn}
}

// Boolean builds a BooleanBranch with both sides.
func Boolean(whenTrue, whenFalse style.Fragment) BooleanBranch {
	return BooleanBranch{True: whenTrue, False: whenFalse}
}

// IfTrue builds a BooleanBranch that only handles true.
func IfTrue(fragment style.Fragment) BooleanBranch {
	return BooleanBranch{True: fragment}
}

// IfFalse builds a BooleanBranch that only handles false.
func IfFalse(fragment style.Fragment) BooleanBranch {
	return BooleanBranch{False: fragment}
}

// Otherwise builds a Wildcard matcher.
func Otherwise(fn WildcardFunc) Wildcard {
	return Wildcard{Fn: fn}
}

// Ignore builds a Wildcard that accepts any value and contributes nothing.
func Ignore() Wildcard {
	return Wildcard{Fn: func(style.Value, style.Props) (style.Fragment, error) {
		return nil, nil
	}}
}
