package variant

import (
	"fmt"

	"github.com/alexisbeaulieu97/variantkit/internal/style"
	apperrors "github.com/alexisbeaulieu97/variantkit/pkg/errors"
)

// Match reports which branch of a definition fired.
type Match int

const (
	MatchNone Match = iota
	MatchLiteral
	MatchNumeric
	MatchBoolean
	MatchWildcard
)

func (m Match) String() string {
	switch m {
	case MatchLiteral:
		return "literal"
	case MatchNumeric:
		return "numeric"
	case MatchBoolean:
		return "boolean"
	case MatchWildcard:
		return "wildcard"
	default:
		return "none"
	}
}

// Definition is the validated matcher set of a single variant.
type Definition struct {
	literals []Literal
	numeric  NumericFunc
	boolean  BooleanBranch
	wildcard WildcardFunc
}

// Define validates matchers into a Definition. At most one literal per
// value, one numeric predicate, one branch per boolean and one wildcard are
// allowed. Boolean literals are rejected in favour of BooleanBranch.
func Define(matchers ...Matcher) (Definition, error) {
	var def Definition
	for i, m := range matchers {
		field := fmt.Sprintf("matchers[%d]", i)
		switch m := m.(type) {
		case Literal:
			if m.Value.Kind() == style.KindBool {
				return Definition{}, apperrors.NewValidationError(field, "boolean literals must use a boolean branch", nil)
			}
			if m.Value.IsUndefined() {
				return Definition{}, apperrors.NewValidationError(field, "literal value cannot be undefined", nil)
			}
			for _, existing := range def.literals {
				if existing.Value.Equal(m.Value) {
					return Definition{}, apperrors.NewValidationError(field, fmt.Sprintf("duplicate literal %q", m.Value.String()), nil)
				}
			}
			def.literals = append(def.literals, Literal{Value: m.Value, Fragment: m.Fragment.Clone()})
		case NumericPredicate:
			if m.Fn == nil {
				return Definition{}, apperrors.NewValidationError(field, "numeric predicate requires a function", nil)
			}
			if def.numeric != nil {
				return Definition{}, apperrors.NewValidationError(field, "duplicate numeric predicate", nil)
			}
			def.numeric = m.Fn
		case BooleanBranch:
			if m.True != nil {
				if def.boolean.True != nil {
					return Definition{}, apperrors.NewValidationError(field, "duplicate true branch", nil)
				}
				def.boolean.True = m.True.Clone()
			}
			if m.False != nil {
				if def.boolean.False != nil {
					return Definition{}, apperrors.NewValidationError(field, "duplicate false branch", nil)
				}
				def.boolean.False = m.False.Clone()
			}
		case Wildcard:
			if m.Fn == nil {
				return Definition{}, apperrors.NewValidationError(field, "wildcard requires a function", nil)
			}
			if def.wildcard != nil {
				return Definition{}, apperrors.NewValidationError(field, "duplicate wildcard", nil)
			}
			def.wildcard = m.Fn
		default:
			return Definition{}, apperrors.NewValidationError(field, fmt.Sprintf("unsupported matcher %T", m), nil)
		}
	}
	return def, nil
}

// MustDefine is like Define but panics on an invalid matcher set. It is
// meant for package-level component tables.
func MustDefine(matchers ...Matcher) Definition {
	def, err := Define(matchers...)
	if err != nil {
		panic(err)
	}
	return def
}

// Dispatch resolves one prop value against the definition. Branches are
// tried in order literal, numeric, boolean, wildcard and the first match
// wins. A nil fragment with a non-None match means the branch fired but
// contributed nothing. Errors from matcher functions are returned unchanged.
func (d Definition) Dispatch(v style.Value, props style.Props) (style.Fragment, Match, error) {
	for _, lit := range d.literals {
		if lit.Value.Equal(v) {
			return lit.Fragment.Clone(), MatchLiteral, nil
		}
	}

	if n, ok := v.Num(); ok && d.numeric != nil {
		frag, err := d.numeric(n, props)
		if err != nil {
			return nil, MatchNumeric, err
		}
		return frag.Clone(), MatchNumeric, nil
	}

	if b, ok := v.Boolean(); ok {
		branch := d.boolean.False
		if b {
			branch = d.boolean.True
		}
		if branch != nil {
			return branch.Clone(), MatchBoolean, nil
		}
	}

	if d.wildcard != nil {
		frag, err := d.wildcard(v, props)
		if err != nil {
			return nil, MatchWildcard, err
		}
		return frag.Clone(), MatchWildcard, nil
	}

	return nil, MatchNone, nil
}

// Discriminants lists the keys the definition responds to, in dispatch order.
func (d Definition) Discriminants() []string {
	keys := make([]string, 0, len(d.literals)+4)
	for _, lit := range d.literals {
		keys = append(keys, lit.Value.String())
	}
	if d.numeric != nil {
		keys = append(keys, NumberKey)
	}
	if d.boolean.True != nil {
		keys = append(keys, "true")
	}
	if d.boolean.False != nil {
		keys = append(keys, "false")
	}
	if d.wildcard != nil {
		keys = append(keys, WildcardKey)
	}
	return keys
}

// SampleNumber is the value Samples offers for a numeric predicate.
const SampleNumber = 2

// Samples returns one value per branch that a literal value can select:
// every literal, a number when a numeric predicate exists and the boolean
// sides that are declared. The wildcard accepts anything and is not sampled.
func (d Definition) Samples() []style.Value {
	samples := make([]style.Value, 0, len(d.literals)+3)
	for _, lit := range d.literals {
		samples = append(samples, lit.Value)
	}
	if d.numeric != nil {
		n := style.Int(SampleNumber)
		if !containsValue(samples, n) {
			samples = append(samples, n)
		}
	}
	if d.boolean.True != nil {
		samples = append(samples, style.Bool(true))
	}
	if d.boolean.False != nil {
		samples = append(samples, style.Bool(false))
	}
	return samples
}

func containsValue(values []style.Value, v style.Value) bool {
	for _, existing := range values {
		if existing.Equal(v) {
			return true
		}
	}
	return false
}
