package config

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/variantkit/internal/platform"
	"github.com/alexisbeaulieu97/variantkit/internal/resolver"
	"github.com/alexisbeaulieu97/variantkit/internal/style"
	"github.com/alexisbeaulieu97/variantkit/internal/variant"
	apperrors "github.com/alexisbeaulieu97/variantkit/pkg/errors"
)

// Declaration converts the file into a resolver declaration.
func (f *File) Declaration() (resolver.Declaration, error) {
	base, err := toFragment(f.BaseStyle, "base_style")
	if err != nil {
		return resolver.Declaration{}, err
	}

	webDefaults, err := toProps(f.DefaultProps.All, f.DefaultProps.Web, "default_props.web")
	if err != nil {
		return resolver.Declaration{}, err
	}
	nativeDefaults, err := toProps(f.DefaultProps.All, f.DefaultProps.Native, "default_props.native")
	if err != nil {
		return resolver.Declaration{}, err
	}

	decl := resolver.Declaration{
		Name:                  f.Name,
		IsText:                f.Text,
		AcceptsClassName:      f.AcceptsClassName,
		BaseStyle:             base,
		DefaultProps:          platform.Both(webDefaults, nativeDefaults),
		DeoptProps:            platform.Both(joinNames(f.Deopt.All, f.Deopt.Web), joinNames(f.Deopt.All, f.Deopt.Native)),
		InlineWhenUnflattened: append([]string(nil), f.InlineWhenUnflattened...),
		PropTypes:             append([]string(nil), f.PropTypes...),
		StrictProps:           f.StrictProps,
	}

	for i, v := range f.Variants {
		vd, ok, err := buildVariant(v, i)
		if err != nil {
			return resolver.Declaration{}, err
		}
		if ok {
			decl.Variants = append(decl.Variants, vd)
		}
	}

	return decl, nil
}

func buildVariant(v Variant, index int) (resolver.VariantDecl, bool, error) {
	var defs [2]variant.Definition
	var present [2]bool
	for i, p := range platform.All {
		rules, ok := v.rulesFor(p)
		if !ok {
			continue
		}
		def, err := buildDefinition(rules, fieldForVariant(index, p.String()))
		if err != nil {
			return resolver.VariantDecl{}, false, err
		}
		defs[i], present[i] = def, true
	}

	switch {
	case present[0] && present[1]:
		return resolver.PlatformVariant(v.Name, platform.Both(defs[0], defs[1])), true, nil
	case present[0]:
		return resolver.PlatformVariant(v.Name, platform.Only(platform.Web, defs[0])), true, nil
	case present[1]:
		return resolver.PlatformVariant(v.Name, platform.Only(platform.Native, defs[1])), true, nil
	default:
		return resolver.VariantDecl{}, false, nil
	}
}

func (v Variant) rulesFor(p platform.Platform) (Rules, bool) {
	override := v.Web
	if p == platform.Native {
		override = v.Native
	}
	if override != nil {
		return *override, true
	}
	shared := v.shared()
	if shared.empty() {
		return Rules{}, false
	}
	switch v.Platform {
	case "", "all":
		return shared, true
	default:
		return shared, v.Platform == p.String()
	}
}

func buildDefinition(r Rules, field string) (variant.Definition, error) {
	keys := make([]string, 0, len(r.Cases))
	for key := range r.Cases {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	matchers := make([]variant.Matcher, 0, len(keys)+2)
	for _, key := range keys {
		frag, err := toFragment(r.Cases[key], field+".cases."+key)
		if err != nil {
			return variant.Definition{}, err
		}
		matchers = append(matchers, caseMatcher(key, frag))
	}

	if r.Number != nil {
		fn, err := numberMatcher(*r.Number, field+".number")
		if err != nil {
			return variant.Definition{}, err
		}
		matchers = append(matchers, variant.Numeric(fn))
	}

	if r.Wildcard != nil {
		if r.Wildcard.Ignore || len(r.Wildcard.Style) == 0 {
			matchers = append(matchers, variant.Ignore())
		} else {
			frag, err := toFragment(r.Wildcard.Style, field+".wildcard.style")
			if err != nil {
				return variant.Definition{}, err
			}
			matchers = append(matchers, variant.Otherwise(func(style.Value, style.Props) (style.Fragment, error) {
				return frag, nil
			}))
		}
	}

	def, err := variant.Define(matchers...)
	if err != nil {
		return variant.Definition{}, fmt.Errorf("%s: %w", field, err)
	}
	return def, nil
}

func caseMatcher(key string, frag style.Fragment) variant.Matcher {
	switch key {
	case "true":
		return variant.IfTrue(frag)
	case "false":
		return variant.IfFalse(frag)
	case "null":
		return variant.When(style.Null(), frag)
	}
	if n, err := strconv.ParseFloat(key, 64); err == nil && isDecimalLiteral(key, n) {
		return variant.When(style.Number(n), frag)
	}
	return variant.When(style.String(key), frag)
}

// isDecimalLiteral rejects the non-finite and hexadecimal spellings that
// ParseFloat also accepts; those keys stay string literals.
func isDecimalLiteral(key string, n float64) bool {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return false
	}
	return !strings.ContainsAny(key, "xX")
}

func numberMatcher(rule NumberRule, field string) (variant.NumericFunc, error) {
	template, err := toFragment(rule.Style, field+".style")
	if err != nil {
		return nil, err
	}
	var placeholders []string
	for key, value := range template {
		if s, ok := value.Str(); ok && s == ValuePlaceholder {
			placeholders = append(placeholders, key)
		}
	}
	minimum, maximum := rule.Min, rule.Max

	return func(n float64, _ style.Props) (style.Fragment, error) {
		if math.IsNaN(n) {
			return nil, nil
		}
		if minimum != nil && n < *minimum {
			return nil, nil
		}
		if maximum != nil && n > *maximum {
			return nil, nil
		}
		frag := template.Clone()
		for _, key := range placeholders {
			frag[key] = style.Number(n)
		}
		return frag, nil
	}, nil
}

// toFragment converts a decoded mapping into a style fragment. A nil mapping
// yields an empty, non-nil fragment so that an empty case still matches.
func toFragment(raw map[string]any, field string) (style.Fragment, error) {
	frag := make(style.Fragment, len(raw))
	for key, value := range raw {
		v, err := style.FromAny(value)
		if err != nil {
			return nil, apperrors.NewValidationError(field+"."+key, err.Error(), err)
		}
		if v.Kind() == style.KindBool {
			return nil, apperrors.NewValidationError(field+"."+key, "style values must be strings, numbers or null", nil)
		}
		frag[key] = v
	}
	return frag, nil
}

func toProps(shared, specific map[string]any, field string) (style.Props, error) {
	props := make(style.Props, len(shared)+len(specific))
	for _, layer := range []map[string]any{shared, specific} {
		for key, value := range layer {
			v, err := style.FromAny(value)
			if err != nil {
				return nil, apperrors.NewValidationError(field+"."+key, err.Error(), err)
			}
			props[key] = v
		}
	}
	return props, nil
}

func joinNames(shared, specific []string) []string {
	out := make([]string, 0, len(shared)+len(specific))
	out = append(out, shared...)
	return append(out, specific...)
}
