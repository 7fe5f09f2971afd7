package resolver

import (
	"fmt"

	"github.com/alexisbeaulieu97/variantkit/internal/platform"
	"github.com/alexisbeaulieu97/variantkit/internal/style"
	"github.com/alexisbeaulieu97/variantkit/internal/styleprops"
	"github.com/alexisbeaulieu97/variantkit/internal/variant"
	apperrors "github.com/alexisbeaulieu97/variantkit/pkg/errors"
)

// VariantDecl declares one variant, optionally with a different definition
// per platform or on one platform only.
type VariantDecl struct {
	Name       string
	Definition platform.Choice[variant.Definition]
}

// Variant declares a variant shared by every platform.
func Variant(name string, def variant.Definition) VariantDecl {
	return VariantDecl{Name: name, Definition: platform.Same(def)}
}

// PlatformVariant declares a variant whose definition depends on the platform.
// Platforms without a definition omit the variant from their table.
func PlatformVariant(name string, defs platform.Choice[variant.Definition]) VariantDecl {
	return VariantDecl{Name: name, Definition: defs}
}

// Declaration is the platform-independent description of a component's
// styling. It is compiled once into one Spec per platform.
type Declaration struct {
	Name             string
	IsText           bool
	AcceptsClassName bool

	// BaseStyle seeds the accumulator and has the lowest precedence.
	BaseStyle style.Fragment

	DefaultProps platform.Choice[style.Props]
	Variants     []VariantDecl

	// DeoptProps lists, per platform, props that stay live instead of being
	// flattened into the style.
	DeoptProps            platform.Choice[[]string]
	InlineWhenUnflattened []string

	// PropTypes declares the component's own props. With StrictProps set,
	// names that are neither styles nor declared props are dropped.
	PropTypes   []string
	StrictProps bool

	// ValidStyles overrides the allow-list; nil selects the shared list,
	// extended with the text-only names when IsText is set.
	ValidStyles style.Set
}

// Specs holds the two precomputed platform specializations of a declaration.
type Specs struct {
	Web    *Spec
	Native *Spec
}

// For returns the spec for p.
func (s Specs) For(p platform.Platform) *Spec {
	if p == platform.Web {
		return s.Web
	}
	return s.Native
}

// Resolve resolves props against the spec for p.
func (s Specs) Resolve(p platform.Platform, props style.Props) (RenderInput, error) {
	return Resolve(s.For(p), props)
}

// Compile specializes decl for every platform.
func Compile(decl Declaration) (Specs, error) {
	web, err := NewSpec(decl, platform.Web)
	if err != nil {
		return Specs{}, err
	}
	native, err := NewSpec(decl, platform.Native)
	if err != nil {
		return Specs{}, err
	}
	return Specs{Web: web, Native: native}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(decl Declaration) Specs {
	specs, err := Compile(decl)
	if err != nil {
		panic(err)
	}
	return specs
}

// Spec is a component declaration specialized for one platform. It is
// immutable and safe to share between concurrent renders.
type Spec struct {
	name             string
	platform         platform.Platform
	isText           bool
	acceptsClassName bool

	defaultProps style.Props
	baseStyle    style.Fragment
	defaultStyle style.Fragment
	seed         style.Fragment

	variants *variant.Table
	deopt    DeoptGuard
	inline   style.Set
	filter   PassthroughFilter
}

// NewSpec specializes decl for p.
func NewSpec(decl Declaration, p platform.Platform) (*Spec, error) {
	if decl.Name == "" {
		return nil, apperrors.NewValidationError("name", "component name is required", nil)
	}

	entries := make([]variant.Entry, 0, len(decl.Variants))
	for _, v := range decl.Variants {
		def, ok := v.Definition.Select(p)
		if !ok {
			continue
		}
		entries = append(entries, variant.Entry{Name: v.Name, Definition: def})
	}
	table, err := variant.NewTable(entries...)
	if err != nil {
		return nil, fmt.Errorf("compile %s for %s: %w", decl.Name, p, err)
	}

	valid := decl.ValidStyles
	if valid == nil {
		valid = styleprops.For(decl.IsText)
	} else {
		valid = valid.Union()
	}

	deoptNames, _ := decl.DeoptProps.Select(p)
	deopt := NewDeoptGuard(deoptNames...)

	defaults, _ := decl.DefaultProps.Select(p)
	defaults = defaults.Clone()

	filter := PassthroughFilter{
		styles:           valid,
		propTypes:        style.NewSet(decl.PropTypes...),
		strict:           decl.StrictProps,
		acceptsClassName: decl.AcceptsClassName,
	}

	defaultStyle := style.Fragment{}
	for name, value := range defaults {
		if value.IsUndefined() || table.Has(name) || deopt.Retain(name) {
			continue
		}
		if filter.Classify(name) == DispositionStyle {
			defaultStyle[name] = value
		}
	}

	base := decl.BaseStyle.Clone()
	return &Spec{
		name:             decl.Name,
		platform:         p,
		isText:           decl.IsText,
		acceptsClassName: decl.AcceptsClassName,
		defaultProps:     defaults,
		baseStyle:        base,
		defaultStyle:     defaultStyle,
		seed:             style.Merge(base, defaultStyle),
		variants:         table,
		deopt:            deopt,
		inline:           style.NewSet(decl.InlineWhenUnflattened...),
		filter:           filter,
	}, nil
}

// Name returns the component name.
func (s *Spec) Name() string { return s.name }

// Platform returns the platform the spec was specialized for.
func (s *Spec) Platform() platform.Platform { return s.platform }

// IsText reports whether the component renders text.
func (s *Spec) IsText() bool { return s.isText }

// AcceptsClassName reports whether className is forwarded to the primitive.
func (s *Spec) AcceptsClassName() bool { return s.acceptsClassName }

// Variants returns the platform's variant table.
func (s *Spec) Variants() *variant.Table { return s.variants }

// DefaultProps returns a copy of the platform's default props.
func (s *Spec) DefaultProps() style.Props { return s.defaultProps.Clone() }

// BaseStyle returns a copy of the compile-time seed: the declared base style
// merged with the style-like default props.
func (s *Spec) BaseStyle() style.Fragment { return s.seed.Clone() }

// Deopt returns the spec's deopt guard.
func (s *Spec) Deopt() DeoptGuard { return s.deopt }

// Filter returns the spec's passthrough filter.
func (s *Spec) Filter() PassthroughFilter { return s.filter }

// InlineWhenUnflattened returns the names kept as inline style, sorted.
func (s *Spec) InlineWhenUnflattened() []string { return s.inline.Sorted() }
