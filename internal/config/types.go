package config

// File is the on-disk declaration of a component, written in YAML or TOML.
type File struct {
	Name                  string         `yaml:"name" toml:"name" validate:"required,component_name"`
	Description           string         `yaml:"description,omitempty" toml:"description"`
	Text                  bool           `yaml:"text,omitempty" toml:"text"`
	AcceptsClassName      bool           `yaml:"accepts_class_name,omitempty" toml:"accepts_class_name"`
	BaseStyle             map[string]any `yaml:"base_style,omitempty" toml:"base_style" validate:"omitempty,dive,keys,prop_name,endkeys"`
	DefaultProps          DefaultProps   `yaml:"default_props,omitempty" toml:"default_props"`
	InlineWhenUnflattened []string       `yaml:"inline_when_unflattened,omitempty" toml:"inline_when_unflattened" validate:"omitempty,dive,prop_name"`
	Deopt                 PlatformNames  `yaml:"deopt,omitempty" toml:"deopt"`
	PropTypes             []string       `yaml:"prop_types,omitempty" toml:"prop_types" validate:"omitempty,dive,prop_name"`
	StrictProps           bool           `yaml:"strict_props,omitempty" toml:"strict_props"`
	Variants              []Variant      `yaml:"variants,omitempty" toml:"variants" validate:"omitempty,dive"`
}

// DefaultProps holds default props shared by every platform plus
// per-platform additions that override the shared ones.
type DefaultProps struct {
	All    map[string]any `yaml:"all,omitempty" toml:"all" validate:"omitempty,dive,keys,prop_name,endkeys"`
	Web    map[string]any `yaml:"web,omitempty" toml:"web" validate:"omitempty,dive,keys,prop_name,endkeys"`
	Native map[string]any `yaml:"native,omitempty" toml:"native" validate:"omitempty,dive,keys,prop_name,endkeys"`
}

// PlatformNames lists prop names shared by every platform plus per-platform additions.
type PlatformNames struct {
	All    []string `yaml:"all,omitempty" toml:"all" validate:"omitempty,dive,prop_name"`
	Web    []string `yaml:"web,omitempty" toml:"web" validate:"omitempty,dive,prop_name"`
	Native []string `yaml:"native,omitempty" toml:"native" validate:"omitempty,dive,prop_name"`
}

// Variant declares one variant. Cases, Number and Wildcard apply on the
// platforms selected by Platform; Web and Native replace them on that platform.
type Variant struct {
	Name     string        `yaml:"name" toml:"name" validate:"required,prop_name"`
	Platform string        `yaml:"platform,omitempty" toml:"platform" validate:"omitempty,platform_scope"`
	Cases    Cases         `yaml:"cases,omitempty" toml:"cases"`
	Number   *NumberRule   `yaml:"number,omitempty" toml:"number"`
	Wildcard *WildcardRule `yaml:"wildcard,omitempty" toml:"wildcard"`
	Web      *Rules        `yaml:"web,omitempty" toml:"web"`
	Native   *Rules        `yaml:"native,omitempty" toml:"native"`
}

// Rules is a platform-specific matcher set.
type Rules struct {
	Cases    Cases         `yaml:"cases,omitempty" toml:"cases"`
	Number   *NumberRule   `yaml:"number,omitempty" toml:"number"`
	Wildcard *WildcardRule `yaml:"wildcard,omitempty" toml:"wildcard"`
}

// Cases maps a discriminant to a style fragment. Keys "true" and "false"
// become boolean branches, numeric keys number literals, "null" the null
// literal, and anything else a string literal.
type Cases map[string]map[string]any

// NumberRule matches numeric values within optional bounds. String values
// equal to ValuePlaceholder are replaced by the prop value.
type NumberRule struct {
	Min   *float64       `yaml:"min,omitempty" toml:"min"`
	Max   *float64       `yaml:"max,omitempty" toml:"max"`
	Style map[string]any `yaml:"style" toml:"style" validate:"required,dive,keys,prop_name,endkeys"`
}

// WildcardRule handles values nothing else matched: either ignored or
// mapped to a constant fragment.
type WildcardRule struct {
	Ignore bool           `yaml:"ignore,omitempty" toml:"ignore"`
	Style  map[string]any `yaml:"style,omitempty" toml:"style" validate:"omitempty,dive,keys,prop_name,endkeys"`
}

// ValuePlaceholder is substituted by the numeric prop value in NumberRule styles.
const ValuePlaceholder = "@value"

func (v Variant) shared() Rules {
	return Rules{Cases: v.Cases, Number: v.Number, Wildcard: v.Wildcard}
}

func (r Rules) empty() bool {
	return len(r.Cases) == 0 && r.Number == nil && r.Wildcard == nil
}
