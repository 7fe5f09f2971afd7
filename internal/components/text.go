// Package components declares the built-in components and compiles them
// once per platform at package initialization.
package components

import (
	"github.com/alexisbeaulieu97/variantkit/internal/platform"
	"github.com/alexisbeaulieu97/variantkit/internal/resolver"
	"github.com/alexisbeaulieu97/variantkit/internal/style"
	"github.com/alexisbeaulieu97/variantkit/internal/variant"
)

func ellipseStyle() style.Fragment {
	return style.Fragment{
		"maxWidth":     style.String("100%"),
		"overflow":     style.String("hidden"),
		"textOverflow": style.String("ellipsis"),
		"whiteSpace":   style.String("nowrap"),
	}
}

func lineClamp(lines float64, _ style.Props) (style.Fragment, error) {
	if !(lines >= 1) {
		return nil, nil
	}
	return style.Fragment{
		"WebkitLineClamp": style.Number(lines),
		"WebkitBoxOrient": style.String("vertical"),
		"display":         style.String("-webkit-box"),
		"overflow":        style.String("hidden"),
	}, nil
}

// TextDeclaration returns the declaration of the Text component.
func TextDeclaration() resolver.Declaration {
	return resolver.Declaration{
		Name:             "Text",
		IsText:           true,
		AcceptsClassName: true,
		DefaultProps: platform.Both(
			style.Props{
				"color":     style.String("$color"),
				"display":   style.String("inline"),
				"boxSizing": style.String("border-box"),
				"wordWrap":  style.String("break-word"),
				"margin":    style.Int(0),
			},
			style.Props{
				"color":                style.String("$color"),
				"display":              style.String("flex"),
				"suppressHighlighting": style.Bool(true),
			},
		),
		InlineWhenUnflattened: []string{"fontFamily"},
		Variants: []resolver.VariantDecl{
			resolver.PlatformVariant("numberOfLines", platform.Only(platform.Web, variant.MustDefine(
				variant.When(style.Int(1), ellipseStyle()),
				variant.Numeric(lineClamp),
			))),
			// accepted for compatibility, no styling yet
			resolver.Variant("ellipsizeMode", variant.MustDefine(variant.Ignore())),
			resolver.Variant("selectable", variant.MustDefine(variant.Boolean(
				style.Fragment{"userSelect": style.String("text"), "cursor": style.String("text")},
				style.Fragment{"userSelect": style.String("none"), "cursor": style.String("default")},
			))),
			resolver.PlatformVariant("ellipse", platform.Both(
				variant.MustDefine(variant.IfTrue(ellipseStyle())),
				variant.MustDefine(variant.IfTrue(style.Fragment{
					"numberOfLines": style.Int(1),
					"lineBreakMode": style.String("clip"),
				})),
			)),
		},
		DeoptProps: platform.Both([]string(nil), []string{"ellipse"}),
	}
}

// Text is the compiled Text component.
var Text = resolver.MustCompile(TextDeclaration())

// Builtins returns the built-in declarations in a stable order.
func Builtins() []resolver.Declaration {
	return []resolver.Declaration{TextDeclaration()}
}
