// Package styleprops holds the style-name allow-lists used to tell style
// props apart from component props.
package styleprops

import "github.com/alexisbeaulieu97/variantkit/internal/style"

var validStyles = []string{
	// layout
	"alignContent", "alignItems", "alignSelf", "aspectRatio", "bottom", "boxSizing",
	"display", "end", "flex", "flexBasis", "flexDirection", "flexGrow", "flexShrink",
	"flexWrap", "gap", "columnGap", "rowGap", "height", "justifyContent", "left",
	"margin", "marginBottom", "marginEnd", "marginHorizontal", "marginLeft",
	"marginRight", "marginStart", "marginTop", "marginVertical", "maxHeight",
	"maxWidth", "minHeight", "minWidth", "overflow", "overflowX", "overflowY",
	"padding", "paddingBottom", "paddingEnd", "paddingHorizontal", "paddingLeft",
	"paddingRight", "paddingStart", "paddingTop", "paddingVertical", "position",
	"right", "start", "top", "width", "zIndex", "direction",
	// visual
	"backgroundColor", "borderBottomColor", "borderBottomLeftRadius",
	"borderBottomRightRadius", "borderBottomWidth", "borderColor", "borderLeftColor",
	"borderLeftWidth", "borderRadius", "borderRightColor", "borderRightWidth",
	"borderStyle", "borderTopColor", "borderTopLeftRadius", "borderTopRightRadius",
	"borderTopWidth", "borderWidth", "opacity", "outlineColor", "outlineStyle",
	"outlineWidth", "outlineOffset", "shadowColor", "shadowOffset", "shadowOpacity",
	"shadowRadius", "elevation", "backfaceVisibility",
	// transforms
	"transform", "transformOrigin", "rotate", "scale", "scaleX", "scaleY",
	"x", "y", "skewX", "skewY",
	// web interaction
	"cursor", "pointerEvents", "userSelect",
}

var textOnly = []string{
	"color", "fontFamily", "fontSize", "fontStyle", "fontVariant", "fontWeight",
	"letterSpacing", "lineHeight", "textAlign", "textAlignVertical",
	"textDecorationColor", "textDecorationLine", "textDecorationStyle",
	"textShadowColor", "textShadowOffset", "textShadowRadius", "textTransform",
	"verticalAlign", "writingDirection", "whiteSpace", "wordWrap", "textOverflow",
	"WebkitLineClamp", "WebkitBoxOrient",
}

// ValidStyles returns the generic style allow-list.
func ValidStyles() style.Set {
	return style.NewSet(validStyles...)
}

// TextOnly returns the style names that only apply to text components.
func TextOnly() style.Set {
	return style.NewSet(textOnly...)
}

// ForText returns the generic allow-list extended with the text-only names.
func ForText() style.Set {
	return ValidStyles().Union(TextOnly())
}

// For returns the allow-list for a component, extended for text when isText is set.
func For(isText bool) style.Set {
	if isText {
		return ForText()
	}
	return ValidStyles()
}
