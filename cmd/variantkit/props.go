package main

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/variantkit/internal/style"
)

// parseProps turns repeated name=value flags into props. Values are read
// as literals: numbers, true, false, null, undefined or a string.
func parseProps(pairs []string) (style.Props, error) {
	props := make(style.Props, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, newCommandError("parse prop", pair, fmt.Errorf("expected name=value"),
				"Pass props as --prop numberOfLines=2 or --prop 'color=\"red\"'.")
		}
		props[name] = style.ParseLiteral(raw)
	}
	return props, nil
}
