// Package platform selects between the web and native render targets.
// Selection happens once, when a component declaration is compiled.
package platform

import (
	"fmt"
	"strings"
)

// Platform identifies a render target.
type Platform int

const (
	Web Platform = iota
	Native
)

// All lists every platform in a stable order.
var All = []Platform{Web, Native}

func (p Platform) String() string {
	switch p {
	case Web:
		return "web"
	case Native:
		return "native"
	default:
		return fmt.Sprintf("platform(%d)", int(p))
	}
}

// Parse maps a target name to a Platform. Mobile target names map to Native.
func Parse(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "web":
		return Web, nil
	case "native", "ios", "android":
		return Native, nil
	default:
		return Web, fmt.Errorf("unknown platform %q (expected web or native)", name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Platform) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Platform) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Choice holds one value per platform. Absent values are reported by Select
// with ok=false rather than stored as a zero value.
type Choice[T any] struct {
	web       T
	native    T
	hasWeb    bool
	hasNative bool
}

// Both returns a Choice with a value for each platform.
func Both[T any](web, native T) Choice[T] {
	return Choice[T]{web: web, native: native, hasWeb: true, hasNative: true}
}

// Same returns a Choice with the same value on every platform.
func Same[T any](v T) Choice[T] {
	return Both(v, v)
}

// Only returns a Choice present on a single platform.
func Only[T any](p Platform, v T) Choice[T] {
	var c Choice[T]
	if p == Web {
		c.web, c.hasWeb = v, true
	} else {
		c.native, c.hasNative = v, true
	}
	return c
}

// Select returns the value for p and whether the platform has one.
func (c Choice[T]) Select(p Platform) (T, bool) {
	if p == Web {
		return c.web, c.hasWeb
	}
	return c.native, c.hasNative
}

// Or returns the value for p, or fallback when the platform has none.
func (c Choice[T]) Or(p Platform, fallback T) T {
	if v, ok := c.Select(p); ok {
		return v
	}
	return fallback
}

// IsZero reports whether the Choice holds no value at all.
func (c Choice[T]) IsZero() bool {
	return !c.hasWeb && !c.hasNative
}
