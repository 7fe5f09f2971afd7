package resolver

import "github.com/alexisbeaulieu97/variantkit/internal/style"

// Disposition says where a prop ends up after filtering.
type Disposition int

const (
	DispositionForward Disposition = iota
	DispositionStyle
	DispositionDrop
)

func (d Disposition) String() string {
	switch d {
	case DispositionStyle:
		return "style"
	case DispositionDrop:
		return "drop"
	default:
		return "forward"
	}
}

const classNameProp = "className"

// PassthroughFilter partitions props into style entries and props forwarded
// to the rendering primitive.
type PassthroughFilter struct {
	styles           style.Set
	propTypes        style.Set
	strict           bool
	acceptsClassName bool
}

// NewPassthroughFilter builds a filter over the given allow-list.
func NewPassthroughFilter(styles, propTypes style.Set, strict, acceptsClassName bool) PassthroughFilter {
	return PassthroughFilter{
		styles:           styles.Union(),
		propTypes:        propTypes.Union(),
		strict:           strict,
		acceptsClassName: acceptsClassName,
	}
}

// Classify returns the disposition of a single prop name.
func (f PassthroughFilter) Classify(name string) Disposition {
	if name == classNameProp && f.acceptsClassName {
		return DispositionForward
	}
	if f.styles.Has(name) {
		return DispositionStyle
	}
	if f.propTypes.Has(name) || !f.strict {
		return DispositionForward
	}
	return DispositionDrop
}

// Split partitions props. Dropped names are returned sorted.
func (f PassthroughFilter) Split(props style.Props) (style.Fragment, style.Props, []string) {
	styles := style.Fragment{}
	forwarded := style.Props{}
	var dropped []string
	for _, name := range props.Keys() {
		value := props[name]
		switch f.Classify(name) {
		case DispositionStyle:
			styles[name] = value
		case DispositionDrop:
			dropped = append(dropped, name)
		default:
			forwarded[name] = value
		}
	}
	return styles, forwarded, dropped
}
