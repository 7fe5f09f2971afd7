package resolver

import (
	"github.com/alexisbeaulieu97/variantkit/internal/style"
	"github.com/alexisbeaulieu97/variantkit/internal/variant"
	apperrors "github.com/alexisbeaulieu97/variantkit/pkg/errors"
)

// RenderInput is the resolved hand-off to the rendering primitive. Every
// call to Resolve builds a new one; nothing in it aliases the Spec.
type RenderInput struct {
	// Style is the flattened style. It never holds null entries.
	Style style.Fragment `json:"style" yaml:"style"`
	// Forwarded holds every prop that was not resolved into Style.
	Forwarded style.Props `json:"forwardedProps" yaml:"forwardedProps"`
	// Deferred holds the fragments of deopt variants, keyed by variant name,
	// for the runtime layer that interprets the live prop.
	Deferred map[string]style.Fragment `json:"deferred,omitempty" yaml:"deferred,omitempty"`
	// Inline repeats the Style entries that must stay inline.
	Inline style.Fragment `json:"inline,omitempty" yaml:"inline,omitempty"`
}

// Step records how one variant resolved.
type Step struct {
	Variant  string
	Value    style.Value
	Match    variant.Match
	Keys     []string
	Deferred bool
}

// Trace records the decisions taken during one resolution.
type Trace struct {
	Component string
	Steps     []Step
	// Dropped lists props removed by strict prop types.
	Dropped []string
	// Overrides lists caller style props that replaced a variant-produced value.
	Overrides []string
}

// Resolve turns props into the render input for spec. Default props are
// merged under props, variants are folded in declaration order over the
// compile-time seed, deopt props stay live and the remainder is split into
// style and forwarded props. The only error is a failing matcher function.
func Resolve(spec *Spec, props style.Props) (RenderInput, error) {
	out, _, err := resolve(spec, props)
	return out, err
}

// ResolveTrace is Resolve with a record of every decision taken.
func ResolveTrace(spec *Spec, props style.Props) (RenderInput, Trace, error) {
	return resolve(spec, props)
}

func resolve(spec *Spec, props style.Props) (RenderInput, Trace, error) {
	trace := Trace{Component: spec.name}
	merged := style.MergeProps(spec.defaultProps, props)

	acc, deferred, err := foldVariants(spec, merged, seedFor(spec, props), &trace)
	if err != nil {
		return RenderInput{}, Trace{}, err
	}

	rest := style.Props{}
	forwarded := style.Props{}
	for _, name := range merged.Keys() {
		value := merged[name]
		if spec.deopt.Retain(name) {
			forwarded[name] = value
			continue
		}
		if spec.variants.Has(name) {
			continue
		}
		if _, fromCaller := props.Get(name); !fromCaller && spec.filter.Classify(name) == DispositionStyle {
			// already part of the seed
			continue
		}
		rest[name] = value
	}

	callerStyle, passed, dropped := spec.filter.Split(rest)
	for name, value := range passed {
		forwarded[name] = value
	}
	trace.Dropped = dropped

	produced := style.Set{}
	for _, step := range trace.Steps {
		if step.Deferred {
			continue
		}
		for _, key := range step.Keys {
			produced[key] = struct{}{}
		}
	}
	for _, name := range callerStyle.Keys() {
		if produced.Has(name) {
			trace.Overrides = append(trace.Overrides, name)
		}
	}

	final := style.Merge(acc, callerStyle).Flatten()

	var inline style.Fragment
	for name := range spec.inline {
		if v, ok := final[name]; ok {
			if inline == nil {
				inline = style.Fragment{}
			}
			inline[name] = v
		}
	}

	return RenderInput{
		Style:     final,
		Forwarded: forwarded,
		Deferred:  deferred,
		Inline:    inline,
	}, trace, nil
}

// seedFor returns the accumulator seed. Default style props hidden by an
// explicit Undefined from the caller are left out.
func seedFor(spec *Spec, props style.Props) style.Fragment {
	var hidden []string
	for name, value := range props {
		if value.IsUndefined() {
			if _, ok := spec.defaultStyle[name]; ok {
				hidden = append(hidden, name)
			}
		}
	}
	if len(hidden) == 0 {
		return style.Merge(spec.seed)
	}
	defaults := spec.defaultStyle.Clone()
	for _, name := range hidden {
		delete(defaults, name)
	}
	return style.Merge(spec.baseStyle, defaults)
}

// foldVariants merges the fragment of every present variant into acc in
// declaration order. Deopt variants are evaluated but kept out of acc.
func foldVariants(spec *Spec, merged style.Props, acc style.Fragment, trace *Trace) (style.Fragment, map[string]style.Fragment, error) {
	var deferred map[string]style.Fragment
	for _, entry := range spec.variants.Entries() {
		value, ok := merged.Get(entry.Name)
		if !ok {
			continue
		}

		frag, match, err := entry.Definition.Dispatch(value, merged)
		if err != nil {
			return nil, nil, apperrors.NewMatcherError(spec.name, entry.Name, err)
		}

		step := Step{Variant: entry.Name, Value: value, Match: match, Keys: frag.Keys()}
		if spec.deopt.Retain(entry.Name) {
			step.Deferred = true
			if frag != nil {
				if deferred == nil {
					deferred = make(map[string]style.Fragment)
				}
				deferred[entry.Name] = frag
			}
		} else if frag != nil {
			acc = style.Merge(acc, frag)
		}
		trace.Steps = append(trace.Steps, step)
	}
	return acc, deferred, nil
}
