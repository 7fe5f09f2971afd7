package diagnostics

import (
	"fmt"

	"github.com/alexisbeaulieu97/variantkit/internal/resolver"
	"github.com/alexisbeaulieu97/variantkit/internal/variant"
)

// CheckUnmatched reports variants whose prop value no matcher accepted.
func CheckUnmatched(trace resolver.Trace) []Finding {
	var findings []Finding
	for _, step := range trace.Steps {
		if step.Match != variant.MatchNone {
			continue
		}
		findings = append(findings, Finding{
			Rule:     RuleUnmatchedValue,
			Severity: SeverityWarning,
			Subject:  step.Variant,
			Message:  fmt.Sprintf("value %s matched no case of %s.%s", step.Value, trace.Component, step.Variant),
		})
	}
	return findings
}

// CheckDropped reports props removed because they are not declared.
func CheckDropped(trace resolver.Trace) []Finding {
	findings := make([]Finding, 0, len(trace.Dropped))
	for _, name := range trace.Dropped {
		findings = append(findings, Finding{
			Rule:     RuleDroppedProp,
			Severity: SeverityWarning,
			Subject:  name,
			Message:  fmt.Sprintf("prop %q is not declared by %s and was dropped", name, trace.Component),
		})
	}
	return findings
}

// CheckDeferred reports variants left to the runtime because their prop is live.
func CheckDeferred(trace resolver.Trace) []Finding {
	var findings []Finding
	for _, step := range trace.Steps {
		if !step.Deferred {
			continue
		}
		findings = append(findings, Finding{
			Rule:     RuleDeferred,
			Severity: SeverityInfo,
			Subject:  step.Variant,
			Message:  fmt.Sprintf("%s stays live; its style is deferred to the runtime", step.Variant),
		})
	}
	return findings
}

// CheckOverrides reports caller style props that replaced variant output.
func CheckOverrides(trace resolver.Trace) []Finding {
	findings := make([]Finding, 0, len(trace.Overrides))
	for _, name := range trace.Overrides {
		findings = append(findings, Finding{
			Rule:     RuleOverride,
			Severity: SeverityInfo,
			Subject:  name,
			Message:  fmt.Sprintf("style prop %q overrides a variant value", name),
		})
	}
	return findings
}
