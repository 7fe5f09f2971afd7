// Package diagnostics lints a single resolution. The resolver stays silent
// about unmatched values and dropped props; these checks surface them on
// request.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/variantkit/internal/resolver"
)

// Check runs every rule over trace in a fixed order.
func Check(trace resolver.Trace) []Finding {
	var findings []Finding
	findings = append(findings, CheckUnmatched(trace)...)
	findings = append(findings, CheckDropped(trace)...)
	findings = append(findings, CheckDeferred(trace)...)
	findings = append(findings, CheckOverrides(trace)...)
	return findings
}

// Strict returns an error combining every warning in findings, or nil.
func Strict(findings []Finding) error {
	var failed []string
	for _, f := range findings {
		if f.Severity >= SeverityWarning {
			failed = append(failed, f.Message)
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return fmt.Errorf("diagnostics failed: %s", strings.Join(failed, "; "))
}
