package diagnostics

// Severity ranks a finding.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "info"
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Rule names one of the checks run over a trace.
type Rule string

const (
	RuleUnmatchedValue Rule = "unmatched_value"
	RuleDroppedProp    Rule = "dropped_prop"
	RuleDeferred       Rule = "deferred_variant"
	RuleOverride       Rule = "style_override"
)

// Finding captures the outcome of a single check.
type Finding struct {
	Rule     Rule     `json:"rule" yaml:"rule"`
	Severity Severity `json:"severity" yaml:"severity"`
	Subject  string   `json:"subject" yaml:"subject"`
	Message  string   `json:"message" yaml:"message"`
}
