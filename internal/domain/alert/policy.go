package alert

import "fmt"

// Status classifies how close a schedule is to its maintenance window.
type Status string

const (
	StatusOverdue    Status = "overdue"
	StatusCritical   Status = "critical"
	StatusPreventive Status = "preventive"
	StatusOK         Status = "ok"
)

// Policy holds the two runtime-configurable alert thresholds in usage
// units (hours or km). Invariant: Critical <= Preventive.
type Policy struct {
	Critical   float64
	Preventive float64
}

// Defaults apply until an operator saves a custom pair.
const (
	DefaultCriticalThreshold   = 15
	DefaultPreventiveThreshold = 50
)

func DefaultPolicy() Policy {
	return Policy{Critical: DefaultCriticalThreshold, Preventive: DefaultPreventiveThreshold}
}

// NewPolicy normalizes a threshold pair. Misconfiguration is auto-corrected
// (negative values raised to zero, preventive clamped up to critical) and
// every correction is surfaced as a warning; thresholds are never silently
// inverted.
func NewPolicy(critical, preventive float64) (Policy, []string) {
	var warnings []string

	if critical < 0 {
		warnings = append(warnings, fmt.Sprintf("critical threshold %v is negative, using 0", critical))
		critical = 0
	}
	if preventive < 0 {
		warnings = append(warnings, fmt.Sprintf("preventive threshold %v is negative, using 0", preventive))
		preventive = 0
	}
	if critical > preventive {
		warnings = append(warnings, fmt.Sprintf(
			"preventive threshold %v is below critical threshold %v, clamping preventive to %v",
			preventive, critical, critical))
		preventive = critical
	}

	return Policy{Critical: critical, Preventive: preventive}, warnings
}

// Classify maps a signed remaining-usage value to a status. Rules apply in
// order; boundaries belong to the more urgent bucket.
func (p Policy) Classify(remaining float64) Status {
	switch {
	case remaining <= 0:
		return StatusOverdue
	case remaining <= p.Critical:
		return StatusCritical
	case remaining <= p.Preventive:
		return StatusPreventive
	default:
		return StatusOK
	}
}
