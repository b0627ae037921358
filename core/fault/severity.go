// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so that logging and
//              monitoring can prioritize them without inspecting codes.

package fault

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that callers routinely recover from,
	// for example a bounds-checked access past the end of a view
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that fails the current operation but
	// leaves the process healthy
	SeverityMedium

	// SeverityHigh indicates a contract violation or a failure that likely
	// requires attention, for example a nil pointer passed where forbidden
	SeverityHigh

	// SeverityCritical indicates an error after which continuing is unsafe
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// severityFromCode determines the default severity for an error code
func severityFromCode(code Code) Severity {
	switch code {
	case CodeNilPointer, CodeNotImplemented:
		return SeverityHigh
	case CodeOutOfRange, CodeInvalidSize, CodeInvalidArgument:
		return SeverityLow
	case CodeClosed, CodeConfig, CodeIO:
		return SeverityMedium
	default:
		return SeverityMedium
	}
}
