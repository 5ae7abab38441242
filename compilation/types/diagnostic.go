package types

import "fmt"

const (
	// SeverityError is the severity of a diagnostic which causes compilation to fail.
	SeverityError = "error"
	// SeverityWarning is the severity of a diagnostic which does not cause compilation to fail.
	SeverityWarning = "warning"
	// SeverityInfo is the severity of a purely informational diagnostic.
	SeverityInfo = "info"
)

// Diagnostic describes a single entry of the "errors" list in a solc standard JSON output.
type Diagnostic struct {
	// Severity is one of SeverityError, SeverityWarning or SeverityInfo.
	Severity string `json:"severity"`

	// Type describes the kind of diagnostic, e.g. "ParserError", "TypeError" or "Warning".
	Type string `json:"type"`

	// Component describes the compiler component that reported the diagnostic, e.g. "general".
	Component string `json:"component,omitempty"`

	// ErrorCode is the compiler's unique code for the diagnostic, if any.
	ErrorCode string `json:"errorCode,omitempty"`

	// Message is the short diagnostic message.
	Message string `json:"message"`

	// FormattedMessage is the diagnostic message including the source location and a source excerpt.
	FormattedMessage string `json:"formattedMessage,omitempty"`

	// SourceLocation describes where in the source the diagnostic applies, if known.
	SourceLocation *SourceLocation `json:"sourceLocation,omitempty"`
}

// SourceLocation describes a byte range within a source unit.
type SourceLocation struct {
	File  string `json:"file"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// String returns the formatted message of the diagnostic if the compiler provided one, as it carries line and column
// information. Otherwise a message is composed from the type, message and location.
func (d Diagnostic) String() string {
	if d.FormattedMessage != "" {
		return d.FormattedMessage
	}
	kind := d.Type
	if kind == "" {
		kind = d.Severity
	}
	if d.SourceLocation != nil {
		return fmt.Sprintf("%s: %s\n --> %s (bytes %d..%d)\n", kind, d.Message, d.SourceLocation.File, d.SourceLocation.Start, d.SourceLocation.End)
	}
	return fmt.Sprintf("%s: %s\n", kind, d.Message)
}
