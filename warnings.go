package hongdown

import "fmt"

// WarningKind tags the recoverable diagnostics the serializer can produce.
// The serializer never returns an error for a parseable document: it
// records one of these and continues.
type WarningKind uint8

const (
	WarnInconsistentTableColumns WarningKind = iota
	WarnExternalFormatterFailed
	WarnExternalFormatterTimeout
	WarnUnknownAlertKind
	WarnInvalidDirectiveArgument
)

// Warning is a single recoverable diagnostic tied to a source line.
type Warning struct {
	Line    int
	Kind    WarningKind
	Message string
}

func newWarning(line int, kind WarningKind, format string, args ...any) Warning {
	msg := fmt.Sprintf(format, args...)
	if len(msg) == 0 || msg[len(msg)-1] != '.' {
		msg += "."
	}
	return Warning{Line: line, Kind: kind, Message: msg}
}
