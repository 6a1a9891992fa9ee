package quality

import "fmt"

// ParseError reports script text that could not be decomposed into segments.
// It is fatal for validation of that script: downstream scoring is meaningless
// on unparseable input, so callers must treat this differently from a script
// that validated and failed.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("script parse: %s", e.Reason)
}

// ConfigError reports an internally inconsistent rule configuration supplied
// explicitly by a caller. Malformed external override files never produce
// this; they fall back to defaults instead.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("rule config %s: %s", e.Field, e.Reason)
}
