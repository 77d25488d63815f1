package deeplink

import "fmt"

// ErrorKind classifies why a URI failed to parse.
type ErrorKind int

const (
	// KindInvalidScheme means the URI's scheme is not the app's registered scheme.
	KindInvalidScheme ErrorKind = iota
	// KindUnknownRoute means the feature segment is missing or unrecognized.
	KindUnknownRoute
	// KindMalformedPath means the feature was recognized but the remaining
	// segments do not match that feature's grammar.
	KindMalformedPath
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidScheme:
		return "invalid_scheme"
	case KindUnknownRoute:
		return "unknown_route"
	case KindMalformedPath:
		return "malformed_path"
	}
	return "unknown"
}

// ParseError is the only error type Parse returns. It never escalates to a
// panic; malformed input is an expected condition, not a failure.
type ParseError struct {
	Kind   ErrorKind
	URI    string // the raw input
	Detail string // human-readable specifics, e.g. the offending segment
}

func (e *ParseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("deeplink: %s: %s (%q)", e.Kind, e.Detail, e.URI)
	}
	return fmt.Sprintf("deeplink: %s (%q)", e.Kind, e.URI)
}

// IsParseError reports whether err is a *ParseError, returning it if so.
func IsParseError(err error) (*ParseError, bool) {
	pe, ok := err.(*ParseError)
	return pe, ok
}
