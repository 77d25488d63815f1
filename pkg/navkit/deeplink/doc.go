// Package deeplink maps external URIs onto root routes.
//
// Parsing is a pure function: no I/O, no retries, and every failure is a
// value. The accepted grammar is fixed and small:
//
//	<scheme>://<feature>[/<segment>]*
//
// where <feature> selects a tab and the remaining segments are matched
// against that feature's grammar. A URI carrying only the feature segment
// resolves to the feature's root (RootRoute with a nil Sub).
package deeplink
