// Package coordinator implements the app's navigation state: one stack and
// two modal slots per feature area, owned by feature coordinators, which in
// turn are owned by a single app coordinator that dispatches deep links,
// gates them on authentication, and performs logout and session-expiry
// resets.
//
// # Concurrency
//
// All navigation state is confined to one sequential execution context: the
// app coordinator owns a single mutex, shares it with every feature
// coordinator, and every public mutating operation runs under it. A deep
// link replay (clear stack, push ancestry, push target) is therefore one
// atomic transition; observers see the pre-state or the post-state, never a
// torn middle.
//
// # Ownership
//
// The app coordinator owns the feature coordinators in a table keyed by
// tab. A feature coordinator keeps only its own tab key and a narrow parent
// interface for cross-feature requests, so the ownership edge runs strictly
// downward.
//
// # Error posture
//
// Nothing here returns errors for input it controls. Malformed deep links
// are logged and dropped, pops on empty stacks are no-ops, and collaborator
// failures never block a navigation reset.
package coordinator
