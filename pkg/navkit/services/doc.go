// Package services holds the in-memory mock collaborators the coordination
// core talks to: the authentication source, account data, and the
// notification feed. None of them perform real I/O; they exist so the
// navigation layer has live interfaces to exercise.
package services
