// Package navkit wires the banking app's coordination core: configuration,
// logging, mock service collaborators, the keychain-backed session store,
// and the coordinator tree. The view layer consumes the wired App and the
// builders it exposes.
package navkit

import (
	"errors"
	"fmt"
)

// SetupError represents a wiring-level failure: config unreadable, keychain
// directory not writable, message catalog broken. These surface at startup;
// the running coordination core itself never returns errors for input it
// controls.
type SetupError struct {
	Op  string // operation that failed (e.g., "load_config", "open_keychain")
	Err error  // underlying error
}

func (e *SetupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("navkit: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("navkit: %s", e.Op)
}

func (e *SetupError) Unwrap() error {
	return e.Err
}

// NewSetupError creates a new setup error.
func NewSetupError(op string, err error) *SetupError {
	return &SetupError{Op: op, Err: err}
}

// IsSetupError checks if an error is a setup error.
func IsSetupError(err error) bool {
	var se *SetupError
	return errors.As(err, &se)
}
