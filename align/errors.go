// SPDX-License-Identifier: MIT

package align

import "errors"

// Sentinel errors for the alignment engine and backend registry.
var (
	// ErrUnknownBackend is returned by Lookup for an unregistered name.
	ErrUnknownBackend = errors.New("align: unknown backend")

	// ErrBackendExists is returned by Register for a name already taken.
	ErrBackendExists = errors.New("align: backend already registered")

	// ErrOptionViolation is returned for an invalid Register or filter argument.
	ErrOptionViolation = errors.New("align: invalid option supplied")
)
