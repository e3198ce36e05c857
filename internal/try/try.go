// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package try helps release resources from deferred calls without losing errors.
package try

import (
	"errors"
	"fmt"
	"io"
)

// CloseError occurs when a config source fails to be released
// after it has been read.
type CloseError struct {
	Name  string
	Cause error
}

// Error implements the error interface.
func (e CloseError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("failed to close: %s", e.Cause)
	}
	return fmt.Sprintf("failed to close %s: %s", e.Name, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e CloseError) Unwrap() error {
	return e.Cause
}

// Close closes v, if it is an io.Closer, and joins any failure,
// as a CloseError, into the error err points to.
func Close(err *error, name string, v any) {
	c, ok := v.(io.Closer)
	if !ok {
		return
	}

	cerr := c.Close()
	if cerr == nil {
		return
	}

	closeErr := CloseError{
		Name:  name,
		Cause: cerr,
	}
	if *err == nil {
		*err = closeErr
		return
	}
	*err = errors.Join(*err, closeErr)
}
