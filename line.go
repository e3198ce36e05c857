// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package neoconf

import "fmt"

// Status reports whether a config line is in effect or commented out.
type Status string

const (
	StatusActive    Status = "active"
	StatusCommented Status = "commented"
)

// Valid reports whether s is one of the recognized statuses.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusCommented
}

// String implements the fmt.Stringer interface.
func (s Status) String() string {
	return string(s)
}

// InvalidStatusError occurs when a Status other than
// [StatusActive] or [StatusCommented] is supplied.
type InvalidStatusError struct {
	Status Status
}

// Error implements the error interface.
func (e InvalidStatusError) Error() string {
	return fmt.Sprintf("status must be either %q or %q: got %q", StatusActive, StatusCommented, string(e.Status))
}

// ParseStatus validates s as a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.Valid() {
		return "", InvalidStatusError{Status: status}
	}
	return status, nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (s *Status) UnmarshalText(b []byte) error {
	status, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// ConfigLine is a single parsed setting entry from a Neo4j config file.
type ConfigLine struct {
	status Status
	name   string
	value  string
}

// NewConfigLine returns an InvalidStatusError if status is not valid.
// The name and value are kept exactly as given.
func NewConfigLine(status Status, name, value string) (ConfigLine, error) {
	if !status.Valid() {
		return ConfigLine{}, InvalidStatusError{Status: status}
	}
	l := ConfigLine{
		status: status,
		name:   name,
		value:  value,
	}
	return l, nil
}

// Status returns whether the setting is active or commented.
func (l ConfigLine) Status() Status {
	return l.status
}

// Name returns the setting name, e.g. dbms.directories.data.
func (l ConfigLine) Name() string {
	return l.name
}

// Value returns the raw setting value.
func (l ConfigLine) Value() string {
	return l.value
}

// String implements the fmt.Stringer interface.
func (l ConfigLine) String() string {
	if l.status == StatusCommented {
		return "# " + l.name + ": " + l.value
	}
	return l.name + ": " + l.value
}
