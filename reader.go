// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package neoconf

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/neoconf/neoconf/internal/slogfield"
)

const (
	// ActiveDatabase is the setting naming the database Neo4j serves.
	ActiveDatabase = "dbms.active_database"

	// DefaultActiveDatabase is assumed when no active [ActiveDatabase] line exists.
	DefaultActiveDatabase = "graph.db"
)

// valueClass matches one character of a setting value. A value ends at any
// Unicode whitespace, the \x1c-\x1f separators included.
const valueClass = `[^\s\v\x1c-\x1f\x85\p{Z}]`

type options struct {
	handler  slog.Handler
	loose    bool
	defaults map[string]string
}

// Option configures a Reader.
type Option func(*options)

// LogHandler sets the slog.Handler which receives the Reader's diagnostics,
// including the warning emitted when a default value is assumed.
// A nil handler keeps the slog.Default() handler.
func LogHandler(h slog.Handler) Option {
	return func(o *options) {
		if h == nil {
			return
		}
		o.handler = h
	}
}

// LooseMatching makes the Reader interpolate setting names into its line
// pattern without escaping them, so e.g. a '.' in a name matches any
// character. By default names are matched literally.
func LooseMatching() Option {
	return func(o *options) {
		o.loose = true
	}
}

// Default registers value as the fallback for the named setting when no
// active line for it exists. [ActiveDatabase] always falls back to
// [DefaultActiveDatabase] unless overridden here.
func Default(name, value string) Option {
	return func(o *options) {
		o.defaults[name] = value
	}
}

// Reader resolves settings from the lines of a Neo4j config file.
//
// The lines are buffered once when the Reader is created so any number of
// settings can be looked up. A Reader is never mutated after creation.
type Reader struct {
	lines    []string
	log      *slog.Logger
	loose    bool
	defaults map[string]string
}

// NewReader reads r to EOF and returns a Reader over its lines.
// Line endings, "\n" or "\r\n", are stripped. It does not close r.
func NewReader(r io.Reader, opts ...Option) (*Reader, error) {
	br := bufio.NewReader(r)

	var lines []string
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return newReader(lines, opts), nil
}

// FromLines returns a Reader over an in-memory list of config lines.
func FromLines(lines []string, opts ...Option) *Reader {
	return newReader(slices.Clone(lines), opts)
}

func newReader(lines []string, opts []Option) *Reader {
	o := &options{
		handler: slog.Default().Handler(),
		defaults: map[string]string{
			ActiveDatabase: DefaultActiveDatabase,
		},
	}
	for _, opt := range opts {
		opt(o)
	}

	return &Reader{
		lines:    lines,
		log:      slog.New(o.handler),
		loose:    o.loose,
		defaults: o.defaults,
	}
}

// DuplicateSettingError occurs when a setting has more than one
// active line in the config file.
type DuplicateSettingError struct {
	Name       string
	FirstLine  int
	SecondLine int
}

// Error implements the error interface.
func (e DuplicateSettingError) Error() string {
	return fmt.Sprintf("more than one value for %s given (lines %d and %d): check config file", e.Name, e.FirstLine, e.SecondLine)
}

// SettingNotFoundError occurs when a setting without a default
// has no active line in the config file.
type SettingNotFoundError struct {
	Name string
}

// Error implements the error interface.
func (e SettingNotFoundError) Error() string {
	return fmt.Sprintf("no setting for %s found in config file", e.Name)
}

// InvalidSettingNameError occurs when a setting name cannot be used as a
// line pattern. Only possible with [LooseMatching].
type InvalidSettingNameError struct {
	Name  string
	Cause error
}

// Error implements the error interface.
func (e InvalidSettingNameError) Error() string {
	return fmt.Sprintf("invalid setting name %q: %s", e.Name, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidSettingNameError) Unwrap() error {
	return e.Cause
}

// GetSetting returns the value of the only active line for the named setting.
//
// Commented lines are ignored. If more than one active line exists a
// DuplicateSettingError is returned. If none exists the registered default
// is returned, with a warning logged, or else a SettingNotFoundError.
func (r *Reader) GetSetting(name string) (string, error) {
	m, err := r.matcher(name)
	if err != nil {
		return "", err
	}

	var (
		active     ConfigLine
		activeLine int
	)
	for i, line := range r.lines {
		l, ok := m.processLine(line, name)
		if !ok {
			continue
		}
		if l.Status() == StatusCommented {
			r.log.Debug("ignoring commented setting", slogfield.Setting(name), slogfield.Line(i+1))
			continue
		}
		if activeLine > 0 {
			return "", DuplicateSettingError{
				Name:       name,
				FirstLine:  activeLine,
				SecondLine: i + 1,
			}
		}
		active = l
		activeLine = i + 1
	}
	if activeLine > 0 {
		r.log.Debug("resolved setting", slogfield.Setting(name), slogfield.Value(active.Value()), slogfield.Line(activeLine))
		return active.Value(), nil
	}

	value, ok := r.defaults[name]
	if !ok {
		return "", SettingNotFoundError{Name: name}
	}
	r.log.Warn(
		fmt.Sprintf("No value for %s specified in config file. Assumed to be default value %s.", name, value),
		slogfield.Setting(name),
		slogfield.Default(value),
	)
	return value, nil
}

type lineMatcher struct {
	re     *regexp.Regexp
	marker int
	value  int
}

func (r *Reader) matcher(name string) (lineMatcher, error) {
	pattern := name
	if !r.loose {
		pattern = regexp.QuoteMeta(name)
	}

	re, err := regexp.Compile(`(?P<marker>^|#)` + pattern + `=(?P<value>` + valueClass + `*)`)
	if err != nil {
		return lineMatcher{}, InvalidSettingNameError{Name: name, Cause: err}
	}
	m := lineMatcher{
		re:     re,
		marker: re.SubexpIndex("marker"),
		value:  re.SubexpIndex("value"),
	}
	return m, nil
}

// processLine finds the first place in line where the start of the line,
// or a '#', is directly followed by name=VALUE.
func (m lineMatcher) processLine(line, name string) (ConfigLine, bool) {
	groups := m.re.FindStringSubmatch(line)
	if groups == nil {
		return ConfigLine{}, false
	}

	status := StatusActive
	if groups[m.marker] == "#" {
		status = StatusCommented
	}
	l := ConfigLine{
		status: status,
		name:   name,
		value:  groups[m.value],
	}
	return l, true
}
