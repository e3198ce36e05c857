// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package neoconf

import (
	"io/fs"

	"github.com/neoconf/neoconf/internal/try"
)

// ReadFile opens the named config file from fsys, buffers its lines into a
// Reader and closes it again. A failure to close the file is reported as a
// [try.CloseError], joined with any read error.
func ReadFile(fsys fs.FS, name string, opts ...Option) (_ *Reader, err error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer try.Close(&err, name, f)

	r, err := NewReader(f, opts...)
	if err != nil {
		return nil, err
	}
	return r, nil
}
