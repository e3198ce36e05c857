// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package neoconf

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"testing"
	"testing/fstest"

	"github.com/neoconf/neoconf/internal/try"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fsFunc func(string) (fs.File, error)

func (f fsFunc) Open(name string) (fs.File, error) {
	return f(name)
}

type closeFailFile struct {
	fs.File
	err error
}

func (f closeFailFile) Close() error {
	f.File.Close()
	return f.err
}

func TestReadFile(t *testing.T) {
	testCases := []struct {
		name        string
		file        string
		setting     string
		expectedVal string
		expectErr   error
	}{
		{
			name:        "default data directory",
			file:        "default.conf",
			setting:     "dbms.directories.data",
			expectedVal: "/var/lib/neo4j/data",
		},
		{
			name:        "default active database",
			file:        "default.conf",
			setting:     ActiveDatabase,
			expectedVal: "graph.db",
		},
		{
			name:        "custom active database",
			file:        "custom.conf",
			setting:     ActiveDatabase,
			expectedVal: "custom.db",
		},
		{
			name:      "unknown setting",
			file:      "custom.conf",
			setting:   "nonsense_setting",
			expectErr: SettingNotFoundError{Name: "nonsense_setting"},
		},
		{
			name:    "active database defined twice",
			file:    "error.conf",
			setting: ActiveDatabase,
			expectErr: DuplicateSettingError{
				Name:       ActiveDatabase,
				FirstLine:  9,
				SecondLine: 10,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := ReadFile(os.DirFS("testdata"), tc.file, LogHandler(slog.NewJSONHandler(&bytes.Buffer{}, nil)))
			require.NoError(t, err)

			val, err := r.GetSetting(tc.setting)
			if tc.expectErr != nil {
				require.Equal(t, tc.expectErr, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectedVal, val)
		})
	}
}

func TestReadFile_Errors(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the file does not exist", func(t *testing.T) {
			_, err := ReadFile(fstest.MapFS{}, "neo4j.conf")
			if !assert.ErrorIs(t, err, fs.ErrNotExist) {
				return
			}
		})

		t.Run("if the file fails to close", func(t *testing.T) {
			closeErr := errors.New("close failed")
			fsys := fsFunc(func(name string) (fs.File, error) {
				f, err := fstest.MapFS{
					"neo4j.conf": &fstest.MapFile{Data: []byte("dbms.directories.data=/data\n")},
				}.Open(name)
				if err != nil {
					return nil, err
				}
				return closeFailFile{File: f, err: closeErr}, nil
			})

			_, err := ReadFile(fsys, "neo4j.conf")

			var cerr try.CloseError
			if !assert.ErrorAs(t, err, &cerr) {
				return
			}
			if !assert.Equal(t, "neo4j.conf", cerr.Name) {
				return
			}
			if !assert.ErrorIs(t, err, closeErr) {
				return
			}
		})

		t.Run("if the file fails to be read", func(t *testing.T) {
			_, err := ReadFile(fstest.MapFS{
				"conf": &fstest.MapFile{Mode: fs.ModeDir},
			}, "conf")
			if !assert.Error(t, err) {
				return
			}
		})
	})
}
