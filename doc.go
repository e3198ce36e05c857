// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package neoconf reads settings from Neo4j server configuration files.
//
// A Neo4j config file is made of key=value lines, some of which are
// commented out with a leading '#':
//
//	#dbms.active_database=graph.db
//	dbms.directories.data=/var/lib/neo4j/data
//
// # Basic Usage
//
// Open the file however suits the caller and hand it to a Reader:
//
//	f, err := os.Open("/etc/neo4j/neo4j.conf")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	r, err := neoconf.NewReader(f)
//	if err != nil {
//	    return err
//	}
//
//	dataDir, err := r.GetSetting("dbms.directories.data")
//
// Or let ReadFile open and close it from an fs.FS:
//
//	r, err := neoconf.ReadFile(os.DirFS("/etc/neo4j"), "neo4j.conf")
//
// # Resolution
//
// GetSetting only ever returns the value of an active line. Commented lines
// are recognized but ignored. A setting with more than one active line is an
// error ([DuplicateSettingError]) and a setting with none is an error
// ([SettingNotFoundError]) unless it has a default. [ActiveDatabase] defaults
// to [DefaultActiveDatabase]; falling back to a default logs a warning
// through the Reader's slog.Handler.
package neoconf
