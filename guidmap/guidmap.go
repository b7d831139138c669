/*
 * Copyright (c) 2020 Siemens AG
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy of
 * this software and associated documentation files (the "Software"), to deal in
 * the Software without restriction, including without limitation the rights to
 * use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
 * the Software, and to permit persons to whom the Software is furnished to do so,
 * subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
 * FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
 * COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
 * IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
 * CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 *
 * Author(s): Jonas Plum
 */

// Package guidmap resolves Windows known folder GUIDs to readable names.
//
// Timeline records reference many paths relative to a known folder, e.g.
//     {6D809377-6AF0-444B-8957-A3773F02200E}\Microsoft Office\root\Office16\WINWORD.EXE
// which resolves to
//     ProgramFilesX64\Microsoft Office\root\Office16\WINWORD.EXE
package guidmap

import (
	"strings"

	"github.com/imdario/mergo"
	"github.com/pkg/errors"
)

// Table maps normalized GUIDs to names. A Table is read-only after construction.
type Table struct {
	names map[string]string
}

// Default returns a table with the built-in known folder names.
func Default() *Table {
	t, _ := New(nil) // defaults contain no invalid keys
	return t
}

// New creates a table from the built-in names, overridden and extended by
// overrides. Keys may be given with or without braces.
func New(overrides map[string]string) (*Table, error) {
	names := make(map[string]string, len(knownFolders)+len(overrides))
	for guid, name := range knownFolders {
		names[normalize(guid)] = name
	}

	extra := make(map[string]string, len(overrides))
	for guid, name := range overrides {
		key := normalize(guid)
		if key == "" {
			return nil, errors.Errorf("invalid guid %q", guid)
		}
		extra[key] = name
	}
	if err := mergo.Merge(&names, extra, mergo.WithOverride); err != nil {
		return nil, errors.Wrap(err, "could not merge guid names")
	}

	return &Table{names: names}, nil
}

// Lookup returns the name for guid. Unknown input is returned unchanged.
func (t *Table) Lookup(guid string) string {
	if t == nil {
		return guid
	}
	if name, ok := t.names[normalize(guid)]; ok {
		return name
	}
	return guid
}

// Len returns the number of known GUIDs.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

func normalize(guid string) string {
	guid = strings.TrimSpace(guid)
	guid = strings.TrimPrefix(guid, "{")
	guid = strings.TrimSuffix(guid, "}")
	return strings.ToUpper(guid)
}
