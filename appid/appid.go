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

// Package appid selects the application identity of a timeline activity.
//
// The AppId column holds a JSON list of platform tagged identifiers, e.g.
//     [{"application":"{1AC14E77-02E7-4E5D-B744-2EB1AE5198B7}\\notepad.exe","platform":"windows_win32"},
//      {"application":"Microsoft.Windows.Notepad","platform":"packageId"}]
package appid

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

const (
	// PlatformWin32 tags classic desktop executables.
	PlatformWin32 = "windows_win32"
	// PlatformExePath tags plain executable paths.
	PlatformExePath = "x_exe_path"
	// PlatformUniversal tags UWP application ids.
	PlatformUniversal = "windows_universal"
	// PlatformPackageID tags package family names.
	PlatformPackageID = "packageId"
)

const separator = `\`

// ErrEmpty is returned when an identity list contains no entries.
var ErrEmpty = errors.New("empty application identity list")

// Identity is a single platform tagged application identifier.
type Identity struct {
	Application string `json:"application"`
	Platform    string `json:"platform"`
}

// Resolver maps a GUID path segment to a readable name.
type Resolver interface {
	Lookup(guid string) string
}

// Parse decodes a JSON identity list.
func Parse(b []byte) ([]Identity, error) {
	var ids []Identity
	if err := json.Unmarshal(b, &ids); err != nil {
		return nil, errors.Wrap(err, "could not decode application identity")
	}
	return ids, nil
}

// Select chooses the canonical identity: a win32 or exe path entry first,
// then a universal app entry, then the first entry.
func Select(ids []Identity) (Identity, error) {
	if len(ids) == 0 {
		return Identity{}, ErrEmpty
	}
	for _, id := range ids {
		if strings.EqualFold(id.Platform, PlatformWin32) || strings.EqualFold(id.Platform, PlatformExePath) {
			return id, nil
		}
	}
	for _, id := range ids {
		if id.Platform == PlatformUniversal {
			return id, nil
		}
	}
	return ids[0], nil
}

// Resolve selects the canonical identity and substitutes a leading GUID
// segment of its application path.
func Resolve(ids []Identity, names Resolver) (string, error) {
	id, err := Select(ids)
	if err != nil {
		return "", err
	}
	return Substitute(id.Application, names), nil
}

// Substitute replaces the first path segment of an executable path or a
// GUID prefixed path with its name. Other values are returned unchanged.
func Substitute(application string, names Resolver) string {
	if !strings.Contains(application, ".exe") && !strings.HasPrefix(application, "{") {
		return application
	}
	return substituteFirstSegment(application, names)
}

// AdditionalInformation returns the resolved path of a package name that
// points to an executable below a known folder, or "" otherwise.
func AdditionalInformation(packageName string, names Resolver) string {
	if !strings.Contains(packageName, ".exe") {
		return ""
	}
	if !strings.HasPrefix(packageName, "{") {
		return ""
	}
	return substituteFirstSegment(packageName, names)
}

func substituteFirstSegment(application string, names Resolver) string {
	segments := strings.Split(application, separator)
	if !strings.HasPrefix(segments[0], "{") || names == nil {
		return application
	}
	segments[0] = names.Lookup(segments[0])
	return strings.Join(segments, separator)
}
