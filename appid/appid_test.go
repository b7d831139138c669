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

package appid

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forensicanalysis/wxtimeline/guidmap"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Identity
		wantErr bool
	}{
		{"list", `[{"application":"a.exe","platform":"x_exe_path"},{"application":"b","platform":"packageId"}]`,
			[]Identity{{"a.exe", "x_exe_path"}, {"b", "packageId"}}, false},
		{"empty list", `[]`, []Identity{}, false},
		{"not json", `foo`, nil, true},
		{"object", `{"application":"a"}`, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	win32 := Identity{"C:\\Windows\\notepad.exe", "windows_win32"}
	exePath := Identity{"C:\\tools\\x.exe", "x_exe_path"}
	upperWin32 := Identity{"C:\\tools\\y.exe", "Windows_Win32"}
	universal := Identity{"Microsoft.Windows.Photos_8wekyb3d8bbwe!App", "windows_universal"}
	pkg := Identity{"Microsoft.Windows.Photos_8wekyb3d8bbwe", "packageId"}
	other := Identity{"https://example.org", "afs_crossplatform"}

	tests := []struct {
		name    string
		ids     []Identity
		want    Identity
		wantErr error
	}{
		{"win32 last", []Identity{pkg, universal, win32}, win32, nil},
		{"exe path", []Identity{pkg, exePath}, exePath, nil},
		{"case insensitive", []Identity{universal, upperWin32}, upperWin32, nil},
		{"first of win32 and exe path", []Identity{exePath, win32}, exePath, nil},
		{"universal", []Identity{pkg, universal}, universal, nil},
		{"first", []Identity{other, pkg}, other, nil},
		{"empty", []Identity{}, Identity{}, ErrEmpty},
		{"nil", nil, Identity{}, ErrEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(tt.ids)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve(t *testing.T) {
	names := guidmap.Default()
	tests := []struct {
		name    string
		ids     []Identity
		want    string
		wantErr bool
	}{
		{"known folder exe", []Identity{{`{1AC14E77-02E7-4E5D-B744-2EB1AE5198B7}\notepad.exe`, "windows_win32"}}, `System\notepad.exe`, false},
		{"unknown folder exe", []Identity{{`{00000000-0000-0000-0000-000000000000}\a.exe`, "windows_win32"}}, `{00000000-0000-0000-0000-000000000000}\a.exe`, false},
		{"guid without exe", []Identity{{`{6D809377-6AF0-444B-8957-A3773F02200E}\App\tool`, "x_exe_path"}}, `ProgramFilesX64\App\tool`, false},
		{"absolute exe", []Identity{{`C:\Windows\explorer.exe`, "windows_win32"}}, `C:\Windows\explorer.exe`, false},
		{"universal", []Identity{{"Microsoft.Windows.Photos_8wekyb3d8bbwe!App", "windows_universal"}}, "Microsoft.Windows.Photos_8wekyb3d8bbwe!App", false},
		{"empty", []Identity{}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.ids, names)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve() error = %v, wantErr %v", err, tt.wantErr)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdditionalInformation(t *testing.T) {
	names := guidmap.Default()
	tests := []struct {
		name        string
		packageName string
		want        string
	}{
		{"known folder exe", `{7C5A40EF-A0FB-4BFC-874A-C0F2E0B9FA8E}\Mozilla Firefox\firefox.exe`, `ProgramFilesX86\Mozilla Firefox\firefox.exe`},
		{"absolute exe", `C:\Windows\explorer.exe`, ""},
		{"package", "Microsoft.Windows.Photos_8wekyb3d8bbwe", ""},
		{"guid without exe", `{7C5A40EF-A0FB-4BFC-874A-C0F2E0B9FA8E}\Mozilla Firefox`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AdditionalInformation(tt.packageName, names))
		})
	}
}
