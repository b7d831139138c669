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

package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forensicanalysis/wxtimeline"
	"github.com/forensicanalysis/wxtimeline/export"
)

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("dt", export.DefaultLayout, "")
	flags.String("on-row-error", "abort", "")
	flags.Bool("debug", false, "")
	flags.Bool("trace", false, "")
	flags.Bool("json", false, "")
	return flags
}

func writeConfig(t *testing.T, content string) string {
	dir, err := ioutil.TempDir("", "wxtimeline")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	path := filepath.Join(dir, "config.yaml")
	if err := ioutil.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(testFlags(), "")
	require.NoError(t, err)

	assert.Equal(t, "2006-01-02 15:04:05", cfg.DateTimeFormat)
	assert.Equal(t, wxtimeline.AbortTable, cfg.RowErrorPolicy())
	assert.Equal(t, export.CSV, cfg.Format())
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.Trace)

	names, err := cfg.Names()
	require.NoError(t, err)
	assert.Equal(t, "System", names.Lookup("{1AC14E77-02E7-4E5D-B744-2EB1AE5198B7}"))
}

func TestLoad_EnvVarOverride(t *testing.T) {
	t.Setenv("WXT_DT", "2006-01-02T15:04:05Z07:00")
	t.Setenv("WXT_ON_ROW_ERROR", "skip")
	t.Setenv("WXT_JSON", "true")

	cfg, err := Load(testFlags(), "")
	require.NoError(t, err)

	assert.Equal(t, "2006-01-02T15:04:05Z07:00", cfg.DateTimeFormat)
	assert.Equal(t, wxtimeline.SkipRow, cfg.RowErrorPolicy())
	assert.Equal(t, export.JSONLines, cfg.Format())
}

func TestLoad_FlagOverride(t *testing.T) {
	t.Setenv("WXT_DT", "02.01.2006")

	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--dt", "2006", "--debug"}))

	cfg, err := Load(flags, "")
	require.NoError(t, err)
	assert.Equal(t, "2006", cfg.DateTimeFormat)
	assert.True(t, cfg.Debug)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := writeConfig(t, `
dt: "2006-01-02"
on_row_error: skip
guids:
  "{1AC14E77-02E7-4E5D-B744-2EB1AE5198B7}": Sys32
  "11111111-2222-3333-4444-555555555555": Custom
`)

	cfg, err := Load(testFlags(), path)
	require.NoError(t, err)
	assert.Equal(t, "2006-01-02", cfg.DateTimeFormat)
	assert.Equal(t, wxtimeline.SkipRow, cfg.RowErrorPolicy())

	names, err := cfg.Names()
	require.NoError(t, err)
	assert.Equal(t, "Sys32", names.Lookup("{1AC14E77-02E7-4E5D-B744-2EB1AE5198B7}"))
	assert.Equal(t, "Custom", names.Lookup("{11111111-2222-3333-4444-555555555555}"))
	assert.Equal(t, "Windows", names.Lookup("{F38BF404-1D43-42F2-9305-67DE0B28FC23}"))
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		file    string
	}{
		{"unknown policy", "on_row_error: retry\n", ""},
		{"empty layout", "dt: \"\"\n", ""},
		{"missing file", "", "does-not-exist.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.file
			if path == "" {
				path = writeConfig(t, tt.content)
			}
			_, err := Load(nil, path)
			assert.Error(t, err)
		})
	}
}
