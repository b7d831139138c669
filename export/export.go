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

// Package export writes normalized timelines as CSV or JSON lines files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"reflect"
	"regexp"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stoewer/go-strcase"

	"github.com/forensicanalysis/wxtimeline"
)

// DefaultLayout is the default timestamp layout.
const DefaultLayout = "2006-01-02 15:04:05"

// Format is an output file format.
type Format string

// Output formats.
const (
	CSV       Format = "csv"
	JSONLines Format = "jsonl"
)

var profilePattern = regexp.MustCompile(`(?i)\\Users\\(.+?)\\`) // nolint:gochecknoglobals

// fileSuffixes are the file name suffixes of the exported tables.
var fileSuffixes = map[string]string{ // nolint:gochecknoglobals
	wxtimeline.TableActivityOperation: "ActivityOperations",
	wxtimeline.TablePackageID:         "Activity_PackageIDs",
	wxtimeline.TableActivity:          "Activity",
}

// Profile returns the user profile name of an ActivitiesCache.db path
// like C:\Users\<profile>\AppData\..., or "".
func Profile(path string) string {
	match := profilePattern.FindStringSubmatch(path)
	if match == nil {
		return ""
	}
	return match[1]
}

// FileName returns the output file name of table.
func FileName(ts time.Time, profile, table string, format Format) string {
	if profile != "" {
		profile = "_" + profile
	}
	return fmt.Sprintf("%s%s_%s.%s", ts.Format("20060102150405"), profile, fileSuffixes[table], format)
}

// The Writer writes timelines to a directory.
type Writer struct {
	fs     afero.Fs
	dir    string
	format Format
	layout string
	now    func() time.Time
}

// NewWriter creates a Writer. An empty layout is DefaultLayout.
func NewWriter(fs afero.Fs, dir string, format Format, layout string) *Writer {
	if layout == "" {
		layout = DefaultLayout
	}
	if format == "" {
		format = CSV
	}
	return &Writer{fs: fs, dir: dir, format: format, layout: layout, now: time.Now}
}

// Tables renders the three sequences of timeline in file order.
func (w *Writer) Tables(timeline *wxtimeline.Timeline) []Table {
	f := formatter{layout: w.layout}
	schema := func(table string) wxtimeline.Schema {
		result, _ := timeline.Result(table)
		return result.Schema
	}
	return []Table{
		f.operations(timeline.Operations, schema(wxtimeline.TableActivityOperation)),
		f.packageIDs(timeline.PackageIDs),
		f.activities(timeline.Activities, schema(wxtimeline.TableActivity)),
	}
}

// Write writes one file per non-empty table and returns the created paths.
func (w *Writer) Write(timeline *wxtimeline.Timeline, profile string) ([]string, error) {
	if err := w.fs.MkdirAll(w.dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "could not create directory %s", w.dir)
	}

	ts := w.now()
	var paths []string
	for _, table := range w.Tables(timeline) {
		if len(table.Records) == 0 {
			continue
		}
		path := filepath.Join(w.dir, FileName(ts, profile, table.Name, w.format))
		if err := w.writeFile(path, table); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (w *Writer) writeFile(path string, table Table) (err error) {
	f, err := w.fs.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create %s", path)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	switch w.format {
	case JSONLines:
		return WriteJSONLines(f, table)
	default:
		return WriteCSV(f, table)
	}
}

// WriteCSV writes table with a header line.
func WriteCSV(out io.Writer, table Table) error {
	writer := csv.NewWriter(out)
	if err := writer.Write(table.Columns); err != nil {
		return err
	}
	for _, record := range table.Records {
		row := make([]string, len(table.Columns))
		for i, column := range table.Columns {
			if value, ok := record[column]; ok {
				row[i] = fmt.Sprint(value)
			}
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteJSONLines writes one JSON object per record. Keys are snake case,
// empty values are omitted.
func WriteJSONLines(out io.Writer, table Table) error {
	columns := map[string]bool{}
	for _, column := range table.Columns {
		columns[column] = true
	}

	encoder := json.NewEncoder(out)
	for _, record := range table.Records {
		selected := make(map[string]interface{}, len(table.Columns))
		for key, value := range record {
			if columns[key] {
				selected[key] = value
			}
		}
		if err := encoder.Encode(lower(selected)); err != nil {
			return err
		}
	}
	return nil
}

func lower(f interface{}) interface{} {
	switch f := f.(type) {
	case []interface{}:
		for i := range f {
			if !isEmptyValue(reflect.ValueOf(f[i])) {
				f[i] = lower(f[i])
			}
		}
		return f
	case map[string]interface{}:
		lf := make(map[string]interface{}, len(f))
		for k, v := range f {
			if !isEmptyValue(reflect.ValueOf(v)) {
				lf[snakeCase(k)] = lower(v)
			}
		}
		return lf
	default:
		return f
	}
}

// keys that do not split at inner capitals
var snakeKeys = map[string]string{ // nolint:gochecknoglobals
	"ETag": "etag",
}

func snakeCase(key string) string {
	if s, ok := snakeKeys[key]; ok {
		return s
	}
	return strcase.SnakeCase(key)
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	}
	return false
}
