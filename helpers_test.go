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

package wxtimeline

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// mapRow is a Row backed by a map with lower case keys.
type mapRow map[string]interface{}

func (r mapRow) value(column string) (interface{}, bool) {
	v, ok := r[strings.ToLower(column)]
	return v, ok
}

func (r mapRow) Has(column string) bool {
	_, ok := r.value(column)
	return ok
}

func (r mapRow) Type(column string) ColumnType {
	v, _ := r.value(column)
	switch v.(type) {
	case int64:
		return ColumnInteger
	case float64:
		return ColumnFloat
	case string:
		return ColumnText
	case []byte:
		return ColumnBlob
	default:
		return ColumnNull
	}
}

func (r mapRow) Text(column string) string {
	v, _ := r.value(column)
	switch v := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

func (r mapRow) Bytes(column string) []byte {
	v, _ := r.value(column)
	switch v := v.(type) {
	case []byte:
		return v
	case string:
		return []byte(v)
	default:
		return nil
	}
}

func (r mapRow) Int64(column string) int64 {
	v, _ := r.value(column)
	switch v := v.(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	case string:
		i, _ := strconv.ParseInt(v, 10, 64)
		return i
	default:
		return 0
	}
}

// memSource is a Source of in-memory tables.
type memSource map[string][]mapRow

func (s memSource) Columns(table string) (map[string]bool, error) {
	rows, ok := s[table]
	if !ok {
		return nil, ErrTableMissing
	}
	columns := map[string]bool{}
	for _, row := range rows {
		for column := range row {
			columns[column] = true
		}
	}
	return columns, nil
}

func (s memSource) Count(table string) (int, error) {
	rows, ok := s[table]
	if !ok {
		return 0, ErrTableMissing
	}
	return len(rows), nil
}

func (s memSource) Scan(table string, fn func(row Row) error) error {
	rows, ok := s[table]
	if !ok {
		return ErrTableMissing
	}
	for _, row := range rows {
		if err := fn(row); err != nil {
			return err
		}
	}
	return nil
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func durationPtr(d time.Duration) *time.Duration {
	return &d
}
