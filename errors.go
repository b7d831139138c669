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

	"github.com/pkg/errors"
)

var (
	// ErrStoreNotExists is returned when the database file does not exist.
	ErrStoreNotExists = errors.New("store does not exist")
	// ErrStoreUnavailable is returned when the file is not a readable sqlite database.
	ErrStoreUnavailable = errors.New("not a valid activities cache")
	// ErrTableMissing is returned for tables that are not part of the store.
	ErrTableMissing = errors.New("table does not exist")
	// ErrMissingID is returned for rows without an id.
	ErrMissingID = errors.New("row has no id")
)

// RowError is a decode failure of a single row.
type RowError struct {
	Table string
	Row   int
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s row %d: %s", e.Table, e.Row, e.Err)
}

// Cause returns the underlying decode error.
func (e *RowError) Cause() error { return e.Err }

// Unwrap returns the underlying decode error.
func (e *RowError) Unwrap() error { return e.Err }
