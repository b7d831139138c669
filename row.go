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
	"encoding/hex"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ColumnType is the storage class of a value.
type ColumnType int

// Storage classes.
const (
	ColumnNull ColumnType = iota
	ColumnInteger
	ColumnFloat
	ColumnText
	ColumnBlob
)

// Row is a read-only view of a single row. Column names are matched case
// insensitive, missing columns read as NULL.
type Row interface {
	Has(column string) bool
	Type(column string) ColumnType
	Text(column string) string
	Bytes(column string) []byte
	Int64(column string) int64
}

// Source produces the rows of the activities cache tables.
type Source interface {
	// Columns returns the lower case column names of table or ErrTableMissing.
	Columns(table string) (map[string]bool, error)
	Count(table string) (int, error)
	Scan(table string, fn func(row Row) error) error
}

var errFieldType = errors.New("unexpected storage class")

// readInt32 reads a 32 bit integer column. NULL and missing columns report
// valid == false.
func readInt32(row Row, column string) (value int32, valid bool, err error) {
	switch t := row.Type(column); t {
	case ColumnNull:
		return 0, false, nil
	case ColumnInteger:
		i := row.Int64(column)
		if i < math.MinInt32 || i > math.MaxInt32 {
			return 0, false, errors.Errorf("%s: %d overflows int32", column, i)
		}
		return int32(i), true, nil
	default:
		return 0, false, errors.Wrapf(errFieldType, "%s: %d", column, t)
	}
}

func readText(row Row, column string) string {
	if row.Type(column) == ColumnNull {
		return ""
	}
	return row.Text(column)
}

func readBool(row Row, column string) bool {
	return row.Int64(column) != 0
}

func readOptionalInt(row Row, column string, enabled bool) *int64 {
	if !enabled || row.Type(column) == ColumnNull {
		return nil
	}
	i := row.Int64(column)
	return &i
}

func readOptionalText(row Row, column string, enabled bool) *string {
	if !enabled || row.Type(column) == ColumnNull {
		return nil
	}
	s := row.Text(column)
	return &s
}

// readID renders an id column. Binary GUIDs are stored in the .NET byte
// order, i.e. the first three groups are little endian.
func readID(row Row, column string) (string, error) {
	switch row.Type(column) {
	case ColumnBlob:
		b := row.Bytes(column)
		if len(b) != 16 {
			if len(b) == 0 {
				return "", ErrMissingID
			}
			return strings.ToUpper(hex.EncodeToString(b)), nil
		}
		id, err := uuid.FromBytes(dotnetGUIDOrder(b))
		if err != nil {
			return "", errors.Wrap(err, "invalid id")
		}
		return id.String(), nil
	case ColumnText:
		s := strings.TrimSpace(row.Text(column))
		if s == "" {
			return "", ErrMissingID
		}
		if id, err := uuid.Parse(s); err == nil {
			return id.String(), nil
		}
		return s, nil
	case ColumnInteger, ColumnFloat:
		return row.Text(column), nil
	default:
		return "", ErrMissingID
	}
}

func dotnetGUIDOrder(b []byte) []byte {
	return []byte{
		b[3], b[2], b[1], b[0],
		b[5], b[4],
		b[7], b[6],
		b[8], b[9], b[10], b[11], b[12], b[13], b[14], b[15],
	}
}
