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
	"os"
	"strings"

	"crawshaw.io/sqlite"
	"github.com/pkg/errors"
)

const openFlags = sqlite.SQLITE_OPEN_READONLY | sqlite.SQLITE_OPEN_URI | sqlite.SQLITE_OPEN_NOMUTEX

// The Store is a read-only handle of an ActivitiesCache.db. It is used by a
// single goroutine and must be closed after use.
type Store struct {
	cursor  *sqlite.Conn
	columns *columnMap
}

// Open opens an existing activities cache.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrStoreNotExists, path)
		}
		return nil, err
	}

	cursor, err := sqlite.OpenConn(path, openFlags)
	if err != nil {
		return nil, errors.Wrap(ErrStoreUnavailable, err.Error())
	}

	store := &Store{cursor: cursor, columns: newColumnMap()}
	if err := store.setupTables(); err != nil {
		_ = cursor.Close()
		return nil, errors.Wrap(ErrStoreUnavailable, err.Error())
	}
	return store, nil
}

// Close releases the database handle.
func (store *Store) Close() error {
	return store.cursor.Close()
}

// Tables returns the names of all tables in the store.
func (store *Store) Tables() []string {
	return store.columns.names()
}

// UserVersion returns the user_version pragma of the database.
func (store *Store) UserVersion() (int64, error) {
	return pragma(store.cursor, "user_version")
}

// Columns returns the lower case column names of table.
func (store *Store) Columns(table string) (map[string]bool, error) {
	columns, ok := store.columns.columns(table)
	if !ok {
		return nil, errors.Wrap(ErrTableMissing, table)
	}
	return columns, nil
}

// Count returns the number of rows in table.
func (store *Store) Count(table string) (int, error) {
	if _, err := store.Columns(table); err != nil {
		return 0, err
	}
	stmt, err := store.cursor.Prepare(fmt.Sprintf("SELECT count(*) AS count FROM %s", quote(table))) // #nosec
	if err != nil {
		return 0, errors.Wrap(err, fmt.Sprintf("could not count %s", table))
	}
	if _, err := stmt.Step(); err != nil {
		_ = stmt.Finalize()
		return 0, err
	}
	count := stmt.GetInt64("count")
	return int(count), stmt.Finalize()
}

// Scan calls fn for every row of table in storage order. An error returned
// by fn stops the scan and is returned.
func (store *Store) Scan(table string, fn func(row Row) error) error {
	if _, err := store.Columns(table); err != nil {
		return err
	}

	query := fmt.Sprintf("SELECT * FROM %s", quote(table)) // #nosec
	stmt, err := store.cursor.Prepare(query)
	if err != nil {
		return errors.Wrap(err, fmt.Sprintf("could not prepare statement %s", query))
	}

	err = step(stmt, fn)
	if finalizeErr := stmt.Finalize(); err == nil {
		err = finalizeErr
	}
	return err
}

func step(stmt *sqlite.Stmt, fn func(row Row) error) error {
	row := newStmtRow(stmt)
	for {
		if hasRow, err := stmt.Step(); err != nil {
			return err
		} else if !hasRow {
			return nil
		}
		if err := fn(row); err != nil {
			return err
		}
	}
}

func (store *Store) setupTables() error {
	stmt, err := store.cursor.Prepare("SELECT name FROM sqlite_master WHERE type = 'table'")
	if err != nil {
		return err
	}

	var names []string
	for {
		if hasRow, err := stmt.Step(); err != nil {
			_ = stmt.Finalize()
			return err
		} else if !hasRow {
			break
		}

		name := stmt.GetText("name")
		if strings.HasPrefix(name, "sqlite") {
			continue
		}
		names = append(names, name)
	}
	if err := stmt.Finalize(); err != nil {
		return err
	}

	for _, name := range names {
		pragmaStmt, err := store.cursor.Prepare(fmt.Sprintf("PRAGMA table_info (%s)", quote(name)))
		if err != nil {
			return err
		}

		store.columns.add(name, "")
		for {
			if pragmaHasRow, err := pragmaStmt.Step(); err != nil {
				_ = pragmaStmt.Finalize()
				return err
			} else if !pragmaHasRow {
				break
			}

			store.columns.add(name, pragmaStmt.GetText("name"))
		}
		if err := pragmaStmt.Finalize(); err != nil {
			return err
		}
	}
	return nil
}

func pragma(conn *sqlite.Conn, name string) (int64, error) {
	stmt, err := conn.Prepare("PRAGMA " + name)
	if err != nil {
		return 0, err
	}
	_, err = stmt.Step()
	if err != nil {
		_ = stmt.Finalize()
		return 0, err
	}
	i := stmt.GetInt64(name)
	return i, stmt.Finalize()
}

func quote(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// stmtRow exposes the current row of a statement.
type stmtRow struct {
	stmt  *sqlite.Stmt
	index map[string]int
}

func newStmtRow(stmt *sqlite.Stmt) *stmtRow {
	index := map[string]int{}
	for i := 0; i < stmt.ColumnCount(); i++ {
		index[strings.ToLower(stmt.ColumnName(i))] = i
	}
	return &stmtRow{stmt: stmt, index: index}
}

func (r *stmtRow) col(column string) (int, bool) {
	i, ok := r.index[strings.ToLower(column)]
	return i, ok
}

func (r *stmtRow) Has(column string) bool {
	_, ok := r.col(column)
	return ok
}

func (r *stmtRow) Type(column string) ColumnType {
	i, ok := r.col(column)
	if !ok {
		return ColumnNull
	}
	switch r.stmt.ColumnType(i) {
	case sqlite.SQLITE_INTEGER:
		return ColumnInteger
	case sqlite.SQLITE_FLOAT:
		return ColumnFloat
	case sqlite.SQLITE_TEXT:
		return ColumnText
	case sqlite.SQLITE_BLOB:
		return ColumnBlob
	default:
		return ColumnNull
	}
}

func (r *stmtRow) Text(column string) string {
	i, ok := r.col(column)
	if !ok {
		return ""
	}
	return r.stmt.ColumnText(i)
}

func (r *stmtRow) Bytes(column string) []byte {
	i, ok := r.col(column)
	if !ok || r.stmt.ColumnType(i) == sqlite.SQLITE_NULL {
		return nil
	}
	buf := make([]byte, r.stmt.ColumnLen(i))
	r.stmt.ColumnBytes(i, buf)
	return buf
}

func (r *stmtRow) Int64(column string) int64 {
	i, ok := r.col(column)
	if !ok {
		return 0
	}
	return r.stmt.ColumnInt64(i)
}
