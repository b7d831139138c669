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

// Package testdb creates activities cache fixtures for tests.
package testdb

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite" // registers the sqlite driver
)

// Column definitions of the activities cache tables.
var (
	ActivityColumns = []string{ // nolint:gochecknoglobals
		"Id GUID PRIMARY KEY",
		"AppId TEXT",
		"PackageIdHash TEXT",
		"AppActivityId TEXT",
		"ActivityType INT",
		"ActivityStatus INT",
		"ParentActivityId GUID",
		"Tag TEXT",
		`"Group" TEXT`,
		"MatchId TEXT",
		"LastModifiedTime DATETIME",
		"ExpirationTime DATETIME",
		"Payload BLOB",
		"Priority INT",
		"IsLocalOnly INT",
		"PlatformDeviceId TEXT",
		"CreatedInCloud DATETIME",
		"StartTime DATETIME",
		"EndTime DATETIME",
		"LastModifiedOnClient DATETIME",
		"GroupAppActivityId TEXT",
		"ClipboardPayload BLOB",
		"EnterpriseId TEXT",
		"OriginalPayload BLOB",
		"OriginalLastModifiedOnClient DATETIME",
		"ETag INT",
	}

	OperationColumns = []string{ // nolint:gochecknoglobals
		"OperationOrder INTEGER PRIMARY KEY ASC",
		"Id GUID",
		"OperationType INT",
		"AppId TEXT",
		"PackageIdHash TEXT",
		"AppActivityId TEXT",
		"ActivityType INT",
		"ParentActivityId GUID",
		"Tag TEXT",
		`"Group" TEXT`,
		"MatchId TEXT",
		"LastModifiedTime DATETIME",
		"ExpirationTime DATETIME",
		"Payload BLOB",
		"Priority INT",
		"CreatedTime DATETIME",
		"Attachments TEXT",
		"PlatformDeviceId TEXT",
		"CreatedInCloud DATETIME",
		"StartTime DATETIME",
		"EndTime DATETIME",
		"LastModifiedOnClient DATETIME",
		"CorrelationVector TEXT",
		"GroupAppActivityId TEXT",
		"ClipboardPayload BLOB",
		"EnterpriseId TEXT",
		"OriginalPayload BLOB",
		"OriginalLastModifiedOnClient DATETIME",
		"ETag INT",
		"OperationExpirationTime DATETIME",
	}

	PackageIDColumns = []string{ // nolint:gochecknoglobals
		"ActivityId GUID",
		"Platform TEXT",
		"PackageName TEXT",
		"ExpirationTime DATETIME",
	}

	// LaterColumns are added to a table to get the newest schema variant.
	LaterColumns = []string{ // nolint:gochecknoglobals
		"DdsDeviceId TEXT",
		"UserActionState INT",
		"IsRead INT",
		"GroupItems TEXT",
		"LocalExpirationTime DATETIME",
	}
)

// Row maps column names to values.
type Row map[string]interface{}

// Table is a table fixture.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

// Activity returns an Activity table fixture.
func Activity(rows ...Row) Table {
	return Table{Name: "Activity", Columns: ActivityColumns, Rows: rows}
}

// Operation returns an ActivityOperation table fixture.
func Operation(rows ...Row) Table {
	return Table{Name: "ActivityOperation", Columns: OperationColumns, Rows: rows}
}

// PackageID returns an Activity_PackageId table fixture.
func PackageID(rows ...Row) Table {
	return Table{Name: "Activity_PackageId", Columns: PackageIDColumns, Rows: rows}
}

// WithLaterColumns returns a copy of table including LaterColumns.
func (t Table) WithLaterColumns() Table {
	columns := make([]string, 0, len(t.Columns)+len(LaterColumns))
	columns = append(columns, t.Columns...)
	t.Columns = append(columns, LaterColumns...)
	return t
}

// GUID returns the binary .NET representation of id as stored in the cache.
func GUID(id string) []byte {
	u := uuid.MustParse(id)
	return []byte{
		u[3], u[2], u[1], u[0],
		u[5], u[4],
		u[7], u[6],
		u[8], u[9], u[10], u[11], u[12], u[13], u[14], u[15],
	}
}

// Create writes a new database with the given tables to dir and returns its
// path.
func Create(dir string, tables ...Table) (string, error) {
	path := filepath.Join(dir, "ActivitiesCache.db")

	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return "", err
	}
	defer db.Close()

	for _, table := range tables {
		if err := create(db, table); err != nil {
			return "", errors.Wrap(err, table.Name)
		}
	}
	return path, nil
}

func create(db *sqlx.DB, table Table) error {
	query := fmt.Sprintf("CREATE TABLE %s (%s)", quote(table.Name), strings.Join(table.Columns, ", ")) // #nosec
	if _, err := db.Exec(query); err != nil {
		return err
	}

	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	for _, row := range table.Rows {
		if _, err := tx.NamedExec(insert(table.Name, row), map[string]interface{}(row)); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func insert(table string, row Row) string {
	var names []string
	for name := range row {
		names = append(names, name)
	}
	sort.Strings(names)

	columns := make([]string, len(names))
	params := make([]string, len(names))
	for i, name := range names {
		columns[i] = quote(name)
		params[i] = ":" + name
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", quote(table), strings.Join(columns, ", "), strings.Join(params, ", ")) // #nosec
}

func quote(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
