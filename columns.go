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
	"sort"
	"strings"
)

// columnMap holds the lower case column names per table.
type columnMap struct {
	tables map[string]map[string]bool
}

func newColumnMap() *columnMap {
	return &columnMap{tables: map[string]map[string]bool{}}
}

func (cm *columnMap) add(table, column string) {
	if _, ok := cm.tables[table]; !ok {
		cm.tables[table] = map[string]bool{}
	}
	if column != "" {
		cm.tables[table][strings.ToLower(column)] = true
	}
}

func (cm *columnMap) columns(table string) (map[string]bool, bool) {
	for name, columns := range cm.tables {
		if strings.EqualFold(name, table) {
			return columns, true
		}
	}
	return nil, false
}

func (cm *columnMap) names() []string {
	var names []string
	for name := range cm.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
