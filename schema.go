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

// Columns added by later versions of the activities cache.
const (
	columnDdsDeviceID         = "ddsdeviceid"
	columnUserActionState     = "useractionstate"
	columnIsRead              = "isread"
	columnGroupItems          = "groupitems"
	columnLocalExpirationTime = "localexpirationtime"
)

// Schema describes the optional columns of a table.
type Schema struct {
	Version int

	SecondaryDeviceID bool
	UserActionState   bool
	GroupItems        bool
	LocalExpiration   bool
}

// DetectSchema derives the schema variant from the lower case column names
// of a table.
func DetectSchema(columns map[string]bool) Schema {
	schema := Schema{
		SecondaryDeviceID: columns[columnDdsDeviceID],
		UserActionState:   columns[columnUserActionState] && columns[columnIsRead],
		GroupItems:        columns[columnGroupItems],
		LocalExpiration:   columns[columnLocalExpirationTime],
	}

	schema.Version = 1
	for _, feature := range []bool{schema.SecondaryDeviceID, schema.UserActionState, schema.GroupItems, schema.LocalExpiration} {
		if feature {
			schema.Version++
		}
	}
	return schema
}
