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
	"time"
)

// Table names of the activities cache.
const (
	TableActivityOperation = "ActivityOperation"
	TablePackageID         = "Activity_PackageId"
	TableActivity          = "Activity"
)

// Tables lists the tables in scan order.
var Tables = []string{TableActivityOperation, TablePackageID, TableActivity} // nolint:gochecknoglobals

// Entry is a normalized record of the Activity or ActivityOperation table.
// Optional timestamps are nil when unset.
type Entry struct {
	Table string

	ID           string
	ActivityType ActivityType
	Executable   string
	AppID        string

	DisplayText      string
	ContentInfo      string
	Description      string
	Payload          string
	ClipboardPayload string

	StartTime                    *time.Time
	EndTime                      *time.Time
	Duration                     *time.Duration
	ActiveDuration               *time.Duration
	LastModifiedTime             *time.Time
	LastModifiedOnClient         *time.Time
	OriginalLastModifiedOnClient *time.Time
	ExpirationTime               *time.Time
	CreatedInCloud               *time.Time
	LocalExpirationTime          *time.Time

	// CreatedTime and OperationExpirationTime are only set for operations.
	CreatedTime             *time.Time
	OperationExpirationTime *time.Time
	OperationOrder          int64
	OperationType           int64

	IsLocalOnly      bool
	ETag             int64
	PackageIDHash    string
	PlatformDeviceID string
	DevicePlatform   string
	TimeZone         string
	// ReportingApp is set for user engagement payloads.
	ReportingApp     string

	// Fields of later schema versions, nil when the table lacks the column.
	DdsDeviceID     *string
	UserActionState *int64
	IsRead          *int64
	GroupItems      *string
}

func (e Entry) String() string {
	return fmt.Sprintf("Exe: %s DisplayText: %s Start: %v", e.Executable, e.DisplayText, e.StartTime)
}

// PackageEntry is a normalized record of the Activity_PackageId table.
type PackageEntry struct {
	ID                    string
	Platform              string
	Name                  string
	AdditionalInformation string
	Expires               *time.Time
}

func (p PackageEntry) String() string {
	addlInfo := ""
	if p.AdditionalInformation != "" {
		addlInfo = " Additional info: " + p.AdditionalInformation
	}
	return fmt.Sprintf("Platform: %s Name: %s Expires: %v%s", p.Platform, p.Name, p.Expires, addlInfo)
}

// platformName returns the display name of a package platform.
func platformName(platform string) string {
	switch platform {
	case "windows_win32":
		return "Win32"
	case "x_exe_path":
		return "ExecutablePath"
	case "packageId":
		return "Package"
	default:
		return platform
	}
}

// duration returns end - start for plausible, distinct timestamps.
func duration(start, end *time.Time) *time.Duration {
	if start == nil || end == nil {
		return nil
	}
	if end.Equal(*start) || end.Year() <= 1970 {
		return nil
	}
	d := end.Sub(*start)
	return &d
}
