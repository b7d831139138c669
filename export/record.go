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

package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/structs"

	"github.com/forensicanalysis/wxtimeline"
)

// Column orders of the exported tables.
var (
	OperationColumns = []string{ // nolint:gochecknoglobals
		"Id", "ActivityTypeOrg", "ActivityType", "Executable", "DisplayText", "ContentInfo",
		"Payload", "ClipboardPayload", "StartTime", "EndTime", "Duration", "LastModifiedTime",
		"LastModifiedTimeOnClient", "CreatedTime", "ExpirationTime", "OperationExpirationTime",
		"OperationOrder", "AppId", "OperationType", "Description", "PlatformDeviceId",
		"DevicePlatform", "TimeZone", "ActiveDuration", "ReportingApp",
	}

	PackageIDColumns = []string{ // nolint:gochecknoglobals
		"Id", "Platform", "Name", "AdditionalInformation", "Expires",
	}

	ActivityColumns = []string{ // nolint:gochecknoglobals
		"Id", "ActivityTypeOrg", "ActivityType", "Executable", "DisplayText", "ContentInfo",
		"Payload", "ClipboardPayload", "StartTime", "EndTime", "Duration", "LastModifiedTime",
		"LastModifiedOnClient", "OriginalLastModifiedOnClient", "ExpirationTime", "CreatedInCloud",
		"IsLocalOnly", "ETag", "PackageIdHash", "PlatformDeviceId", "DevicePlatform", "TimeZone",
		"ActiveDuration", "ReportingApp",
	}
)

// Table is a rendered table. Records hold the formatted cell of every column.
type Table struct {
	Name    string
	Columns []string
	Records []map[string]interface{}
}

// Engagement holds the user engagement columns of a payload.
type Engagement struct {
	ActiveDuration string `structs:"ActiveDuration"`
	ReportingApp   string `structs:"ReportingApp"`
}

// Variant holds the columns of later schema versions.
type Variant struct {
	DdsDeviceID         string `structs:"DdsDeviceId"`
	UserActionState     string `structs:"UserActionState"`
	IsRead              string `structs:"IsRead"`
	GroupItems          string `structs:"GroupItems"`
	LocalExpirationTime string `structs:"LocalExpirationTime"`
}

type operationRecord struct {
	ID                       string `structs:"Id"`
	ActivityTypeOrg          string `structs:"ActivityTypeOrg"`
	ActivityType             string `structs:"ActivityType"`
	Executable               string `structs:"Executable"`
	DisplayText              string `structs:"DisplayText"`
	ContentInfo              string `structs:"ContentInfo"`
	Payload                  string `structs:"Payload"`
	ClipboardPayload         string `structs:"ClipboardPayload"`
	StartTime                string `structs:"StartTime"`
	EndTime                  string `structs:"EndTime"`
	Duration                 string `structs:"Duration"`
	LastModifiedTime         string `structs:"LastModifiedTime"`
	LastModifiedTimeOnClient string `structs:"LastModifiedTimeOnClient"`
	CreatedTime              string `structs:"CreatedTime"`
	ExpirationTime           string `structs:"ExpirationTime"`
	OperationExpirationTime  string `structs:"OperationExpirationTime"`
	OperationOrder           string `structs:"OperationOrder"`
	AppID                    string `structs:"AppId"`
	OperationType            string `structs:"OperationType"`
	Description              string `structs:"Description"`
	PlatformDeviceID         string `structs:"PlatformDeviceId"`
	DevicePlatform           string `structs:"DevicePlatform"`
	TimeZone                 string `structs:"TimeZone"`
	Engagement               `structs:",flatten"`
	Variant                  `structs:",flatten"`
}

type packageRecord struct {
	ID                    string `structs:"Id"`
	Platform              string `structs:"Platform"`
	Name                  string `structs:"Name"`
	AdditionalInformation string `structs:"AdditionalInformation"`
	Expires               string `structs:"Expires"`
}

type activityRecord struct {
	ID                           string `structs:"Id"`
	ActivityTypeOrg              string `structs:"ActivityTypeOrg"`
	ActivityType                 string `structs:"ActivityType"`
	Executable                   string `structs:"Executable"`
	DisplayText                  string `structs:"DisplayText"`
	ContentInfo                  string `structs:"ContentInfo"`
	Payload                      string `structs:"Payload"`
	ClipboardPayload             string `structs:"ClipboardPayload"`
	StartTime                    string `structs:"StartTime"`
	EndTime                      string `structs:"EndTime"`
	Duration                     string `structs:"Duration"`
	LastModifiedTime             string `structs:"LastModifiedTime"`
	LastModifiedOnClient         string `structs:"LastModifiedOnClient"`
	OriginalLastModifiedOnClient string `structs:"OriginalLastModifiedOnClient"`
	ExpirationTime               string `structs:"ExpirationTime"`
	CreatedInCloud               string `structs:"CreatedInCloud"`
	IsLocalOnly                  string `structs:"IsLocalOnly"`
	ETag                         string `structs:"ETag"`
	PackageIDHash                string `structs:"PackageIdHash"`
	PlatformDeviceID             string `structs:"PlatformDeviceId"`
	DevicePlatform               string `structs:"DevicePlatform"`
	TimeZone                     string `structs:"TimeZone"`
	Engagement                   `structs:",flatten"`
	Variant                      `structs:",flatten"`
}

// formatter renders timestamps with a Go time layout.
type formatter struct {
	layout string
}

func (f formatter) time(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(f.layout)
}

// duration renders d as [-][d.]hh:mm:ss.
func duration(d *time.Duration) string {
	if d == nil {
		return ""
	}
	v := *d
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	days := v / (24 * time.Hour)
	v -= days * 24 * time.Hour
	hours := v / time.Hour
	v -= hours * time.Hour
	minutes := v / time.Minute
	v -= minutes * time.Minute
	seconds := v / time.Second

	if days > 0 {
		return fmt.Sprintf("%s%d.%02d:%02d:%02d", sign, days, hours, minutes, seconds)
	}
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, hours, minutes, seconds)
}

func optionalText(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optionalInt(i *int64) string {
	if i == nil {
		return ""
	}
	return strconv.FormatInt(*i, 10)
}

func engagement(e wxtimeline.Entry) Engagement {
	return Engagement{
		ActiveDuration: duration(e.ActiveDuration),
		ReportingApp:   e.ReportingApp,
	}
}

func (f formatter) variant(e wxtimeline.Entry) Variant {
	return Variant{
		DdsDeviceID:         optionalText(e.DdsDeviceID),
		UserActionState:     optionalInt(e.UserActionState),
		IsRead:              optionalInt(e.IsRead),
		GroupItems:          optionalText(e.GroupItems),
		LocalExpirationTime: f.time(e.LocalExpirationTime),
	}
}

// variantColumns returns the later schema columns present in schema.
func variantColumns(schema wxtimeline.Schema) []string {
	var columns []string
	if schema.SecondaryDeviceID {
		columns = append(columns, "DdsDeviceId")
	}
	if schema.UserActionState {
		columns = append(columns, "UserActionState", "IsRead")
	}
	if schema.GroupItems {
		columns = append(columns, "GroupItems")
	}
	if schema.LocalExpiration {
		columns = append(columns, "LocalExpirationTime")
	}
	return columns
}

func withVariant(columns []string, schema wxtimeline.Schema) []string {
	extra := variantColumns(schema)
	all := make([]string, 0, len(columns)+len(extra))
	all = append(all, columns...)
	return append(all, extra...)
}

func (f formatter) operations(entries []wxtimeline.Entry, schema wxtimeline.Schema) Table {
	table := Table{Name: wxtimeline.TableActivityOperation, Columns: withVariant(OperationColumns, schema)}
	for _, e := range entries {
		table.Records = append(table.Records, structs.Map(operationRecord{
			ID:                       e.ID,
			ActivityTypeOrg:          strconv.FormatInt(e.ActivityType.Code, 10),
			ActivityType:             e.ActivityType.String(),
			Executable:               e.Executable,
			DisplayText:              e.DisplayText,
			ContentInfo:              e.ContentInfo,
			Payload:                  e.Payload,
			ClipboardPayload:         e.ClipboardPayload,
			StartTime:                f.time(e.StartTime),
			EndTime:                  f.time(e.EndTime),
			Duration:                 duration(e.Duration),
			LastModifiedTime:         f.time(e.LastModifiedTime),
			LastModifiedTimeOnClient: f.time(e.LastModifiedOnClient),
			CreatedTime:              f.time(e.CreatedTime),
			ExpirationTime:           f.time(e.ExpirationTime),
			OperationExpirationTime:  f.time(e.OperationExpirationTime),
			OperationOrder:           strconv.FormatInt(e.OperationOrder, 10),
			AppID:                    e.AppID,
			OperationType:            strconv.FormatInt(e.OperationType, 10),
			Description:              e.Description,
			PlatformDeviceID:         e.PlatformDeviceID,
			DevicePlatform:           e.DevicePlatform,
			TimeZone:                 e.TimeZone,
			Engagement:               engagement(e),
			Variant:                  f.variant(e),
		}))
	}
	return table
}

func (f formatter) packageIDs(entries []wxtimeline.PackageEntry) Table {
	table := Table{Name: wxtimeline.TablePackageID, Columns: PackageIDColumns}
	for _, e := range entries {
		table.Records = append(table.Records, structs.Map(packageRecord{
			ID:                    e.ID,
			Platform:              e.Platform,
			Name:                  e.Name,
			AdditionalInformation: e.AdditionalInformation,
			Expires:               f.time(e.Expires),
		}))
	}
	return table
}

func (f formatter) activities(entries []wxtimeline.Entry, schema wxtimeline.Schema) Table {
	table := Table{Name: wxtimeline.TableActivity, Columns: withVariant(ActivityColumns, schema)}
	for _, e := range entries {
		table.Records = append(table.Records, structs.Map(activityRecord{
			ID:                           e.ID,
			ActivityTypeOrg:              strconv.FormatInt(e.ActivityType.Code, 10),
			ActivityType:                 e.ActivityType.String(),
			Executable:                   e.Executable,
			DisplayText:                  e.DisplayText,
			ContentInfo:                  e.ContentInfo,
			Payload:                      e.Payload,
			ClipboardPayload:             e.ClipboardPayload,
			StartTime:                    f.time(e.StartTime),
			EndTime:                      f.time(e.EndTime),
			Duration:                     duration(e.Duration),
			LastModifiedTime:             f.time(e.LastModifiedTime),
			LastModifiedOnClient:         f.time(e.LastModifiedOnClient),
			OriginalLastModifiedOnClient: f.time(e.OriginalLastModifiedOnClient),
			ExpirationTime:               f.time(e.ExpirationTime),
			CreatedInCloud:               f.time(e.CreatedInCloud),
			IsLocalOnly:                  strconv.FormatBool(e.IsLocalOnly),
			ETag:                         strconv.FormatInt(e.ETag, 10),
			PackageIDHash:                e.PackageIDHash,
			PlatformDeviceID:             e.PlatformDeviceID,
			DevicePlatform:               e.DevicePlatform,
			TimeZone:                     e.TimeZone,
			Engagement:                   engagement(e),
			Variant:                      f.variant(e),
		}))
	}
	return table
}
