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
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forensicanalysis/wxtimeline/appid"
	"github.com/forensicanalysis/wxtimeline/guidmap"
	"github.com/forensicanalysis/wxtimeline/payload"
)

const notepadAppID = `[{"application":"{1AC14E77-02E7-4E5D-B744-2EB1AE5198B7}\\notepad.exe","platform":"windows_win32"},` +
	`{"application":"Microsoft.Windows.Notepad","platform":"packageId"}]`

func activityRow(id string) mapRow {
	return mapRow{
		"id":               id,
		"appid":            notepadAppID,
		"activitytype":     int64(5),
		"payload":          []byte(`{"displayText":"notes.txt","appDisplayName":"Notepad","description":"C:\\notes.txt","contentUri":"file:///C:/notes.txt"}`),
		"clipboardpayload": nil,
		"starttime":        int64(1577836800),
		"endtime":          int64(1577836860),
		"lastmodifiedtime": int64(1577836860),
		"expirationtime":   int64(0),
		"islocalonly":      int64(1),
		"etag":             int64(7),
		"platformdeviceid": "device",
		"packageidhash":    "hash",
	}
}

func operationRow(id string) mapRow {
	row := activityRow(id)
	row["operationorder"] = int64(2)
	row["operationtype"] = int64(1)
	row["createdtime"] = int64(1577836900)
	row["operationexpirationtime"] = nil
	return row
}

func packageRow(id, platform, name string) mapRow {
	return mapRow{
		"activityid":     id,
		"platform":       platform,
		"packagename":    name,
		"expirationtime": int64(1580515200),
	}
}

func TestParseRowErrorPolicy(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    RowErrorPolicy
		wantErr bool
	}{
		{"default", "", AbortTable, false},
		{"abort", "abort", AbortTable, false},
		{"skip", "skip", SkipRow, false},
		{"unknown", "retry", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRowErrorPolicy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizer_Run(t *testing.T) {
	source := memSource{
		TableActivityOperation: {operationRow("op-1")},
		TablePackageID: {
			packageRow("pkg-1", "windows_win32", `{6D809377-6AF0-444B-8957-A3773F02200E}\app.exe`),
			packageRow("pkg-2", "x_exe_path", `C:\app.exe`),
		},
		TableActivity: {activityRow("act-1"), activityRow("act-2")},
	}

	timeline := NewNormalizer(Options{Logger: zerolog.Nop()}).Run(source)

	require.Len(t, timeline.Operations, 1)
	require.Len(t, timeline.PackageIDs, 2)
	require.Len(t, timeline.Activities, 2)
	require.Len(t, timeline.Results, 3)
	for i, table := range Tables {
		assert.Equal(t, table, timeline.Results[i].Table)
		assert.NoError(t, timeline.Results[i].Err)
	}

	activity := timeline.Activities[0]
	assert.Equal(t, TableActivity, activity.Table)
	assert.Equal(t, "act-1", activity.ID)
	assert.Equal(t, `System\notepad.exe`, activity.Executable)
	assert.Equal(t, notepadAppID, activity.AppID)
	assert.Equal(t, KindExecuteOpen, activity.ActivityType.Kind)
	assert.Equal(t, "notes.txt (Notepad)", activity.DisplayText)
	assert.Equal(t, `C:\notes.txt (file:///C:/notes.txt)`, activity.ContentInfo)
	assert.Equal(t, "", activity.ClipboardPayload)
	assert.Equal(t, timePtr(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)), activity.StartTime)
	assert.Equal(t, timePtr(time.Date(2020, 1, 1, 0, 1, 0, 0, time.UTC)), activity.EndTime)
	assert.Equal(t, durationPtr(time.Minute), activity.Duration)
	assert.Nil(t, activity.ExpirationTime)
	assert.True(t, activity.IsLocalOnly)
	assert.Equal(t, int64(7), activity.ETag)
	assert.Nil(t, activity.CreatedTime)

	operation := timeline.Operations[0]
	assert.Equal(t, TableActivityOperation, operation.Table)
	assert.Equal(t, int64(2), operation.OperationOrder)
	assert.Equal(t, int64(1), operation.OperationType)
	assert.Equal(t, timePtr(time.Date(2020, 1, 1, 0, 1, 40, 0, time.UTC)), operation.CreatedTime)
	assert.Nil(t, operation.OperationExpirationTime)
	assert.False(t, operation.IsLocalOnly)

	pkg := timeline.PackageIDs[0]
	assert.Equal(t, "pkg-1", pkg.ID)
	assert.Equal(t, "Win32", pkg.Platform)
	assert.Equal(t, `ProgramFilesX64\app.exe`, pkg.AdditionalInformation)
	assert.Equal(t, timePtr(time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC)), pkg.Expires)
	assert.Equal(t, "ExecutablePath", timeline.PackageIDs[1].Platform)
	assert.Equal(t, "", timeline.PackageIDs[1].AdditionalInformation)
}

func TestNormalizer_RunMissingTables(t *testing.T) {
	buf := &bytes.Buffer{}
	source := memSource{
		TableActivityOperation: {operationRow("op-1")},
	}

	timeline := NewNormalizer(Options{Logger: zerolog.New(buf)}).Run(source)

	assert.Len(t, timeline.Operations, 1)
	assert.Empty(t, timeline.PackageIDs)
	assert.Empty(t, timeline.Activities)

	result, ok := timeline.Result(TableActivity)
	require.True(t, ok)
	assert.True(t, result.Missing())
	result, ok = timeline.Result(TablePackageID)
	require.True(t, ok)
	assert.True(t, result.Missing())
	result, ok = timeline.Result(TableActivityOperation)
	require.True(t, ok)
	assert.False(t, result.Missing())

	assert.Equal(t, 2, strings.Count(buf.String(), "table does not exist"))
	assert.Contains(t, buf.String(), "entries found")
}

func TestNormalizer_RunRowErrors(t *testing.T) {
	broken := activityRow("act-broken")
	broken["appid"] = "[]"

	tests := []struct {
		name        string
		policy      RowErrorPolicy
		wantIDs     []string
		wantSkipped int
		wantErr     error
	}{
		{"abort", AbortTable, []string{"act-1"}, 0, appid.ErrEmpty},
		{"skip", SkipRow, []string{"act-1", "act-3"}, 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := memSource{
				TableActivityOperation: {operationRow("op-1")},
				TablePackageID:         {packageRow("pkg-1", "packageId", "Microsoft.Windows.Photos")},
				TableActivity:          {activityRow("act-1"), broken, activityRow("act-3")},
			}

			timeline := NewNormalizer(Options{RowErrors: tt.policy, Logger: zerolog.Nop()}).Run(source)

			var ids []string
			for _, activity := range timeline.Activities {
				ids = append(ids, activity.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Len(t, timeline.Operations, 1)
			assert.Len(t, timeline.PackageIDs, 1)
			assert.Equal(t, "Package", timeline.PackageIDs[0].Platform)

			result, ok := timeline.Result(TableActivity)
			require.True(t, ok)
			assert.Equal(t, tt.wantSkipped, result.Skipped)
			if tt.wantErr == nil {
				assert.NoError(t, result.Err)
				return
			}
			assert.True(t, errors.Is(result.Err, tt.wantErr))
			var rowErr *RowError
			require.True(t, errors.As(result.Err, &rowErr))
			assert.Equal(t, 2, rowErr.Row)
			assert.Equal(t, TableActivity, rowErr.Table)
		})
	}
}

func TestNormalizer_Payloads(t *testing.T) {
	tests := []struct {
		name          string
		payload       interface{}
		clipboard     interface{}
		wantPayload   string
		wantClipboard string
		wantErr       bool
	}{
		{"binary", []byte{0x01, 0x02}, nil, payload.BinaryMarker, "", false},
		{"null payload", nil, nil, payload.BinaryMarker, "", false},
		{"json clipboard", []byte(`{"displayText":"x"}`), []byte(`[{"content":"aGk="}]`), `{"displayText":"x"}`, payload.BinaryMarker, false},
		{"json object clipboard", []byte(`{}`), []byte(`{"a":1}`), `{}`, `{"a":1}`, false},
		{"malformed", []byte(`{"displayText":`), nil, "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := activityRow("act-1")
			row["payload"] = tt.payload
			row["clipboardpayload"] = tt.clipboard

			timeline := NewNormalizer(Options{Logger: zerolog.Nop()}).Run(memSource{TableActivity: {row}})
			result, _ := timeline.Result(TableActivity)
			if tt.wantErr {
				assert.True(t, errors.Is(result.Err, payload.ErrPayload))
				assert.Empty(t, timeline.Activities)
				return
			}
			require.NoError(t, result.Err)
			require.Len(t, timeline.Activities, 1)
			assert.Equal(t, tt.wantPayload, timeline.Activities[0].Payload)
			assert.Equal(t, tt.wantClipboard, timeline.Activities[0].ClipboardPayload)
		})
	}
}

func TestNormalizer_SchemaVariants(t *testing.T) {
	row := activityRow("act-1")
	row["ddsdeviceid"] = "dds"
	row["useractionstate"] = int64(1)
	row["isread"] = int64(0)
	row["groupitems"] = "[]"
	row["localexpirationtime"] = int64(1577836800)

	timeline := NewNormalizer(Options{Logger: zerolog.Nop()}).Run(memSource{TableActivity: {row}})
	require.Len(t, timeline.Activities, 1)

	result, _ := timeline.Result(TableActivity)
	assert.Equal(t, 5, result.Schema.Version)

	activity := timeline.Activities[0]
	require.NotNil(t, activity.DdsDeviceID)
	assert.Equal(t, "dds", *activity.DdsDeviceID)
	require.NotNil(t, activity.UserActionState)
	assert.Equal(t, int64(1), *activity.UserActionState)
	require.NotNil(t, activity.IsRead)
	assert.Equal(t, int64(0), *activity.IsRead)
	require.NotNil(t, activity.GroupItems)
	assert.Equal(t, timePtr(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)), activity.LocalExpirationTime)

	plain := NewNormalizer(Options{Logger: zerolog.Nop()}).Run(memSource{TableActivity: {activityRow("act-2")}})
	require.Len(t, plain.Activities, 1)
	assert.Nil(t, plain.Activities[0].DdsDeviceID)
	assert.Nil(t, plain.Activities[0].UserActionState)
	assert.Nil(t, plain.Activities[0].LocalExpirationTime)
}

func TestNormalizer_Engagement(t *testing.T) {
	row := activityRow("act-1")
	row["payload"] = []byte(`{"type":"UserEngaged","reportingApp":"Microsoft.Windows.Explorer","activeDurationSeconds":42}`)

	timeline := NewNormalizer(Options{Logger: zerolog.Nop()}).Run(memSource{TableActivity: {row}})
	require.Len(t, timeline.Activities, 1)

	activity := timeline.Activities[0]
	assert.Equal(t, "Microsoft.Windows.Explorer", activity.ReportingApp)
	require.NotNil(t, activity.ActiveDuration)
	assert.Equal(t, 42*time.Second, *activity.ActiveDuration)
}

func TestNormalizer_LogsUnusualRows(t *testing.T) {
	row := activityRow("act-1")
	row["activitytype"] = int64(99)
	row["payload"] = []byte{0x30, 0x82, 0x01}

	buf := &bytes.Buffer{}
	timeline := NewNormalizer(Options{Logger: zerolog.New(buf).Level(zerolog.TraceLevel)}).Run(memSource{TableActivity: {row}})
	require.Len(t, timeline.Activities, 1)

	assert.Equal(t, payload.BinaryMarker, timeline.Activities[0].Payload)
	assert.Equal(t, "99", timeline.Activities[0].ActivityType.String())
	assert.Contains(t, buf.String(), "binary payload")
	assert.Contains(t, buf.String(), "unrecognized activity type")
}

func TestNormalizer_CustomNames(t *testing.T) {
	names, err := guidmap.New(map[string]string{"1AC14E77-02E7-4E5D-B744-2EB1AE5198B7": "Sys32"})
	require.NoError(t, err)

	timeline := NewNormalizer(Options{Names: names, Logger: zerolog.Nop()}).Run(memSource{TableActivity: {activityRow("act-1")}})
	require.Len(t, timeline.Activities, 1)
	assert.Equal(t, `Sys32\notepad.exe`, timeline.Activities[0].Executable)
}
