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
	"strconv"
)

// ActivityKind is the symbolic activity type.
type ActivityKind int

// Known activity kinds. New codes appear with new Windows versions and map to
// KindUnrecognized.
const (
	KindUnrecognized ActivityKind = iota
	KindToastNotification
	KindDeviceBackup
	KindExecuteOpen
	KindInFocus
	KindCloudClipboard
	KindUnknown11
	KindUnknown12
	KindUnknown15
	KindCopyPaste
)

var activityKinds = map[int64]ActivityKind{ // nolint:gochecknoglobals
	2:  KindToastNotification,
	3:  KindDeviceBackup,
	5:  KindExecuteOpen,
	6:  KindInFocus,
	10: KindCloudClipboard,
	11: KindUnknown11,
	12: KindUnknown12,
	15: KindUnknown15,
	16: KindCopyPaste,
}

var kindNames = map[ActivityKind]string{ // nolint:gochecknoglobals
	KindToastNotification: "ToastNotification",
	KindDeviceBackup:      "DeviceBackup",
	KindExecuteOpen:       "ExecuteOpen",
	KindInFocus:           "InFocus",
	KindCloudClipboard:    "CloudClipboard",
	KindUnknown11:         "Unknown11",
	KindUnknown12:         "Unknown12",
	KindUnknown15:         "Unknown15",
	KindCopyPaste:         "CopyPaste",
}

// ActivityType is the activity type of a record with its stored code.
type ActivityType struct {
	Kind ActivityKind
	Code int64
}

// NewActivityType maps a stored code to its ActivityType.
func NewActivityType(code int64) ActivityType {
	return ActivityType{Kind: activityKinds[code], Code: code}
}

// Recognized reports whether the code is a known activity type.
func (a ActivityType) Recognized() bool {
	return a.Kind != KindUnrecognized
}

// String returns the symbolic name, or the code for unrecognized types.
func (a ActivityType) String() string {
	if name, ok := kindNames[a.Kind]; ok {
		return name
	}
	return strconv.FormatInt(a.Code, 10)
}
