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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewActivityType(t *testing.T) {
	tests := []struct {
		name           string
		code           int64
		wantKind       ActivityKind
		wantString     string
		wantRecognized bool
	}{
		{"toast", 2, KindToastNotification, "ToastNotification", true},
		{"execute", 5, KindExecuteOpen, "ExecuteOpen", true},
		{"focus", 6, KindInFocus, "InFocus", true},
		{"cloud clipboard", 10, KindCloudClipboard, "CloudClipboard", true},
		{"copy paste", 16, KindCopyPaste, "CopyPaste", true},
		{"unknown 11", 11, KindUnknown11, "Unknown11", true},
		{"unrecognized", 42, KindUnrecognized, "42", false},
		{"zero", 0, KindUnrecognized, "0", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewActivityType(tt.code)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.code, got.Code)
			assert.Equal(t, tt.wantString, got.String())
			assert.Equal(t, tt.wantRecognized, got.Recognized())
		})
	}
}
