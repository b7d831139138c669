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

// Package payload decodes the JSON payload blobs of timeline activities.
package payload

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// BinaryMarker replaces payloads that are not JSON documents.
const BinaryMarker = "(Binary data)"

// ErrPayload is returned for payloads that look like JSON but cannot be decoded.
var ErrPayload = errors.New("malformed payload")

// Resolver maps a GUID to a readable name.
type Resolver interface {
	Lookup(guid string) string
}

// Document holds the fields of a payload document. Absent fields are nil.
type Document struct {
	DisplayText             *string                  `json:"displayText"`
	ActivationURI           *string                  `json:"activationUri"`
	AppDisplayName          *string                  `json:"appDisplayName"`
	Description             *string                  `json:"description"`
	BackgroundColor         *string                  `json:"backgroundColor"`
	ContentURI              *string                  `json:"contentUri"`
	UserTimezone            *string                  `json:"userTimezone"`
	DevicePlatform          *string                  `json:"devicePlatform"`
	ShellContentDescription *ShellContentDescription `json:"shellContentDescription"`
}

// ShellContentDescription is the nested shell link of a payload.
type ShellContentDescription struct {
	FileShellLink *string `json:"fileShellLink"`
}

// Decoded is the analyst facing view of a payload.
type Decoded struct {
	// Text is the payload as stored, or BinaryMarker.
	Text     string
	Document *Document

	DisplayText    string
	ContentInfo    string
	Description    string
	TimeZone       string
	DevicePlatform string

	// ReportingApp and ActiveDuration are set for user engagement payloads.
	ReportingApp   string
	ActiveDuration *time.Duration
}

// Binary reports whether the payload was not a JSON document.
func (d Decoded) Binary() bool {
	return d.Document == nil && d.Text == BinaryMarker
}

// Decoder decodes payloads, resolving GUIDs in content URIs with names.
type Decoder struct {
	names Resolver
}

// NewDecoder creates a Decoder.
func NewDecoder(names Resolver) *Decoder {
	return &Decoder{names: names}
}

// Decode decodes a payload blob.
func (d *Decoder) Decode(b []byte) (Decoded, error) {
	text := string(b)
	if !strings.HasPrefix(text, "{") {
		return Decoded{Text: BinaryMarker}, nil
	}

	if !gjson.Valid(text) {
		return Decoded{}, errors.Wrap(ErrPayload, "invalid json")
	}
	doc := &Document{}
	if err := json.Unmarshal(b, doc); err != nil {
		return Decoded{}, errors.Wrap(ErrPayload, err.Error())
	}

	decoded := Decoded{
		Text:           text,
		Document:       doc,
		DisplayText:    value(doc.DisplayText),
		Description:    value(doc.Description),
		TimeZone:       value(doc.UserTimezone),
		DevicePlatform: value(doc.DevicePlatform),
	}

	if doc.ContentURI != nil || doc.Description != nil {
		decoded.DisplayText = fmt.Sprintf("%s (%s)", value(doc.DisplayText), value(doc.AppDisplayName))

		contentURI, err := DecodeContentURI(doc.ContentURI, d.names)
		if err != nil {
			return Decoded{}, err
		}
		decoded.ContentInfo = fmt.Sprintf("%s (%s)", value(doc.Description), contentURI)
	}

	engagement(text, &decoded)

	return decoded, nil
}

// DecodeClipboard decodes a clipboard payload with the same rules as Decode.
// An empty clipboard yields an empty text.
func (d *Decoder) DecodeClipboard(b []byte) (string, error) {
	if len(b) == 0 {
		return "", nil
	}
	decoded, err := d.Decode(b)
	if err != nil {
		return "", errors.Wrap(err, "clipboard")
	}
	return decoded.Text, nil
}

func engagement(text string, decoded *Decoded) {
	result := gjson.GetMany(text, "reportingApp", "activeDurationSeconds")
	decoded.ReportingApp = result[0].String()
	if result[1].Exists() {
		duration := time.Duration(result[1].Int()) * time.Second
		decoded.ActiveDuration = &duration
	}
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
