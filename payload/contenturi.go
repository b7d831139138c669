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

package payload

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// Content URIs that carry a GUID have the shape <scheme>{<guid>}<suffix>,
// e.g. "file:{F38BF404-1D43-42F2-9305-67DE0B28FC23}/notepad.exe".
const (
	uriPrefixLen   = 5
	uriGUIDStart   = uriPrefixLen + 1
	uriGUIDLen     = 36
	uriGUIDEnd     = uriGUIDStart + uriGUIDLen
	uriSuffixStart = uriGUIDEnd + 1
)

// ErrContentURIFormat is returned for content URIs that contain braces but
// do not match the expected shape.
var ErrContentURIFormat = errors.New("unexpected content uri format")

// DecodeContentURI percent-decodes uri and substitutes an embedded GUID.
// A nil uri yields "".
func DecodeContentURI(uri *string, names Resolver) (string, error) {
	if uri == nil {
		return "", nil
	}

	decoded := unescape(*uri)

	if !strings.Contains(decoded, "{") || !strings.Contains(decoded, "}") {
		return decoded, nil
	}

	if len(decoded) < uriSuffixStart || decoded[uriPrefixLen] != '{' || decoded[uriGUIDEnd] != '}' {
		return "", errors.Wrapf(ErrContentURIFormat, "%q", decoded)
	}

	guid := decoded[uriGUIDStart:uriGUIDEnd]
	if names != nil {
		guid = names.Lookup(guid)
	}
	return decoded[:uriPrefixLen] + guid + decoded[uriSuffixStart:], nil
}

// unescape decodes %XX escapes and '+' as a space. Malformed escapes are
// copied as stored.
func unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '+':
			b.WriteByte(' ')
		case '%':
			if i+2 < len(s) {
				if c, err := hex.DecodeString(s[i+1 : i+3]); err == nil {
					b.Write(c)
					i += 2
					continue
				}
			}
			b.WriteByte('%')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
