// This file is part of Cardrex.
//
// Cardrex is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Cardrex is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Cardrex.  If not, see <https://www.gnu.org/licenses/>.

package sjis

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding/japanese"
)

// the halfwidth equivalent of the full-width punctuation characters. the
// full-width alphanumeric characters are handled arithmetically.
var punctuation = map[uint16]string{
	0x8140: "  ",
	0x8143: ",",
	0x8144: ".",
	0x8145: "·",
	0x8146: ":",
	0x8147: ";",
	0x8148: "?",
	0x8149: "!",
	0x814f: "^",
	0x8151: "_",
	0x815b: "-",
	0x815c: "-",
	0x815d: "-",
	0x815e: "/",
	0x815f: "\\",
	0x8160: "~",
	0x8161: "|",
	0x8168: "\"",
	0x8169: "(",
	0x816a: ")",
	0x816d: "[",
	0x816e: "]",
	0x816f: "{",
	0x8170: "}",
	0x817b: "+",
	0x817c: "-",
	0x817d: "±",
	0x817e: "*",
	0x8180: "÷",
	0x8181: "=",
	0x8183: "<",
	0x8184: ">",
	0x818a: "°",
	0x818b: "'",
	0x818c: "\"",
	0x8190: "$",
	0x8193: "%",
	0x8194: "#",
	0x8195: "&",
	0x8196: "*",
	0x8197: "@",
}

// ranges of full-width alphanumeric characters.
const (
	digitFirst = 0x824f
	digitLast  = 0x8258
	upperFirst = 0x8260
	upperLast  = 0x8279
	lowerFirst = 0x8281
	lowerLast  = 0x829a
)

// Transliterate the Shift-JIS encoded string to an ASCII approximation. The
// data is treated as a sequence of two byte characters. A character of 0x0000
// ends the string.
func Transliterate(data []byte) string {
	var s strings.Builder

	for i := 0; i+1 < len(data); i += 2 {
		c := uint16(data[i])<<8 | uint16(data[i+1])

		switch {
		case c == 0x0000:
			return s.String()
		case c >= digitFirst && c <= digitLast:
			s.WriteByte(byte('0' + c - digitFirst))
		case c >= upperFirst && c <= upperLast:
			s.WriteByte(byte('A' + c - upperFirst))
		case c >= lowerFirst && c <= lowerLast:
			s.WriteByte(byte('a' + c - lowerFirst))
		default:
			if r, ok := punctuation[c]; ok {
				s.WriteString(r)
			}
		}
	}

	return s.String()
}

// Decode the Shift-JIS encoded string. The string ends at the first NUL byte
// or at the end of the data. Bytes that are not valid Shift-JIS are replaced
// with the unicode replacement character.
func Decode(data []byte) string {
	if i := bytes.IndexByte(data, 0x00); i >= 0 {
		data = data[:i]
	}

	b, err := japanese.ShiftJIS.NewDecoder().Bytes(data)
	if err != nil {
		return ""
	}

	return string(b)
}

// Encode a string to Shift-JIS. Characters that can not be encoded are
// replaced by a question mark.
func Encode(s string) []byte {
	var b bytes.Buffer
	enc := japanese.ShiftJIS.NewEncoder()
	for _, r := range s {
		e, err := enc.Bytes([]byte(string(r)))
		if err != nil {
			b.WriteByte('?')
			continue
		}
		b.Write(e)
	}
	return b.Bytes()
}
