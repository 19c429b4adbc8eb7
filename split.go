// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package connstring

import "strings"

// partition splits s at the first occurrence of sep, returning the text
// before the separator, the separator itself, and the text after it. If sep
// does not occur, it returns (s, "", "").
func partition(s, sep string) (before, found, after string) {
	idx := strings.Index(s, sep)
	if idx < 0 {
		return s, "", ""
	}
	return s[:idx], sep, s[idx+len(sep):]
}

// rpartition is the mirror of partition, splitting at the last occurrence of
// sep. If sep does not occur, it returns ("", "", s).
func rpartition(s, sep string) (before, found, after string) {
	idx := strings.LastIndex(s, sep)
	if idx < 0 {
		return "", "", s
	}
	return s[:idx], sep, s[idx+len(sep):]
}

// unescapePlus decodes form-encoded text: '+' becomes a space and %XX
// escapes become the bytes they name. Malformed escapes are passed through
// as literal text rather than rejected; reserved-delimiter validation
// happens on the raw text before decoding, so by the time a segment is
// decoded there is nothing left to reject.
func unescapePlus(s string) string {
	if !strings.ContainsAny(s, "%+") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '+':
			b.WriteByte(' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	}
	return c - 'A' + 10
}
