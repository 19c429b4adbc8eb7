// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package connstring

import "strings"

// parseUserInfo decodes the username[:password] segment that precedes the
// last '@' in the authority part. The segment is split on the first ':';
// any ':' or '@' remaining in either piece after the split must have been
// percent-encoded, so a literal occurrence is a credential error. Decoding
// happens only after validation. hasPassword reports whether a ':' was
// present at all, distinguishing "user:" (empty password) from "user" (no
// password).
func parseUserInfo(userinfo string) (username, password string, hasPassword bool, err error) {
	user, sep, passwd := partition(userinfo, ":")

	if strings.ContainsAny(user, ":@") || strings.ContainsAny(passwd, ":@") {
		return "", "", false, invalidURIf(
			"':' or '@' characters in a username or password must be percent-encoded")
	}
	if user == "" {
		return "", "", false, invalidURIf("the empty string is not a valid username")
	}

	return unescapePlus(user), unescapePlus(passwd), sep != "", nil
}
