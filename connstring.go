// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package connstring parses MongoDB connection strings of the form
//
//	mongodb://[user[:password]@]host1[:port1][,host2[:port2],...][/[db[.coll]]][?opt=value[&opt=value...]]
//
// into a validated ConnString record. Parsing is a single pure pass over the
// input: there is no I/O, no shared state, and a call may run concurrently
// with any other. Establishing connections, TLS handshakes, and
// authentication exchanges are the business of the layers that consume the
// record.
package connstring

import "strings"

const (
	// Scheme is the required connection string prefix.
	Scheme = "mongodb://"

	// DefaultPort is the port assigned to hosts that do not name one.
	DefaultPort = 27017
)

// ConnString is the parsed form of a connection string. A ConnString is
// immutable once returned.
type ConnString struct {
	// Original is the input text, unmodified.
	Original string

	// Hosts holds the addresses to contact, in input order. Duplicates are
	// preserved: order and multiplicity are significant to client-side
	// server selection.
	Hosts []Host

	// Username and Password are the decoded credentials. Username is empty
	// when the URI carried no user-info segment; PasswordSet reports whether
	// a password was present at all, distinguishing "user:@host" from
	// "user@host".
	Username    string
	Password    string
	PasswordSet bool

	// Database and Collection are the decoded path components. Collection
	// may contain dots and slashes verbatim.
	Database   string
	Collection string

	// Options maps lower-cased option names to their coerced values: bool,
	// int, float64 seconds, string, map[string]string, readpref.Mode,
	// UUIDRepresentation, or []readpref.TagSet for readpreferencetags. Empty
	// when the URI carried no options. When parsed with SkipValidation,
	// every value is instead a plain string (readpreferencetags: []string).
	Options map[string]interface{}

	// Warnings holds the diagnostics for options dropped in lenient mode,
	// in occurrence order. Always nil in strict mode.
	Warnings []string
}

// Parser configures connection string parsing. The zero value parses in
// strict mode with validation on and DefaultPort as the default port.
type Parser struct {
	// DefaultPort is assigned to hosts that do not name a port. 0 means
	// DefaultPort.
	DefaultPort int

	// SkipValidation stores option values as form-decoded strings instead of
	// coercing them through the option table.
	SkipValidation bool

	// Lenient drops unknown and invalid options with a warning instead of
	// failing the parse. Structural failures remain fatal.
	Lenient bool
}

// Parse parses uri in strict mode with validation on and the default port.
func Parse(uri string) (ConnString, error) {
	return Parser{}.Parse(uri)
}

// Parse parses uri into a ConnString. On failure it returns the zero
// ConnString and one of *InvalidURIError, *ConfigError, or
// *OptionValueError; the first failure encountered is terminal.
func (p Parser) Parse(uri string) (ConnString, error) {
	cs := ConnString{Original: uri, Options: make(map[string]interface{})}

	if !strings.HasPrefix(uri, Scheme) {
		return ConnString{}, invalidURIf("invalid URI scheme: URI must begin with %q", Scheme)
	}

	schemeFree := uri[len(Scheme):]
	if schemeFree == "" {
		return ConnString{}, invalidURIf("must provide at least one hostname or IP address")
	}

	// The host segment ends at the first '/'. A literal '/' belonging to a
	// unix domain socket path must arrive percent-encoded, so this split
	// cannot land inside an address. Options may only follow that '/': a '?'
	// still sitting in the host segment means the separator was omitted.
	hostPart, _, pathPart := partition(schemeFree, "/")
	if pathPart == "" && strings.Contains(hostPart, "?") {
		return ConnString{}, invalidURIf("a '/' is required between the host list and any options")
	}

	// Credentials end at the last '@' of the host segment: a percent-encoded
	// '@' may survive decoding into a username or password, but hosts never
	// contain a literal one.
	if strings.Contains(hostPart, "@") {
		userinfo, _, hosts := rpartition(hostPart, "@")

		var err error
		cs.Username, cs.Password, cs.PasswordSet, err = parseUserInfo(userinfo)
		if err != nil {
			return ConnString{}, err
		}
		hostPart = hosts
	}

	if hostPart == "" {
		return ConnString{}, invalidURIf(
			"empty host list: any '/' in a unix domain socket path must be percent-encoded")
	}

	hosts, err := SplitHosts(hostPart, p.DefaultPort)
	if err != nil {
		return ConnString{}, err
	}
	cs.Hosts = hosts

	dbPart, qsep, optPart := partition(pathPart, "?")

	// The leading '/' was consumed as the host/path delimiter. The first raw
	// '.' separates database from collection, each piece decoded on its own:
	// a percent-encoded dot stays inside the database name, and the
	// collection keeps any further '.' or '/' characters verbatim.
	if dbPart != "" {
		database, sep, collection := partition(dbPart, ".")
		cs.Database = unescapePlus(database)
		if sep != "" {
			cs.Collection = unescapePlus(collection)
		}
	}

	// A '?' with nothing after it still reaches the option decoder, which
	// rejects the empty segment.
	if qsep != "" {
		options, warnings, err := SplitOptions(optPart, !p.SkipValidation, p.Lenient)
		if err != nil {
			return ConnString{}, err
		}
		cs.Options = options
		cs.Warnings = warnings
	}

	return cs, nil
}
