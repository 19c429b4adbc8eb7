// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package connstring

import (
	"strconv"
	"strings"
)

// Host is a single address from a connection string host list: either a TCP
// host with a port or the path of a unix domain socket.
type Host struct {
	// Host is the hostname, IP address, IPv6 literal (without brackets), or
	// unix domain socket path. Never empty.
	Host string

	// Port is the TCP port in the range [1, 65535], or 0 when the address is
	// a unix domain socket.
	Port int
}

// Network returns the network for net.Dial: "unix" for socket paths and
// "tcp" otherwise.
func (h Host) Network() string {
	if h.Port == 0 {
		return "unix"
	}
	return "tcp"
}

// String renders the address in connection string form, bracketing IPv6
// literals.
func (h Host) String() string {
	if h.Port == 0 {
		return h.Host
	}
	if strings.Contains(h.Host, ":") {
		return "[" + h.Host + "]:" + strconv.Itoa(h.Port)
	}
	return h.Host + ":" + strconv.Itoa(h.Port)
}

// SplitHosts splits the comma-separated host list of a connection string
// into addresses, in input order and with duplicates preserved. Hosts
// without a port receive defaultPort (or DefaultPort if defaultPort is 0).
// An empty entry, covering leading, trailing, and doubled commas, is a
// ConfigError; a malformed address is an InvalidURIError.
func SplitHosts(s string, defaultPort int) ([]Host, error) {
	if defaultPort == 0 {
		defaultPort = DefaultPort
	}

	entries := strings.Split(s, ",")
	hosts := make([]Host, 0, len(entries))
	for _, entry := range entries {
		if entry == "" {
			return nil, configErrorf("empty host (or extra comma in host list)")
		}

		host, err := parseHost(entry, defaultPort)
		if err != nil {
			return nil, err
		}
		hosts = append(hosts, host)
	}

	return hosts, nil
}

func parseHost(entry string, defaultPort int) (Host, error) {
	if strings.HasPrefix(entry, "[") {
		return parseIPv6Literal(entry, defaultPort)
	}

	// A unix domain socket path. The '/' and any other reserved characters
	// in the path arrive percent-encoded, so the raw entry cannot collide
	// with the list and port delimiters. Socket paths keep their case.
	if decoded := unescapePlus(entry); strings.HasSuffix(strings.ToLower(decoded), ".sock") {
		return Host{Host: decoded}, nil
	}

	host, sep, port := rpartition(entry, ":")
	if sep == "" {
		host, port = port, ""
	}
	if strings.Contains(host, ":") {
		return Host{}, invalidURIf(
			"an IPv6 address literal must be enclosed in '[' and ']': %s", entry)
	}
	if host == "" {
		return Host{}, invalidURIf("empty host in %q", entry)
	}

	if sep == "" {
		return Host{Host: strings.ToLower(host), Port: defaultPort}, nil
	}

	portNum, err := parsePort(port)
	if err != nil {
		return Host{}, err
	}
	return Host{Host: strings.ToLower(host), Port: portNum}, nil
}

func parseIPv6Literal(entry string, defaultPort int) (Host, error) {
	idx := strings.Index(entry, "]")
	if idx < 0 {
		return Host{}, invalidURIf(
			"an IPv6 address literal must be enclosed in '[' and ']': %s", entry)
	}

	host := entry[1:idx]
	if host == "" {
		return Host{}, invalidURIf("empty host in %q", entry)
	}

	rest := entry[idx+1:]
	if rest == "" {
		return Host{Host: strings.ToLower(host), Port: defaultPort}, nil
	}
	if !strings.HasPrefix(rest, ":") {
		return Host{}, invalidURIf(
			"unexpected text after the ']' of an IPv6 address literal: %s", entry)
	}

	port, err := parsePort(rest[1:])
	if err != nil {
		return Host{}, err
	}
	return Host{Host: strings.ToLower(host), Port: port}, nil
}

func parsePort(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, invalidURIf("port must be an integer between 0 and 65536: %q", s)
		}
	}

	port, err := strconv.Atoi(s)
	if err != nil || port <= 0 || port > 65535 {
		return 0, invalidURIf("port must be an integer between 0 and 65536: %q", s)
	}
	return port, nil
}
