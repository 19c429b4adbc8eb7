// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package connstring

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSplitHosts(t *testing.T) {
	testCases := []struct {
		name  string
		hosts string
		want  []Host
	}{
		{
			"single host default port",
			"localhost",
			[]Host{{Host: "localhost", Port: 27017}},
		},
		{
			"multiple hosts default port",
			"localhost,example.com",
			[]Host{{Host: "localhost", Port: 27017}, {Host: "example.com", Port: 27017}},
		},
		{
			"multiple hosts with ports",
			"localhost:27018,example.com:27019",
			[]Host{{Host: "localhost", Port: 27018}, {Host: "example.com", Port: 27019}},
		},
		{
			"unix domain socket",
			"/tmp/mongodb-27017.sock",
			[]Host{{Host: "/tmp/mongodb-27017.sock"}},
		},
		{
			"socket then tcp",
			"/tmp/mongodb-27017.sock,example.com:27017",
			[]Host{{Host: "/tmp/mongodb-27017.sock"}, {Host: "example.com", Port: 27017}},
		},
		{
			"tcp then socket",
			"example.com:27017,/tmp/mongodb-27017.sock",
			[]Host{{Host: "example.com", Port: 27017}, {Host: "/tmp/mongodb-27017.sock"}},
		},
		{
			"percent-encoded socket",
			"%2Ftmp%2Fmongodb-27017.sock",
			[]Host{{Host: "/tmp/mongodb-27017.sock"}},
		},
		{
			"socket path keeps case",
			"%2FMongoDB.sock",
			[]Host{{Host: "/MongoDB.sock"}},
		},
		{
			"sock in the middle of a hostname",
			"shoe.sock.pants.co.uk",
			[]Host{{Host: "shoe.sock.pants.co.uk", Port: 27017}},
		},
		{
			"bracketed ipv6 with port",
			"[::1]:27017",
			[]Host{{Host: "::1", Port: 27017}},
		},
		{
			"bracketed ipv6 default port",
			"[::1]",
			[]Host{{Host: "::1", Port: 27017}},
		},
		{
			"hostname is lower-cased",
			"LOCALHOST:27018",
			[]Host{{Host: "localhost", Port: 27018}},
		},
		{
			"duplicates preserved in order",
			"localhost,localhost:27018,localhost",
			[]Host{
				{Host: "localhost", Port: 27017},
				{Host: "localhost", Port: 27018},
				{Host: "localhost", Port: 27017},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SplitHosts(tc.hosts, 0)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("SplitHosts(%q) mismatch (-want +got):\n%s", tc.hosts, diff)
			}
		})
	}
}

func TestSplitHosts_DefaultPort(t *testing.T) {
	got, err := SplitHosts("%2Ftmp%2Fmongodb-27020.sock,[::1]:27017,[2001:0db8:85a3:0000:0000:8a2e:0370:7334],192.168.0.212:27019,localhost", 27018)
	require.NoError(t, err)

	want := []Host{
		{Host: "/tmp/mongodb-27020.sock"},
		{Host: "::1", Port: 27017},
		{Host: "2001:0db8:85a3:0000:0000:8a2e:0370:7334", Port: 27018},
		{Host: "192.168.0.212", Port: 27019},
		{Host: "localhost", Port: 27018},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("host list mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitHosts_EmptyEntries(t *testing.T) {
	for _, hosts := range []string{
		"localhost:27017,",
		",localhost:27017",
		"localhost:27017,,localhost:27018",
		"",
	} {
		t.Run(hosts, func(t *testing.T) {
			_, err := SplitHosts(hosts, 0)
			require.Error(t, err)
			require.IsType(t, &ConfigError{}, err)
		})
	}
}

func TestSplitHosts_MalformedAddresses(t *testing.T) {
	for _, hosts := range []string{
		"::1",
		"[::1:27017",
		"::1]:27017",
		"localhost:",
		"localhost:x",
		"localhost:0",
		"localhost:70000",
		"localhost:-1",
		":27017",
		"[]",
		"[::1]x",
	} {
		t.Run(hosts, func(t *testing.T) {
			_, err := SplitHosts(hosts, 0)
			require.Error(t, err)
			require.IsType(t, &InvalidURIError{}, err)
		})
	}
}

// Round trip: rendering a decoded host list and decoding it again must
// reproduce the same sequence, preserving order and duplicates.
func TestSplitHosts_RoundTrip(t *testing.T) {
	for _, hosts := range []string{
		"localhost,localhost:27018,localhost",
		"[::1]:27017,example.com,[2001:db8::1]:27019",
		"/tmp/mongodb-27017.sock,example.com:27017",
	} {
		t.Run(hosts, func(t *testing.T) {
			first, err := SplitHosts(hosts, 0)
			require.NoError(t, err)

			parts := make([]string, len(first))
			for i, h := range first {
				parts[i] = h.String()
			}

			second, err := SplitHosts(strings.Join(parts, ","), 0)
			require.NoError(t, err)
			require.Equal(t, first, second)
		})
	}
}

func TestHost_Network(t *testing.T) {
	require.Equal(t, "tcp", Host{Host: "localhost", Port: 27017}.Network())
	require.Equal(t, "unix", Host{Host: "/tmp/mongodb-27017.sock"}.Network())
}
