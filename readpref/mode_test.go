// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package readpref

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMode_String(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		mode Mode
	}{
		{"primary", PrimaryMode},
		{"primaryPreferred", PrimaryPreferredMode},
		{"secondary", SecondaryMode},
		{"secondaryPreferred", SecondaryPreferredMode},
		{"nearest", NearestMode},
		{"unknown", Mode(42)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.name, tc.mode.String())
		})
	}
}

func TestModeFromString(t *testing.T) {
	t.Parallel()

	for _, mode := range []Mode{
		PrimaryMode,
		PrimaryPreferredMode,
		SecondaryMode,
		SecondaryPreferredMode,
		NearestMode,
	} {
		parsed, err := ModeFromString(mode.String())
		require.NoError(t, err)
		require.Equal(t, mode, parsed)
	}

	for _, name := range []string{"", "llamas", "Primary", "SECONDARY", "secondarypreferred"} {
		_, err := ModeFromString(name)
		require.Error(t, err, "expected %q to be rejected", name)
	}
}
