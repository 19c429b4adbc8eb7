// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package readpref

import (
	"bytes"
	"fmt"
)

// Tag is a name/value pair.
type Tag struct {
	Name  string
	Value string
}

// String returns a human-readable description of the tag.
func (tag Tag) String() string {
	return fmt.Sprintf("%s=%s", tag.Name, tag.Value)
}

// TagSet is an ordered list of Tags. A connection string may carry several
// tag sets; servers are matched against them in order.
type TagSet []Tag

// FromMap creates a tag set from a map. The iteration order of m decides
// the order of the set, so use it only where order is irrelevant.
func FromMap(m map[string]string) TagSet {
	set := make(TagSet, 0, len(m))
	for k, v := range m {
		set = append(set, Tag{Name: k, Value: v})
	}
	return set
}

// Map returns the tags as a name-to-value map. Duplicate names keep the
// last value.
func (ts TagSet) Map() map[string]string {
	m := make(map[string]string, len(ts))
	for _, t := range ts {
		m[t.Name] = t.Value
	}
	return m
}

// Contains indicates whether the name/value pair exists in the tagset.
func (ts TagSet) Contains(name, value string) bool {
	for _, t := range ts {
		if t.Name == name && t.Value == value {
			return true
		}
	}
	return false
}

// String returns a human-readable description of the tagset.
func (ts TagSet) String() string {
	var b bytes.Buffer
	for i, tag := range ts {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(tag.String())
	}
	return b.String()
}
