// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package connstring

import (
	"math"
	"strconv"
	"strings"

	"github.com/ikmak/connstring/readpref"
)

// UUIDRepresentation identifies the BSON binary subtype used to encode UUID
// values. The values are the subtype numbers themselves.
type UUIDRepresentation byte

// The supported uuidRepresentation option values.
const (
	UUIDPythonLegacy UUIDRepresentation = 3
	UUIDStandard     UUIDRepresentation = 4
	UUIDJavaLegacy   UUIDRepresentation = 5
	UUIDCSharpLegacy UUIDRepresentation = 6
)

// String returns the connection string name for the representation.
func (r UUIDRepresentation) String() string {
	switch r {
	case UUIDPythonLegacy:
		return "pythonLegacy"
	case UUIDStandard:
		return "standard"
	case UUIDJavaLegacy:
		return "javaLegacy"
	case UUIDCSharpLegacy:
		return "csharpLegacy"
	default:
		return "unknown"
	}
}

// uuidRepresentations is the whitelist for the uuidRepresentation option.
// Lookups are exact, matching the casing the BSON specs use.
var uuidRepresentations = map[string]UUIDRepresentation{
	"pythonLegacy": UUIDPythonLegacy,
	"standard":     UUIDStandard,
	"javaLegacy":   UUIDJavaLegacy,
	"csharpLegacy": UUIDCSharpLegacy,
}

// authMechanisms is the whitelist for the authMechanism option.
var authMechanisms = map[string]struct{}{
	"DEFAULT":       {},
	"GSSAPI":        {},
	"MONGODB-CR":    {},
	"MONGODB-X509":  {},
	"PLAIN":         {},
	"SCRAM-SHA-1":   {},
	"SCRAM-SHA-256": {},
}

// An optionValidator coerces the form-decoded value of a recognized option
// into its typed representation, or reports an OptionValueError.
type optionValidator func(key, value string) (interface{}, error)

// optionValidators maps each recognized lower-cased option name to its
// coercion rule. readpreferencetags is absent: it is the one option built
// incrementally across repeated occurrences and is special-cased by
// SplitOptions.
var optionValidators = map[string]optionValidator{
	// booleans
	"connect":            validateBool,
	"fsync":              validateBool,
	"j":                  validateBool,
	"journal":            validateBool,
	"safe":               validateBool,
	"slaveok":            validateBool,
	"socketkeepalive":    validateBool,
	"ssl":                validateBool,
	"tls":                validateBool,
	"ssl_match_hostname": validateBool,

	// millisecond timeouts, converted to seconds
	"connecttimeoutms":         validateTimeoutMS,
	"sockettimeoutms":          validateTimeoutMS,
	"serverselectiontimeoutms": validateTimeoutMS,
	"heartbeatfrequencyms":     validateTimeoutMS,
	"waitqueuetimeoutms":       validateTimeoutMS,
	"maxidletimems":            validateTimeoutMS,
	"localthresholdms":         validateTimeoutMS,

	// write concern
	"w":          validateW,
	"wtimeout":   validateWTimeout,
	"wtimeoutms": validateWTimeout,

	// pool sizing
	"maxpoolsize":       validateInteger,
	"minpoolsize":       validateInteger,
	"waitqueuemultiple": validateInteger,

	// authentication
	"authmechanism":           validateAuthMechanism,
	"authmechanismproperties": validateAuthMechanismProperties,
	"authsource":              validateString,
	"gssapiservicename":       validateString,

	// read preferences
	"readpreference": validateReadPreference,

	// uuid encoding
	"uuidrepresentation": validateUUIDRepresentation,

	// recognized passthrough strings
	"appname":          validateString,
	"replicaset":       validateString,
	"readconcernlevel": validateString,
	"ssl_keyfile":      validateString,
	"ssl_certfile":     validateString,
	"ssl_ca_certs":     validateString,
	"ssl_cert_reqs":    validateString,
}

// SplitOptions parses the option (query) segment of a connection string
// into a map keyed by lower-cased option name. Both '&' and ';' are
// accepted as separators; every non-empty piece must be a single key=value
// pair.
//
// With validate true, values are coerced through the per-option rule table.
// A recognized option with a bad value or an unknown option is fatal when
// lenient is false; when lenient is true the option is dropped instead and a
// diagnostic is appended to the returned warning list.
//
// With validate false the rule table is skipped and every value is stored as
// its form-decoded string (readPreferenceTags still accumulates, as a
// []string of raw set descriptions). Callers opt out of validation when some
// values name filesystem paths whose contents are checked elsewhere.
func SplitOptions(s string, validate, lenient bool) (map[string]interface{}, []string, error) {
	pieces := strings.FieldsFunc(s, func(r rune) bool { return r == '&' || r == ';' })
	if len(pieces) == 0 {
		return nil, nil, configErrorf("connection string options must be key=value pairs")
	}

	options := make(map[string]interface{})
	var warnings []string

	for _, piece := range pieces {
		if strings.Count(piece, "=") != 1 {
			return nil, nil, configErrorf(
				"connection string option is not a single key=value pair: %q", piece)
		}

		rawKey, _, rawValue := partition(piece, "=")
		key := strings.ToLower(unescapePlus(rawKey))
		value := unescapePlus(rawValue)

		if key == "readpreferencetags" {
			if !validate {
				raw, _ := options[key].([]string)
				options[key] = append(raw, value)
				continue
			}

			set, err := parseTagSet(key, value)
			if err != nil {
				if !lenient {
					return nil, nil, err
				}
				warnings = append(warnings, err.Error())
				continue
			}
			sets, _ := options[key].([]readpref.TagSet)
			options[key] = append(sets, set)
			continue
		}

		if !validate {
			options[key] = value
			continue
		}

		validator, ok := optionValidators[key]
		if !ok {
			if !lenient {
				return nil, nil, configErrorf("unknown option %s", key)
			}
			warnings = append(warnings, "unknown option "+key)
			continue
		}

		typed, err := validator(key, value)
		if err != nil {
			if !lenient {
				return nil, nil, err
			}
			warnings = append(warnings, err.Error())
			continue
		}
		options[key] = typed
	}

	return options, warnings, nil
}

// parseTagSet parses one readPreferenceTags value: comma-separated
// name:value pairs, or the empty string for an empty set.
func parseTagSet(key, value string) (readpref.TagSet, error) {
	if value == "" {
		return readpref.TagSet{}, nil
	}

	pairs := strings.Split(value, ",")
	set := make(readpref.TagSet, 0, len(pairs))
	for _, pair := range pairs {
		name, sep, val := partition(pair, ":")
		if sep == "" || name == "" {
			return nil, optionValueError(key, value, "tag sets are comma-separated name:value pairs")
		}
		set = append(set, readpref.Tag{Name: name, Value: val})
	}
	return set, nil
}

func validateBool(key, value string) (interface{}, error) {
	switch strings.ToLower(value) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return nil, optionValueError(key, value, "must be 'true' or 'false'")
}

// validateTimeoutMS accepts a positive, finite number of milliseconds and
// converts it to seconds.
func validateTimeoutMS(key, value string) (interface{}, error) {
	ms, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(ms) || math.IsInf(ms, 0) || ms <= 0 {
		return nil, optionValueError(key, value, "must be a positive number of milliseconds")
	}
	return ms / 1000.0, nil
}

// validateWTimeout accepts only a non-negative integer count of
// milliseconds, which is kept in milliseconds: the write concern travels to
// the server in the units it arrived in.
func validateWTimeout(key, value string) (interface{}, error) {
	ms, err := strconv.Atoi(value)
	if err != nil || ms < 0 {
		return nil, optionValueError(key, value, "must be a non-negative integer of milliseconds")
	}
	return ms, nil
}

// validateW keeps an integer w as an integer and anything else, including
// "majority", tag-set names, and decimal-looking strings, as the raw
// string.
func validateW(key, value string) (interface{}, error) {
	if n, err := strconv.Atoi(value); err == nil {
		return n, nil
	}
	return value, nil
}

func validateInteger(key, value string) (interface{}, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, optionValueError(key, value, "must be an integer")
	}
	return n, nil
}

func validateAuthMechanism(key, value string) (interface{}, error) {
	if _, ok := authMechanisms[value]; !ok {
		return nil, optionValueError(key, value, "must be a supported authentication mechanism")
	}
	return value, nil
}

// validateAuthMechanismProperties parses comma-separated name:value pairs,
// e.g. SERVICE_NAME:mongodb.
func validateAuthMechanismProperties(key, value string) (interface{}, error) {
	props := make(map[string]string)
	for _, pair := range strings.Split(value, ",") {
		name, sep, val := partition(pair, ":")
		if sep == "" || name == "" {
			return nil, optionValueError(key, value, "must be comma-separated name:value pairs")
		}
		props[name] = val
	}
	return props, nil
}

func validateReadPreference(key, value string) (interface{}, error) {
	mode, err := readpref.ModeFromString(value)
	if err != nil {
		return nil, optionValueError(key, value, "must be a read preference mode name")
	}
	return mode, nil
}

func validateUUIDRepresentation(key, value string) (interface{}, error) {
	rep, ok := uuidRepresentations[value]
	if !ok {
		return nil, optionValueError(key, value, "must be a known UUID representation")
	}
	return rep, nil
}

func validateString(key, value string) (interface{}, error) {
	return value, nil
}
