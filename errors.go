// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package connstring

import "fmt"

// InvalidURIError is a structural failure in the URI itself: a wrong or
// missing scheme, malformed credential delimiters, an empty host list, or a
// malformed host address.
type InvalidURIError struct {
	Msg string
}

func (e *InvalidURIError) Error() string { return e.Msg }

func invalidURIf(format string, args ...interface{}) error {
	return &InvalidURIError{Msg: fmt.Sprintf(format, args...)}
}

// ConfigError is a list or option syntax violation: an empty host-list
// entry, an option piece that is not a key=value pair, or an unknown option
// in strict mode.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return e.Msg }

func configErrorf(format string, args ...interface{}) error {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// OptionValueError is a recognized option whose value failed type coercion
// or whitelist validation. In lenient mode the same condition is reported as
// a warning instead and the option is dropped.
type OptionValueError struct {
	// Key is the lower-cased option name.
	Key string
	// Value is the value as it appeared in the URI, after form-decoding.
	Value string
	// Reason describes the rule the value violated.
	Reason string
}

func (e *OptionValueError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %s", e.Value, e.Key, e.Reason)
}

func optionValueError(key, value, reason string) error {
	return &OptionValueError{Key: key, Value: value, Reason: reason}
}
