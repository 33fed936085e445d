// Copyright (c) 2025-2026 Omid Shadfar
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
)

// Condition specifies the vehicle condition enum and accepts the
// new and used states. Although this enum is numeric, it is
// (de)serialized as a string for readability in the adapter layer.
type Condition int

// Valid values for the Condition enum.
const (
	ConditionInvalid Condition = iota // zero value is invalid

	ConditionNew  // a vehicle which had no previous owner
	ConditionUsed // a vehicle with at least one previous owner
)

// ErrUnknownCondition indicates that a given string may not be parsed
// as a valid/known vehicle condition. The invalid string itself is not
// encoded in the error because the caller of ParseCondition already
// knows about it and is responsible to wrap this error with the
// relevant context information.
var ErrUnknownCondition = errors.New("unknown vehicle condition")

// ConditionError indicates an invalid condition value. This error
// contains the invalid condition as an integer, so functions which
// find out about an invalid value during their execution (and not by
// their arguments) can report it.
type ConditionError int

// Error implements the error interface, returning a string
// representation of the ConditionError.
func (e ConditionError) Error() string {
	return fmt.Sprintf("invalid vehicle condition: %d", int(e))
}

// Validate returns nil if Condition value is valid. For invalid
// values, an instance of the ConditionError will be returned.
func (c Condition) Validate() error {
	switch c {
	case ConditionNew, ConditionUsed:
		return nil
	default:
		return ConditionError(c)
	}
}

// String converts the Condition enum to a string, helping to
// serialize it for transmission to web clients (for improved
// readability). Invalid condition causes a panic.
func (c Condition) String() string {
	switch c {
	case ConditionNew:
		return "new"
	case ConditionUsed:
		return "used"
	default:
		panic(ConditionError(c))
	}
}

// ParseCondition parses the given string and returns a Condition,
// helping to deserialize it when reading a REST API request or a
// database row. For invalid strings, ConditionInvalid and
// ErrUnknownCondition will be returned.
func ParseCondition(c string) (Condition, error) {
	switch c {
	case "new":
		return ConditionNew, nil
	case "used":
		return ConditionUsed, nil
	default:
		return ConditionInvalid, ErrUnknownCondition
	}
}

// MarshalText implements encoding.TextMarshaler, serializing the
// Condition with its String method, so a Condition field may be
// encoded to JSON as a readable string.
func (c Condition) MarshalText() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, deserializing a
// byte slice with the ParseCondition function. The receiver is only
// updated in absence of errors.
func (c *Condition) UnmarshalText(data []byte) error {
	cc, err := ParseCondition(string(data))
	if err != nil {
		return err
	}
	*c = cc
	return nil
}
