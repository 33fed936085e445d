// Copyright (c) 2025-2026 Omid Shadfar
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shadfar/vehweb/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionValidate(t *testing.T) {
	assert.NoError(t, model.ConditionNew.Validate(), "new is a valid condition")
	assert.NoError(t, model.ConditionUsed.Validate(), "used is a valid condition")

	err := model.ConditionInvalid.Validate()
	var ce model.ConditionError
	require.ErrorAs(t, err, &ce, "expected a ConditionError")
	assert.EqualValues(t, model.ConditionInvalid, ce, "wrong reported value")

	err = model.Condition(42).Validate()
	require.ErrorAs(t, err, &ce, "expected a ConditionError")
	assert.EqualValues(t, 42, ce, "wrong reported value")
}

func TestConditionString(t *testing.T) {
	assert.Equal(t, "new", model.ConditionNew.String())
	assert.Equal(t, "used", model.ConditionUsed.String())
	assert.Panics(t, func() {
		_ = model.ConditionInvalid.String()
	}, "invalid condition must panic")
}

func TestParseCondition(t *testing.T) {
	c, err := model.ParseCondition("new")
	require.NoError(t, err)
	assert.Equal(t, model.ConditionNew, c)

	c, err = model.ParseCondition("used")
	require.NoError(t, err)
	assert.Equal(t, model.ConditionUsed, c)

	c, err = model.ParseCondition("refurbished")
	assert.ErrorIs(t, err, model.ErrUnknownCondition)
	assert.Equal(t, model.ConditionInvalid, c)
}

func TestConditionJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(model.ConditionUsed)
	require.NoError(t, err, "failed to marshal a valid condition")
	assert.Equal(t, `"used"`, string(b), "conditions must serialize as strings")

	var c model.Condition
	require.NoError(t, json.Unmarshal([]byte(`"new"`), &c))
	assert.Equal(t, model.ConditionNew, c)

	c = model.ConditionUsed
	err = json.Unmarshal([]byte(`"refurbished"`), &c)
	assert.ErrorIs(t, err, model.ErrUnknownCondition)
	assert.Equal(t, model.ConditionUsed, c, "receiver may not change on errors")

	_, err = json.Marshal(model.ConditionInvalid)
	assert.Error(t, err, "invalid conditions may not serialize")
}
