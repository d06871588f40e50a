// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Attribute names of the parsed record.
const (
	AttrPos    = "pos"
	AttrParam  = "param"
	AttrSwitch = "switch"
)

// FieldOrder is the order attributes are displayed in.
var FieldOrder = []string{AttrPos, AttrParam, AttrSwitch}

// Type is the cty object type of a parsed record.
var Type = cty.Object(map[string]cty.Type{
	AttrPos:    cty.String,
	AttrParam:  cty.String,
	AttrSwitch: cty.Bool,
})

// Arguments is the result of parsing one invocation. A nil Pos or Param means
// the value was not supplied.
type Arguments struct {
	Pos    *string `cty:"pos"`
	Param  *string `cty:"param"`
	Switch bool    `cty:"switch"`
}

// Value converts the record into a cty object of type Type.
func (a *Arguments) Value() (cty.Value, error) {
	if a == nil {
		return cty.NullVal(Type), nil
	}
	val, err := gocty.ToCtyValue(a, Type)
	if err != nil {
		return cty.NilVal, fmt.Errorf("failed to convert arguments to cty: %w", err)
	}
	return val, nil
}

// Texts returns the text attributes exactly as supplied, keyed by attribute
// name. cty normalizes strings, so callers that must echo input verbatim read
// them from here.
func (a *Arguments) Texts() map[string]*string {
	if a == nil {
		return nil
	}
	return map[string]*string{AttrPos: a.Pos, AttrParam: a.Param}
}

// String returns a compact Go-style rendering, used in debug logs.
func (a *Arguments) String() string {
	if a == nil {
		return "<nil>"
	}
	return fmt.Sprintf("{pos:%s param:%s switch:%t}", optional(a.Pos), optional(a.Param), a.Switch)
}

func optional(s *string) string {
	if s == nil {
		return "<none>"
	}
	return fmt.Sprintf("%q", *s)
}
