// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model holds the record produced by parsing the command line.
//
// The record is a flat set of three values. Optional text values are kept as
// pointers so that "not supplied" stays distinguishable from an empty string,
// and the record converts into a typed cty object where an absent value is a
// null of the attribute's type rather than a zero value.
package model
