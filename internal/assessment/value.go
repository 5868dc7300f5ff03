// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package assessment

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Kind identifies which member of the Value union is set.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindString
	KindNumber
	KindBool
	KindList
)

// String returns the kind name used in logs and errors.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	default:
		return "absent"
	}
}

// Value is a single questionnaire answer: string, number, boolean or a list
// of strings. The zero Value is absent.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	list []string
}

// StringValue wraps a string answer.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// NumberValue wraps a numeric answer.
func NumberValue(f float64) Value { return Value{kind: KindNumber, num: f} }

// BoolValue wraps a boolean answer.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// ListValue wraps a multi-choice answer. The slice is copied.
func ListValue(items ...string) Value {
	cp := make([]string, len(items))
	copy(cp, items)
	return Value{kind: KindList, list: cp}
}

// Kind reports which member is set.
func (v Value) Kind() Kind { return v.kind }

// IsEmpty reports whether the value carries no usable answer: absent, a
// blank string, or an empty list.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindAbsent:
		return true
	case KindString:
		return strings.TrimSpace(v.str) == ""
	case KindList:
		return len(v.list) == 0
	default:
		return false
	}
}

// AsString returns the string member, or the formatted scalar for numbers
// and booleans. Lists and absent values return ok=false.
func (v Value) AsString() (string, bool) {
	switch v.kind {
	case KindString:
		return v.str, true
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64), true
	case KindBool:
		return strconv.FormatBool(v.b), true
	default:
		return "", false
	}
}

// AsNumber returns the numeric member. Numeric strings such as "12.5" or
// "1,200" are coerced; anything else resolves to absent.
func (v Value) AsNumber() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindString:
		s := strings.ReplaceAll(strings.TrimSpace(v.str), ",", "")
		s = strings.TrimSuffix(s, "%")
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// AsList returns the list member. A non-empty string is treated as a
// single-element list.
func (v Value) AsList() []string {
	switch v.kind {
	case KindList:
		return v.list
	case KindString:
		if strings.TrimSpace(v.str) == "" {
			return nil
		}
		return []string{v.str}
	default:
		return nil
	}
}

// MarshalJSON encodes the set member as its natural JSON type.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	case KindList:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes a JSON scalar or array. Arrays of non-strings are
// stringified element by element; objects are rejected.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = Value{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode string answer: %w", err)
		}
		*v = StringValue(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return fmt.Errorf("decode bool answer: %w", err)
		}
		*v = BoolValue(b)
	case '[':
		var raw []interface{}
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("decode list answer: %w", err)
		}
		items := make([]string, 0, len(raw))
		for _, item := range raw {
			if item == nil {
				continue
			}
			items = append(items, fmt.Sprint(item))
		}
		*v = Value{kind: KindList, list: items}
	case '{':
		return fmt.Errorf("decode answer: objects are not supported")
	default:
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return fmt.Errorf("decode number answer: %w", err)
		}
		*v = NumberValue(f)
	}
	return nil
}
