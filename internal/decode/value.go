package decode

import (
	"slices"
	"strconv"
	"strings"
)

// Kind is the type of a decoded value.
type Kind int

// Value kinds.
const (
	KindNull Kind = iota
	KindInt
	KindString
	KindList
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindBool:
		return "bool"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a decoded value of a dump label. The zero value is null and
// represents an absent value.
type Value struct {
	kind Kind
	i    int
	s    string
	list []string
	b    bool
}

// Null returns an absent value.
func Null() Value { return Value{} }

// Int returns an integer value.
func Int(i int) Value { return Value{kind: KindInt, i: i} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// List returns a list of strings value. A nil list is stored as empty list.
func List(items []string) Value {
	if items == nil {
		items = []string{}
	}
	return Value{kind: KindList, list: items}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull returns whether the value is absent.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsInt returns the integer of an integer value.
func (v Value) AsInt() (int, bool) { return v.i, v.kind == KindInt }

// AsString returns the string of a string value.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsBool returns the boolean of a boolean value.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsList returns a copy of the items of a list value.
func (v Value) AsList() ([]string, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return slices.Clone(v.list), true
}

// Truthy returns false for null, zero, empty and false values.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindInt:
		return v.i != 0
	case KindString:
		return v.s != ""
	case KindList:
		return len(v.list) > 0
	case KindBool:
		return v.b
	default:
		return false
	}
}

// Equal returns whether both values are of the same kind and content.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.i == other.i
	case KindString:
		return v.s == other.s
	case KindList:
		return slices.Equal(v.list, other.list)
	case KindBool:
		return v.b == other.b
	default:
		return true
	}
}

// String returns the display form of the value, lists are joined by commas.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.Itoa(v.i)
	case KindString:
		return v.s
	case KindList:
		return strings.Join(v.list, ", ")
	case KindBool:
		if v.b {
			return "True"
		}
		return "False"
	default:
		return "None"
	}
}

// Interface returns the value as nil, int, string, []string or bool.
func (v Value) Interface() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindString:
		return v.s
	case KindList:
		return slices.Clone(v.list)
	case KindBool:
		return v.b
	default:
		return nil
	}
}
