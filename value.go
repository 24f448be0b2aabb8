package gojson

import (
	"fmt"

	"github.com/uzleo/gojson/internal/errors"
)

// Type represents the JSON variant a Value holds.
type Type int

const (
	TypeNull Type = iota
	TypeBool
	TypeNumber
	TypeString
	TypeArray
	TypeObject
)

// String returns the lowercase name of the type.
func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBool:
		return "bool"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is one node of a parsed JSON tree: exactly one of null, bool,
// number, string, array or object. The tag never changes after
// construction and there is no mutation API; a Value owns its children
// exclusively, so the tree is destroyed by ordinary garbage collection when
// the root goes out of scope. String content is an owned copy, never a view
// into the source buffer.
type Value struct {
	typ Type
	b   bool
	num float64
	str string
	arr []Value
	obj map[string]Value
}

// Null returns the null value.
func Null() Value {
	return Value{typ: TypeNull}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{typ: TypeBool, b: b}
}

// Number returns a numeric value. All JSON numbers share the float64
// representation.
func Number(f float64) Value {
	return Value{typ: TypeNumber, num: f}
}

// String returns a string value holding its own copy of s.
func String(s string) Value {
	return Value{typ: TypeString, str: s}
}

// Array returns an array value owning elems.
func Array(elems ...Value) Value {
	return Value{typ: TypeArray, arr: elems}
}

// Object returns an object value owning members. Iteration order of members
// is not preserved.
func Object(members map[string]Value) Value {
	if members == nil {
		members = map[string]Value{}
	}
	return Value{typ: TypeObject, obj: members}
}

// Type returns the variant tag of the value.
func (v Value) Type() Type {
	return v.typ
}

func (v Value) IsNull() bool   { return v.typ == TypeNull }
func (v Value) IsBool() bool   { return v.typ == TypeBool }
func (v Value) IsNumber() bool { return v.typ == TypeNumber }
func (v Value) IsString() bool { return v.typ == TypeString }
func (v Value) IsArray() bool  { return v.typ == TypeArray }
func (v Value) IsObject() bool { return v.typ == TypeObject }

func (v Value) typeMismatch(want Type) error {
	return errors.NewValueError(
		fmt.Sprintf("expected %s but value is %s", want, v.typ),
		errors.ErrTypeMismatch,
	)
}

// GetBool returns the boolean payload, or a type-mismatch error.
func (v Value) GetBool() (bool, error) {
	if v.typ != TypeBool {
		return false, v.typeMismatch(TypeBool)
	}
	return v.b, nil
}

// GetNumber returns the numeric payload, or a type-mismatch error.
func (v Value) GetNumber() (float64, error) {
	if v.typ != TypeNumber {
		return 0, v.typeMismatch(TypeNumber)
	}
	return v.num, nil
}

// GetString returns the string payload, or a type-mismatch error.
func (v Value) GetString() (string, error) {
	if v.typ != TypeString {
		return "", v.typeMismatch(TypeString)
	}
	return v.str, nil
}

// GetArray returns the element slice, or a type-mismatch error. Callers
// must not modify the returned slice.
func (v Value) GetArray() ([]Value, error) {
	if v.typ != TypeArray {
		return nil, v.typeMismatch(TypeArray)
	}
	return v.arr, nil
}

// GetObject returns the member map, or a type-mismatch error. Callers must
// not modify the returned map.
func (v Value) GetObject() (map[string]Value, error) {
	if v.typ != TypeObject {
		return nil, v.typeMismatch(TypeObject)
	}
	return v.obj, nil
}

// Contains reports whether an object value has the given key. Calling it on
// any other variant is an error, never a boolean answer.
func (v Value) Contains(key string) (bool, error) {
	if v.typ != TypeObject {
		return false, errors.NewValueError(
			fmt.Sprintf("Contains called on %s, not an object", v.typ),
			errors.ErrTypeMismatch,
		)
	}
	_, ok := v.obj[key]
	return ok, nil
}

// GetByKey looks up a member of an object value. It fails when the receiver
// is not an object or when the key is absent.
func (v Value) GetByKey(key string) (Value, error) {
	if v.typ != TypeObject {
		return Value{}, errors.NewValueError(
			fmt.Sprintf("GetByKey called on %s, not an object", v.typ),
			errors.ErrTypeMismatch,
		)
	}
	member, ok := v.obj[key]
	if !ok {
		return Value{}, errors.NewValueError(
			fmt.Sprintf("object has no key %q", key),
			errors.ErrKeyNotFound,
		)
	}
	return member, nil
}

// Len returns the number of elements of an array or members of an object.
func (v Value) Len() (int, error) {
	switch v.typ {
	case TypeArray:
		return len(v.arr), nil
	case TypeObject:
		return len(v.obj), nil
	default:
		return 0, errors.NewValueError(
			fmt.Sprintf("Len called on %s, not an array or object", v.typ),
			errors.ErrTypeMismatch,
		)
	}
}
