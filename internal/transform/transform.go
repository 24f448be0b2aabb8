// Package transform rewrites object keys of parsed JSON trees. Parsed
// values are immutable, so every rewrite builds a new tree and leaves the
// input untouched.
package transform

import (
	"fmt"

	"github.com/iancoleman/strcase"
	"github.com/uzleo/gojson"
)

// KeyCase names a supported key naming convention.
type KeyCase string

const (
	KeyCaseNone   KeyCase = "none"
	KeyCaseSnake  KeyCase = "snake"
	KeyCaseCamel  KeyCase = "camel"
	KeyCaseKebab  KeyCase = "kebab"
	KeyCasePascal KeyCase = "pascal"
)

// KeyCaser resolves a key case name to its rewrite function. For
// KeyCaseNone it returns nil, meaning no rewrite is needed.
func KeyCaser(kc KeyCase) (func(string) string, error) {
	switch kc {
	case KeyCaseNone, "":
		return nil, nil
	case KeyCaseSnake:
		return strcase.ToSnake, nil
	case KeyCaseCamel:
		return strcase.ToLowerCamel, nil
	case KeyCaseKebab:
		return strcase.ToKebab, nil
	case KeyCasePascal:
		return strcase.ToCamel, nil
	default:
		return nil, fmt.Errorf("unknown key case %q (expected none, snake, camel, kebab or pascal)", kc)
	}
}

// RewriteKeys returns a copy of v in which every object key, at every
// nesting level, has been passed through fn. Non-object values are returned
// unchanged. When two keys collide after rewriting, one of them wins; which
// one is unspecified.
func RewriteKeys(v gojson.Value, fn func(string) string) gojson.Value {
	switch v.Type() {
	case gojson.TypeArray:
		elems, _ := v.GetArray()
		out := make([]gojson.Value, len(elems))
		for i, elem := range elems {
			out[i] = RewriteKeys(elem, fn)
		}
		return gojson.Array(out...)
	case gojson.TypeObject:
		members, _ := v.GetObject()
		out := make(map[string]gojson.Value, len(members))
		for key, member := range members {
			out[fn(key)] = RewriteKeys(member, fn)
		}
		return gojson.Object(out)
	default:
		return v
	}
}
