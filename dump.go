package gojson

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump serializes the tree to compact JSON text. Object members and array
// elements are joined by ", ", numbers use the shortest float formatting,
// and string content is fully escaped on the way out, so Dump output always
// re-parses to an equal tree. Object member order follows Go map iteration
// and is not guaranteed to match input order.
func (v Value) Dump() string {
	var sb strings.Builder
	v.dump(&sb)
	return sb.String()
}

func (v Value) dump(sb *strings.Builder) {
	switch v.typ {
	case TypeNull:
		sb.WriteString("null")
	case TypeBool:
		if v.b {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case TypeNumber:
		sb.WriteString(strconv.FormatFloat(v.num, 'g', -1, 64))
	case TypeString:
		writeEscaped(sb, v.str)
	case TypeArray:
		sb.WriteByte('[')
		for i, elem := range v.arr {
			if i > 0 {
				sb.WriteString(", ")
			}
			elem.dump(sb)
		}
		sb.WriteByte(']')
	case TypeObject:
		sb.WriteByte('{')
		first := true
		for key, member := range v.obj {
			if !first {
				sb.WriteString(", ")
			}
			first = false
			writeEscaped(sb, key)
			sb.WriteString(": ")
			member.dump(sb)
		}
		sb.WriteByte('}')
	}
}

// DumpIndent serializes the tree as pretty-printed JSON, one member or
// element per line, nested levels indented by indent.
func (v Value) DumpIndent(indent string) string {
	var sb strings.Builder
	v.dumpIndent(&sb, indent, 0)
	return sb.String()
}

func (v Value) dumpIndent(sb *strings.Builder, indent string, level int) {
	switch v.typ {
	case TypeArray:
		if len(v.arr) == 0 {
			sb.WriteString("[]")
			return
		}
		sb.WriteString("[\n")
		for i, elem := range v.arr {
			if i > 0 {
				sb.WriteString(",\n")
			}
			writeIndent(sb, indent, level+1)
			elem.dumpIndent(sb, indent, level+1)
		}
		sb.WriteByte('\n')
		writeIndent(sb, indent, level)
		sb.WriteByte(']')
	case TypeObject:
		if len(v.obj) == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteString("{\n")
		first := true
		for key, member := range v.obj {
			if !first {
				sb.WriteString(",\n")
			}
			first = false
			writeIndent(sb, indent, level+1)
			writeEscaped(sb, key)
			sb.WriteString(": ")
			member.dumpIndent(sb, indent, level+1)
		}
		sb.WriteByte('\n')
		writeIndent(sb, indent, level)
		sb.WriteByte('}')
	default:
		v.dump(sb)
	}
}

func writeIndent(sb *strings.Builder, indent string, level int) {
	for i := 0; i < level; i++ {
		sb.WriteString(indent)
	}
}

// writeEscaped emits s double-quoted with quotes, backslashes and control
// characters escaped. The escaping is symmetric with the parser's decoding.
func writeEscaped(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch ch {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if ch < 0x20 {
				fmt.Fprintf(sb, `\u%04x`, ch)
			} else {
				sb.WriteByte(ch)
			}
		}
	}
	sb.WriteByte('"')
}
