package interpreter

import (
	"fmt"
	"strconv"
)

// Kind is the type of a Value.
type Kind uint8

const (
	// KindInvalid is the kind of the zero Value.
	KindInvalid Kind = iota
	// KindString is a string, usually a bit-string or decoded text.
	KindString
	// KindInt is a signed integer, usually a key.
	KindInt
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	default:
		return "invalid"
	}
}

// Value is a typed leaf or intermediate result.
type Value struct {
	kind Kind
	str  string
	num  int64
}

// Text returns a string value.
func Text(s string) Value {
	return Value{kind: KindString, str: s}
}

// Int returns an integer value.
func Int(n int64) Value {
	return Value{kind: KindInt, num: n}
}

// Kind returns the kind of v.
func (v Value) Kind() Kind {
	return v.kind
}

// Str returns the string held by v.
func (v Value) Str() (string, error) {
	if v.kind != KindString {
		return "", fmt.Errorf("%w: want string, got %s", ErrInvalidProgram, v.kind)
	}

	return v.str, nil
}

// Int64 returns the integer held by v.
func (v Value) Int64() (int64, error) {
	if v.kind != KindInt {
		return 0, fmt.Errorf("%w: want int, got %s", ErrInvalidProgram, v.kind)
	}

	return v.num, nil
}

// String renders v in program syntax: strings quoted, integers in decimal.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.str)
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	default:
		return "<invalid>"
	}
}
