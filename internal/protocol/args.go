package protocol

import "strconv"

// Kind tags the two value shapes a coerced argument can take.
type Kind int

const (
	KindString Kind = iota
	KindInt
)

// Value is the typed form of a single tool-call argument. It is a small
// tagged union: after coercion every argument is either a string or a 32-bit
// integer, nothing else.
type Value struct {
	kind Kind
	str  string
	num  int32
}

// StringValue wraps s.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// IntValue wraps n.
func IntValue(n int32) Value {
	return Value{kind: KindInt, num: n}
}

// Kind reports the variant held.
func (v Value) Kind() Kind {
	return v.kind
}

// String returns the string form: the held string, or the decimal rendering
// of the held integer.
func (v Value) String() string {
	if v.kind == KindInt {
		return strconv.FormatInt(int64(v.num), 10)
	}
	return v.str
}

// Int returns the held integer, or zero for a string value.
func (v Value) Int() int32 {
	return v.num
}

// Arguments maps parameter names to typed values. One mapping is built per
// tools/call request and discarded after the backing operation consumes it;
// nothing is shared across calls.
type Arguments map[string]Value
