package sequence

import (
	"reflect"
	"strconv"
	"unicode/utf8"
)

// Number is the set of numeric literal types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Literal is the set of types whose values have a canonical textual form.
// Named string types can be used for fixed symbolic tags.
type Literal interface {
	Number | ~string | ~bool
}

// Join returns the textual form of every value of s, separated by divider.
// An empty sequence yields an empty string, and a single value yields its
// textual form with no divider. Floats are written without exponent, and
// non-finite floats as "+Inf", "-Inf" and "NaN".
func Join[T Literal](s Sequence[T], divider string) string {
	head, rest, ok := s.uncons()
	if !ok {
		return ""
	}
	buf := make([]byte, 0, s.Len()*(len(divider)+4))
	buf = appendText(buf, head)
	for {
		head, rest, ok = rest.uncons()
		if !ok {
			break
		}
		buf = append(buf, divider...)
		buf = appendText(buf, head)
	}
	return string(buf)
}

// TextLength returns the number of characters (Unicode code points) in x.
func TextLength[S ~string](x S) int {
	return utf8.RuneCountInString(string(x))
}

// NumberLength returns the number of characters in the canonical decimal form
// of x, counting digits, sign and decimal point. Non-finite floats are
// measured on their textual forms "+Inf", "-Inf" and "NaN".
func NumberLength[N Number](x N) int {
	return len(appendText(nil, x))
}

// appendText appends the canonical textual form of x to dst. Integers are
// formatted in base 10 and floats with the smallest number of digits
// necessary to represent them exactly, without exponent.
func appendText[T Literal](dst []byte, x T) []byte {
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.String:
		return append(dst, v.String()...)
	case reflect.Bool:
		return strconv.AppendBool(dst, v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.AppendInt(dst, v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.AppendUint(dst, v.Uint(), 10)
	case reflect.Float32:
		return strconv.AppendFloat(dst, v.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.AppendFloat(dst, v.Float(), 'f', -1, 64)
	}
	return dst
}
