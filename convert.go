package requirements

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// StringConverter renders a value for use in failure messages.
type StringConverter func(v any) string

// DefaultStringConverter quotes strings, prints floats in their shortest
// form, uses String and Error methods where available, renders absent values
// as "null" and encodes composite values as JSON.
func DefaultStringConverter(v any) string {
	if isNil(v) {
		return "null"
	}

	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return strconv.Quote(rv.String())
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Pointer:
		if b, err := json.Marshal(v); err == nil {
			return string(b)
		}
	}
	return fmt.Sprint(v)
}

// JSONStringConverter renders every value as JSON, falling back to
// DefaultStringConverter for values JSON cannot represent such as NaN.
func JSONStringConverter(v any) string {
	if isNil(v) {
		return "null"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return DefaultStringConverter(v)
	}
	return string(b)
}

// YAMLStringConverter renders every value as YAML.
func YAMLStringConverter(v any) string {
	if isNil(v) {
		return "null"
	}
	b, err := yaml.Marshal(v)
	if err != nil {
		return DefaultStringConverter(v)
	}
	return strings.TrimSuffix(string(b), "\n")
}

// isNil reports whether v is nil or a nil pointer, map, slice, func, chan or
// interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// isComposite reports whether v renders as a structure rather than a scalar.
func isComposite(v any) bool {
	t := reflect.TypeOf(v)
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return true
	}
	return false
}
