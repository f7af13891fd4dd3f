// Package jsonhelpers provides low-level helpers shared by the codec's object
// decoder and encoder: number-preserving decoding, JSON kind sniffing, and the
// extension key convention.
package jsonhelpers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
)

// JSON value kinds as reported by Kind.
const (
	KindObject  = "object"
	KindArray   = "array"
	KindString  = "string"
	KindNumber  = "number"
	KindBoolean = "boolean"
	KindNull    = "null"
	KindEmpty   = "empty"
)

// ExtensionPrefix is the conventional prefix of specification extension keys.
const ExtensionPrefix = "x-"

// Unmarshal decodes data into v, keeping numbers as json.Number when the
// destination is untyped so they re-encode exactly as they were read.
func Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("invalid JSON: trailing data after value")
	}
	return nil
}

// Kind reports the JSON kind of a raw value by its first significant byte.
// It does not validate the value.
func Kind(data []byte) string {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return KindEmpty
	}
	switch data[0] {
	case '{':
		return KindObject
	case '[':
		return KindArray
	case '"':
		return KindString
	case 't', 'f':
		return KindBoolean
	case 'n':
		return KindNull
	default:
		return KindNumber
	}
}

// IsNull reports whether a raw value is the JSON literal null.
func IsNull(data []byte) bool {
	return Kind(data) == KindNull
}

// IsExtensionKey reports whether key follows the "x-" extension convention.
func IsExtensionKey(key string) bool {
	return len(key) >= 2 && key[0] == 'x' && key[1] == '-'
}

// ValueKind normalizes the value description carried by a
// json.UnmarshalTypeError ("number 1.5", "bool", ...) to a JSON kind.
func ValueKind(desc string) string {
	switch {
	case strings.HasPrefix(desc, "number"):
		return KindNumber
	case desc == "bool":
		return KindBoolean
	default:
		return desc
	}
}

// TypeName maps a Go destination type to the JSON kind it accepts, for use in
// error messages.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == reflect.TypeOf(json.Number("")) {
		return KindNumber
	}
	switch t.Kind() {
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Map, reflect.Struct:
		return KindObject
	default:
		return t.String()
	}
}
