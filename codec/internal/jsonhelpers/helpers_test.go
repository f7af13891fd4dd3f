package jsonhelpers

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalKeepsNumbers(t *testing.T) {
	var v any
	require.NoError(t, Unmarshal([]byte(`{"big": 12345678901234567890, "f": 1.50}`), &v))

	m := v.(map[string]any)
	assert.Equal(t, json.Number("12345678901234567890"), m["big"])
	assert.Equal(t, json.Number("1.50"), m["f"])
}

func TestUnmarshalTypedDestination(t *testing.T) {
	var f float64
	require.NoError(t, Unmarshal([]byte(`2.5`), &f))
	assert.InDelta(t, 2.5, f, 0)

	var s string
	err := Unmarshal([]byte(`12`), &s)
	var ute *json.UnmarshalTypeError
	require.ErrorAs(t, err, &ute)
	assert.Equal(t, "number", ute.Value)
}

func TestUnmarshalRejectsTrailingData(t *testing.T) {
	var v any
	assert.Error(t, Unmarshal([]byte(`1 2`), &v))
}

func TestKind(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, KindObject},
		{`  [1]`, KindArray},
		{`"s"`, KindString},
		{`true`, KindBoolean},
		{`false`, KindBoolean},
		{`null`, KindNull},
		{`-1.5`, KindNumber},
		{`   `, KindEmpty},
		{``, KindEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Kind([]byte(tt.in)))
		})
	}
	assert.True(t, IsNull([]byte(" null")))
}

func TestIsExtensionKey(t *testing.T) {
	assert.True(t, IsExtensionKey("x-internal-id"))
	assert.True(t, IsExtensionKey("x-"))
	assert.False(t, IsExtensionKey("x"))
	assert.False(t, IsExtensionKey("X-upper"))
	assert.False(t, IsExtensionKey("vendor"))
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, KindString, TypeName(reflect.TypeOf("")))
	assert.Equal(t, KindNumber, TypeName(reflect.TypeOf(float64(0))))
	assert.Equal(t, KindNumber, TypeName(reflect.TypeOf(new(int))))
	assert.Equal(t, KindBoolean, TypeName(reflect.TypeOf(true)))
	assert.Equal(t, KindArray, TypeName(reflect.TypeOf([]string{})))
	assert.Equal(t, KindObject, TypeName(reflect.TypeOf(map[string]string{})))
	assert.Equal(t, KindNumber, TypeName(reflect.TypeOf(json.Number(""))))
	assert.Equal(t, "value", TypeName(nil))
}

func TestValueKind(t *testing.T) {
	assert.Equal(t, KindNumber, ValueKind("number"))
	assert.Equal(t, KindNumber, ValueKind("number 1.5"))
	assert.Equal(t, KindBoolean, ValueKind("bool"))
	assert.Equal(t, KindString, ValueKind("string"))
	assert.Equal(t, KindObject, ValueKind("object"))
}
