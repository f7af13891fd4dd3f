package codec

import (
	"encoding/json"

	"github.com/erraggy/oasbind/codec/internal/jsonhelpers"
	"github.com/erraggy/oasbind/internal/maputil"
)

// Extensions holds the members of a JSON object that its type does not
// declare. Values are decoded generically, with numbers kept as json.Number
// so they re-encode exactly.
type Extensions map[string]any

// Get returns the value stored under key.
func (e Extensions) Get(key string) (any, bool) {
	v, ok := e[key]
	return v, ok
}

// Keys returns the extension keys in ascending order.
func (e Extensions) Keys() []string {
	return maputil.SortedKeys(e)
}

// Decode converts the value stored under key into dst. It reports false when
// the key is absent.
func (e Extensions) Decode(key string, dst any) (bool, error) {
	v, ok := e[key]
	if !ok {
		return false, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return true, err
	}
	return true, jsonhelpers.Unmarshal(data, dst)
}

// IsExtensionKey reports whether key follows the "x-" extension convention.
func IsExtensionKey(key string) bool {
	return jsonhelpers.IsExtensionKey(key)
}

// Fields is the set of member keys an object type declares.
type Fields map[string]struct{}

// NewFields builds a Fields set from keys.
func NewFields(keys ...string) Fields {
	f := make(Fields, len(keys))
	for _, k := range keys {
		f[k] = struct{}{}
	}
	return f
}

// Has reports whether key is declared.
func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// JSON kinds reported by Kind.
const (
	KindObject  = jsonhelpers.KindObject
	KindArray   = jsonhelpers.KindArray
	KindString  = jsonhelpers.KindString
	KindNumber  = jsonhelpers.KindNumber
	KindBoolean = jsonhelpers.KindBoolean
	KindNull    = jsonhelpers.KindNull
	KindEmpty   = jsonhelpers.KindEmpty
)

// Kind reports the JSON kind of a raw value from its first significant byte.
// Whitespace-only input reports KindEmpty.
func Kind(data []byte) string {
	return jsonhelpers.Kind(data)
}
