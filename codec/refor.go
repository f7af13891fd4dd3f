package codec

import (
	"encoding/json"

	"github.com/erraggy/oasbind/codec/internal/jsonhelpers"
	"github.com/erraggy/oasbind/oaserrors"
)

// RefKey is the member key that marks a JSON object as a reference.
const RefKey = "$ref"

// RefOr holds either a reference to a definition elsewhere or an inline T.
// Value == nil means the value is a reference and Ref holds the pointer.
type RefOr[T any] struct {
	Ref   string
	Value *T
}

// NewRef returns a reference to ref.
func NewRef[T any](ref string) RefOr[T] {
	return RefOr[T]{Ref: ref}
}

// NewInline returns an inline value.
func NewInline[T any](v *T) RefOr[T] {
	return RefOr[T]{Value: v}
}

// IsRef reports whether r is a reference.
func (r RefOr[T]) IsRef() bool {
	return r.Value == nil
}

// DecodeJSON decodes data as a reference when it is an object with a "$ref"
// member, and as an inline T otherwise. There is no fallback between the two:
// a "$ref" that is not a string fails, and members beside "$ref" are dropped.
func (r *RefOr[T]) DecodeJSON(c *Context, data []byte) error {
	if jsonhelpers.Kind(data) == jsonhelpers.KindObject {
		var members map[string]json.RawMessage
		if err := json.Unmarshal(data, &members); err != nil {
			return syntaxError(err)
		}
		if raw, ok := members[RefKey]; ok {
			if kind := jsonhelpers.Kind(raw); kind != jsonhelpers.KindString {
				return &oaserrors.ShapeError{
					Path:     []string{RefKey},
					Object:   "Reference",
					Expected: jsonhelpers.KindString,
					Actual:   kind,
				}
			}
			var ref string
			if err := json.Unmarshal(raw, &ref); err != nil {
				return syntaxError(err)
			}
			*r = RefOr[T]{Ref: ref}
			return nil
		}
	}

	v := new(T)
	var err error
	if dec, ok := any(v).(Decoder); ok {
		err = dec.DecodeJSON(c, data)
	} else {
		err = decodePlain(data, "", v)
	}
	if err != nil {
		return err
	}
	*r = RefOr[T]{Value: v}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler with default decode settings.
func (r *RefOr[T]) UnmarshalJSON(data []byte) error {
	return r.DecodeJSON(Default(), data)
}

// MarshalJSON encodes a reference as {"$ref": "..."} and an inline value with
// its own encoding.
func (r RefOr[T]) MarshalJSON() ([]byte, error) {
	if r.Value == nil {
		return json.Marshal(map[string]string{RefKey: r.Ref})
	}
	return json.Marshal(r.Value)
}
