package codec

import (
	"encoding/json"
	"errors"
	"maps"
	"strconv"

	"github.com/erraggy/oasbind/codec/internal/jsonhelpers"
	"github.com/erraggy/oasbind/internal/maputil"
	"github.com/erraggy/oasbind/oaserrors"
)

// Presence states whether a declared key must appear in the object.
type Presence bool

const (
	Optional Presence = false
	Required Presence = true
)

// ObjectDecoder splits one JSON object into its members so a type can consume
// the keys it declares. The first failure sticks; later helper calls become
// no-ops and Err reports it.
type ObjectDecoder struct {
	ctx     *Context
	object  string
	fields  Fields
	members map[string]json.RawMessage
	err     error
}

// Object starts decoding data as the named object type. It fails with a
// ShapeError when data is not a JSON object.
func (c *Context) Object(data []byte, object string, fields Fields) (*ObjectDecoder, error) {
	if kind := jsonhelpers.Kind(data); kind != jsonhelpers.KindObject {
		return nil, &oaserrors.ShapeError{
			Object:   object,
			Expected: jsonhelpers.KindObject,
			Actual:   kind,
		}
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, syntaxError(err)
	}
	return &ObjectDecoder{ctx: c, object: object, fields: fields, members: members}, nil
}

// Context returns the decode context.
func (d *ObjectDecoder) Context() *Context {
	return d.ctx
}

// Has reports whether key is present, even if its value is null.
func (d *ObjectDecoder) Has(key string) bool {
	_, ok := d.members[key]
	return ok
}

// Raw returns the undecoded value of key.
func (d *ObjectDecoder) Raw(key string) (json.RawMessage, bool) {
	raw, ok := d.members[key]
	return raw, ok
}

// Keys returns every member key in ascending order.
func (d *ObjectDecoder) Keys() []string {
	return maputil.SortedKeys(d.members)
}

// Declare adds keys to the declared set for this decode only. It serves
// objects whose member names are data, such as callback expressions.
func (d *ObjectDecoder) Declare(keys ...string) {
	fields := make(Fields, len(d.fields)+len(keys))
	maps.Copy(fields, d.fields)
	for _, k := range keys {
		fields[k] = struct{}{}
	}
	d.fields = fields
}

// Err returns the first failure recorded while decoding.
func (d *ObjectDecoder) Err() error {
	return d.err
}

// Extensions returns the members whose keys are not declared, filtered by the
// Context's ExtensionPolicy. It returns nil when nothing remains.
func (d *ObjectDecoder) Extensions() Extensions {
	if d.err != nil {
		return nil
	}
	var ext Extensions
	for _, key := range maputil.SortedKeys(d.members) {
		if d.fields.Has(key) {
			continue
		}
		if !jsonhelpers.IsExtensionKey(key) {
			switch d.ctx.ExtensionPolicy {
			case ExtensionsPrefixOnly:
				continue
			case ExtensionsStrict:
				d.err = &oaserrors.ShapeError{
					Path:    []string{key},
					Object:  d.object,
					Message: "unknown field (extension keys must start with \"x-\")",
				}
				return nil
			}
		}
		var v any
		if err := jsonhelpers.Unmarshal(d.members[key], &v); err != nil {
			d.err = syntaxError(err)
			return nil
		}
		if ext == nil {
			ext = make(Extensions)
		}
		ext[key] = v
	}
	return ext
}

// take returns the raw value of key. Absent and null values report false; for
// required keys that is also recorded as a failure.
func (d *ObjectDecoder) take(key string, p Presence) (json.RawMessage, bool) {
	if d.err != nil {
		return nil, false
	}
	raw, ok := d.members[key]
	if ok && !jsonhelpers.IsNull(raw) {
		return raw, true
	}
	if p == Required {
		msg := "required field missing"
		if ok {
			msg = "required field is null"
		}
		d.err = &oaserrors.ShapeError{Path: []string{key}, Object: d.object, Message: msg}
	}
	return nil, false
}

func (d *ObjectDecoder) fail(key string, err error) {
	if d.err == nil {
		d.err = oaserrors.WithPrefix(err, key)
	}
}

// Value decodes key into a plain Go value (string, bool, number, []string,
// map[string]string, any, ...).
func Value[T any](d *ObjectDecoder, key string, p Presence, dst *T) {
	raw, ok := d.take(key, p)
	if !ok {
		return
	}
	if err := decodePlain(raw, d.object, dst); err != nil {
		d.fail(key, err)
	}
}

// Object decodes key into a newly allocated T and stores it in *dst.
func Object[T any, PT Pointer[T]](d *ObjectDecoder, key string, p Presence, dst **T) {
	raw, ok := d.take(key, p)
	if !ok {
		return
	}
	v := new(T)
	if err := PT(v).DecodeJSON(d.ctx, raw); err != nil {
		d.fail(key, err)
		return
	}
	*dst = v
}

// Map decodes key as an object whose members are each a T.
func Map[V any, PV Pointer[V]](d *ObjectDecoder, key string, p Presence, dst *map[string]*V) {
	raw, ok := d.take(key, p)
	if !ok {
		return
	}
	m, err := DecodeMap[V, PV](d.ctx, raw)
	if err != nil {
		d.fail(key, err)
		return
	}
	*dst = m
}

// ValueMap is Map for value-typed members such as RefOr.
func ValueMap[V any, PV Pointer[V]](d *ObjectDecoder, key string, p Presence, dst *map[string]V) {
	raw, ok := d.take(key, p)
	if !ok {
		return
	}
	m, err := DecodeValueMap[V, PV](d.ctx, raw)
	if err != nil {
		d.fail(key, err)
		return
	}
	*dst = m
}

// Slice decodes key as an array whose elements are each a T.
func Slice[V any, PV Pointer[V]](d *ObjectDecoder, key string, p Presence, dst *[]*V) {
	raw, ok := d.take(key, p)
	if !ok {
		return
	}
	elems, err := splitArray(raw, d.object)
	if err != nil {
		d.fail(key, err)
		return
	}
	out := make([]*V, len(elems))
	for i, elem := range elems {
		v := new(V)
		if err := decodeElement[V, PV](d.ctx, elem, v); err != nil {
			d.fail(key, oaserrors.WithPrefix(err, indexSegment(i)))
			return
		}
		out[i] = v
	}
	*dst = out
}

// ValueSlice is Slice for value-typed elements such as RefOr.
func ValueSlice[V any, PV Pointer[V]](d *ObjectDecoder, key string, p Presence, dst *[]V) {
	raw, ok := d.take(key, p)
	if !ok {
		return
	}
	elems, err := splitArray(raw, d.object)
	if err != nil {
		d.fail(key, err)
		return
	}
	out := make([]V, len(elems))
	for i, elem := range elems {
		if err := decodeElement[V, PV](d.ctx, elem, &out[i]); err != nil {
			d.fail(key, oaserrors.WithPrefix(err, indexSegment(i)))
			return
		}
	}
	*dst = out
}

// DecodeMap decodes a JSON object whose members are each a T. Member errors
// are prefixed with the member key; a null member is a shape mismatch.
func DecodeMap[V any, PV Pointer[V]](c *Context, data []byte) (map[string]*V, error) {
	members, err := splitObject(data)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*V, len(members))
	for _, key := range maputil.SortedKeys(members) {
		v := new(V)
		if err := decodeElement[V, PV](c, members[key], v); err != nil {
			return nil, oaserrors.WithPrefix(err, key)
		}
		out[key] = v
	}
	return out, nil
}

// DecodeValueMap is DecodeMap for value-typed members.
func DecodeValueMap[V any, PV Pointer[V]](c *Context, data []byte) (map[string]V, error) {
	members, err := splitObject(data)
	if err != nil {
		return nil, err
	}
	out := make(map[string]V, len(members))
	for _, key := range maputil.SortedKeys(members) {
		var v V
		if err := decodeElement[V, PV](c, members[key], &v); err != nil {
			return nil, oaserrors.WithPrefix(err, key)
		}
		out[key] = v
	}
	return out, nil
}

func decodeElement[V any, PV Pointer[V]](c *Context, raw json.RawMessage, v *V) error {
	if jsonhelpers.IsNull(raw) {
		return &oaserrors.ShapeError{Expected: jsonhelpers.KindObject, Actual: jsonhelpers.KindNull}
	}
	return PV(v).DecodeJSON(c, raw)
}

func splitObject(data []byte) (map[string]json.RawMessage, error) {
	if kind := jsonhelpers.Kind(data); kind != jsonhelpers.KindObject {
		return nil, &oaserrors.ShapeError{Expected: jsonhelpers.KindObject, Actual: kind}
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, syntaxError(err)
	}
	return members, nil
}

func splitArray(data []byte, object string) ([]json.RawMessage, error) {
	if kind := jsonhelpers.Kind(data); kind != jsonhelpers.KindArray {
		return nil, &oaserrors.ShapeError{Object: object, Expected: jsonhelpers.KindArray, Actual: kind}
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, syntaxError(err)
	}
	return elems, nil
}

// decodePlain decodes into a value without its own DecodeJSON, translating
// type errors into shape mismatches.
func decodePlain(data []byte, object string, dst any) error {
	err := jsonhelpers.Unmarshal(data, dst)
	if err == nil {
		return nil
	}
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		return &oaserrors.ShapeError{
			Object:   object,
			Expected: jsonhelpers.TypeName(ute.Type),
			Actual:   jsonhelpers.ValueKind(ute.Value),
		}
	}
	return syntaxError(err)
}

// CheckSyntax reports whether data holds exactly one well-formed JSON value.
// The failure is a *oaserrors.ParseError carrying the byte offset.
func CheckSyntax(data []byte) error {
	if json.Valid(data) {
		return nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return syntaxError(err)
	}
	return &oaserrors.ParseError{Message: "invalid JSON"}
}

func syntaxError(err error) error {
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return &oaserrors.ParseError{Offset: se.Offset, Message: se.Error()}
	}
	return &oaserrors.ParseError{Cause: err}
}

func indexSegment(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}

// ObjectEncoder collects an object's declared members for encoding and merges
// its Extensions in last.
type ObjectEncoder struct {
	object  string
	fields  Fields
	members map[string]any
}

// NewObjectEncoder starts encoding the named object type.
func NewObjectEncoder(object string, fields Fields) *ObjectEncoder {
	return &ObjectEncoder{object: object, fields: fields, members: make(map[string]any, len(fields))}
}

// Set emits key unconditionally.
func (e *ObjectEncoder) Set(key string, v any) {
	e.members[key] = v
}

// String emits key when v is not empty.
func (e *ObjectEncoder) String(key, v string) {
	if v != "" {
		e.members[key] = v
	}
}

// Bool emits key when v is true.
func (e *ObjectEncoder) Bool(key string, v bool) {
	if v {
		e.members[key] = v
	}
}

// Any emits key when v is not nil.
func (e *ObjectEncoder) Any(key string, v any) {
	if v != nil {
		e.members[key] = v
	}
}

// SetPtr emits key when v is not nil.
func SetPtr[T any](e *ObjectEncoder, key string, v *T) {
	if v != nil {
		e.members[key] = v
	}
}

// SetSlice emits key when v is not nil. An empty, non-nil slice is emitted as [].
func SetSlice[T any](e *ObjectEncoder, key string, v []T) {
	if v != nil {
		e.members[key] = v
	}
}

// SetMap emits key when v is not nil. An empty, non-nil map is emitted as {}.
func SetMap[V any](e *ObjectEncoder, key string, v map[string]V) {
	if v != nil {
		e.members[key] = v
	}
}

// Marshal merges ext into the collected members and encodes the object. An
// extension key that names a declared field fails with a CollisionError,
// whether or not that field is set.
func (e *ObjectEncoder) Marshal(ext Extensions) ([]byte, error) {
	for _, key := range ext.Keys() {
		if e.fields.Has(key) {
			return nil, &oaserrors.CollisionError{Object: e.object, Key: key}
		}
		e.members[key] = ext[key]
	}
	return json.Marshal(e.members)
}
