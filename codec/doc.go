// Package codec implements the generic JSON machinery shared by the oas2 and
// oas3 object graphs: vendor-extension capture and re-emission, and the
// reference-or-inline union.
//
// # Extension Capture
//
// Each object type declares its field keys once as a [Fields] set. Decoding
// goes through an [ObjectDecoder], which splits the JSON object into raw
// members, lets the type consume its declared keys with the typed helpers
// ([Value], [Object], [Map], [ValueMap], [Slice], [ValueSlice]), and hands
// back every other key as [Extensions]:
//
//	func (i *Info) DecodeJSON(c *codec.Context, data []byte) error {
//	    d, err := c.Object(data, "Info", infoFields)
//	    if err != nil {
//	        return err
//	    }
//	    codec.Value(d, "title", codec.Required, &i.Title)
//	    codec.Value(d, "version", codec.Optional, &i.Version)
//	    i.Extensions = d.Extensions()
//	    return d.Err()
//	}
//
// Encoding mirrors this with an [ObjectEncoder]. Extensions are merged into
// the same object level; an extension key equal to a declared field key is
// reported as an *oaserrors.CollisionError instead of shadowing the field.
//
// Which unknown keys end up in the bag is controlled by the Context's
// [ExtensionPolicy]. The default captures every unknown key.
//
// # References
//
// [RefOr] holds either a "$ref" pointer or an inline value. Any JSON object
// carrying a "$ref" member decodes as a reference and its sibling members
// are discarded, so an inline value whose own data includes "$ref" cannot be
// represented.
package codec
