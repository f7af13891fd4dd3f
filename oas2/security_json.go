package oas2

import "github.com/erraggy/oasbind/codec"

var securitySchemeFields = codec.NewFields(
	"type", "description", "name", "in", "flow", "authorizationUrl", "tokenUrl", "scopes",
)

// DecodeJSON decodes a Security Scheme object. "type" is required.
func (s *SecurityScheme) DecodeJSON(c *codec.Context, data []byte) error {
	*s = SecurityScheme{}
	d, err := c.Object(data, "SecurityScheme", securitySchemeFields)
	if err != nil {
		return err
	}
	codec.Value(d, "type", codec.Required, &s.Type)
	codec.Value(d, "description", codec.Optional, &s.Description)
	codec.Value(d, "name", codec.Optional, &s.Name)
	codec.Value(d, "in", codec.Optional, &s.In)
	codec.Value(d, "flow", codec.Optional, &s.Flow)
	codec.Value(d, "authorizationUrl", codec.Optional, &s.AuthorizationURL)
	codec.Value(d, "tokenUrl", codec.Optional, &s.TokenURL)
	codec.Value(d, "scopes", codec.Optional, &s.Scopes)
	s.Extensions = d.Extensions()
	return d.Err()
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *SecurityScheme) UnmarshalJSON(data []byte) error {
	return s.DecodeJSON(codec.Default(), data)
}

// MarshalJSON implements json.Marshaler.
func (s *SecurityScheme) MarshalJSON() ([]byte, error) {
	e := codec.NewObjectEncoder("SecurityScheme", securitySchemeFields)
	e.Set("type", s.Type)
	e.String("description", s.Description)
	e.String("name", s.Name)
	e.String("in", s.In)
	e.String("flow", s.Flow)
	e.String("authorizationUrl", s.AuthorizationURL)
	e.String("tokenUrl", s.TokenURL)
	codec.SetMap(e, "scopes", s.Scopes)
	return e.Marshal(s.Extensions)
}
