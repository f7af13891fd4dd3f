package oas3

import "github.com/erraggy/oasbind/codec"

var (
	securitySchemeFields = codec.NewFields(
		"type", "description", "name", "in", "scheme", "bearerFormat", "flows", "openIdConnectUrl",
	)
	oauthFlowsFields = codec.NewFields("implicit", "password", "clientCredentials", "authorizationCode")
	oauthFlowFields  = codec.NewFields("authorizationUrl", "tokenUrl", "refreshUrl", "scopes")
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
	codec.Value(d, "scheme", codec.Optional, &s.Scheme)
	codec.Value(d, "bearerFormat", codec.Optional, &s.BearerFormat)
	codec.Object(d, "flows", codec.Optional, &s.Flows)
	codec.Value(d, "openIdConnectUrl", codec.Optional, &s.OpenIDConnectURL)
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
	e.String("scheme", s.Scheme)
	e.String("bearerFormat", s.BearerFormat)
	codec.SetPtr(e, "flows", s.Flows)
	e.String("openIdConnectUrl", s.OpenIDConnectURL)
	return e.Marshal(s.Extensions)
}

// DecodeJSON decodes an OAuth Flows object.
func (f *OAuthFlows) DecodeJSON(c *codec.Context, data []byte) error {
	*f = OAuthFlows{}
	d, err := c.Object(data, "OAuthFlows", oauthFlowsFields)
	if err != nil {
		return err
	}
	codec.Object(d, "implicit", codec.Optional, &f.Implicit)
	codec.Object(d, "password", codec.Optional, &f.Password)
	codec.Object(d, "clientCredentials", codec.Optional, &f.ClientCredentials)
	codec.Object(d, "authorizationCode", codec.Optional, &f.AuthorizationCode)
	f.Extensions = d.Extensions()
	return d.Err()
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *OAuthFlows) UnmarshalJSON(data []byte) error {
	return f.DecodeJSON(codec.Default(), data)
}

// MarshalJSON implements json.Marshaler.
func (f *OAuthFlows) MarshalJSON() ([]byte, error) {
	e := codec.NewObjectEncoder("OAuthFlows", oauthFlowsFields)
	codec.SetPtr(e, "implicit", f.Implicit)
	codec.SetPtr(e, "password", f.Password)
	codec.SetPtr(e, "clientCredentials", f.ClientCredentials)
	codec.SetPtr(e, "authorizationCode", f.AuthorizationCode)
	return e.Marshal(f.Extensions)
}

// DecodeJSON decodes an OAuth Flow object. "scopes" is required.
func (f *OAuthFlow) DecodeJSON(c *codec.Context, data []byte) error {
	*f = OAuthFlow{}
	d, err := c.Object(data, "OAuthFlow", oauthFlowFields)
	if err != nil {
		return err
	}
	codec.Value(d, "authorizationUrl", codec.Optional, &f.AuthorizationURL)
	codec.Value(d, "tokenUrl", codec.Optional, &f.TokenURL)
	codec.Value(d, "refreshUrl", codec.Optional, &f.RefreshURL)
	codec.Value(d, "scopes", codec.Required, &f.Scopes)
	f.Extensions = d.Extensions()
	return d.Err()
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *OAuthFlow) UnmarshalJSON(data []byte) error {
	return f.DecodeJSON(codec.Default(), data)
}

// MarshalJSON implements json.Marshaler. Scopes is always emitted.
func (f *OAuthFlow) MarshalJSON() ([]byte, error) {
	e := codec.NewObjectEncoder("OAuthFlow", oauthFlowFields)
	e.String("authorizationUrl", f.AuthorizationURL)
	e.String("tokenUrl", f.TokenURL)
	e.String("refreshUrl", f.RefreshURL)
	scopes := f.Scopes
	if scopes == nil {
		scopes = map[string]string{}
	}
	e.Set("scopes", scopes)
	return e.Marshal(f.Extensions)
}
