package oas3

import "github.com/erraggy/oasbind/codec"

var (
	infoFields           = codec.NewFields("title", "description", "termsOfService", "contact", "license", "version")
	contactFields        = codec.NewFields("name", "url", "email")
	licenseFields        = codec.NewFields("name", "url")
	externalDocsFields   = codec.NewFields("description", "url")
	tagFields            = codec.NewFields("name", "description", "externalDocs")
	serverFields         = codec.NewFields("url", "description", "variables")
	serverVariableFields = codec.NewFields("enum", "default", "description")
	xmlFields            = codec.NewFields("name", "namespace", "prefix", "attribute", "wrapped")
)

// DecodeJSON decodes an Info object.
func (i *Info) DecodeJSON(c *codec.Context, data []byte) error {
	*i = Info{}
	d, err := c.Object(data, "Info", infoFields)
	if err != nil {
		return err
	}
	codec.Value(d, "title", codec.Required, &i.Title)
	codec.Value(d, "description", codec.Optional, &i.Description)
	codec.Value(d, "termsOfService", codec.Optional, &i.TermsOfService)
	codec.Object(d, "contact", codec.Optional, &i.Contact)
	codec.Object(d, "license", codec.Optional, &i.License)
	codec.Value(d, "version", codec.Optional, &i.Version)
	i.Extensions = d.Extensions()
	return d.Err()
}

// UnmarshalJSON implements json.Unmarshaler.
func (i *Info) UnmarshalJSON(data []byte) error {
	return i.DecodeJSON(codec.Default(), data)
}

// MarshalJSON implements json.Marshaler.
func (i *Info) MarshalJSON() ([]byte, error) {
	e := codec.NewObjectEncoder("Info", infoFields)
	e.Set("title", i.Title)
	e.String("description", i.Description)
	e.String("termsOfService", i.TermsOfService)
	codec.SetPtr(e, "contact", i.Contact)
	codec.SetPtr(e, "license", i.License)
	e.String("version", i.Version)
	return e.Marshal(i.Extensions)
}

// DecodeJSON decodes a Contact object.
func (c *Contact) DecodeJSON(ctx *codec.Context, data []byte) error {
	*c = Contact{}
	d, err := ctx.Object(data, "Contact", contactFields)
	if err != nil {
		return err
	}
	codec.Value(d, "name", codec.Optional, &c.Name)
	codec.Value(d, "url", codec.Optional, &c.URL)
	codec.Value(d, "email", codec.Optional, &c.Email)
	c.Extensions = d.Extensions()
	return d.Err()
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Contact) UnmarshalJSON(data []byte) error {
	return c.DecodeJSON(codec.Default(), data)
}

// MarshalJSON implements json.Marshaler.
func (c *Contact) MarshalJSON() ([]byte, error) {
	e := codec.NewObjectEncoder("Contact", contactFields)
	e.String("name", c.Name)
	e.String("url", c.URL)
	e.String("email", c.Email)
	return e.Marshal(c.Extensions)
}

// DecodeJSON decodes a License object.
func (l *License) DecodeJSON(c *codec.Context, data []byte) error {
	*l = License{}
	d, err := c.Object(data, "License", licenseFields)
	if err != nil {
		return err
	}
	codec.Value(d, "name", codec.Required, &l.Name)
	codec.Value(d, "url", codec.Optional, &l.URL)
	l.Extensions = d.Extensions()
	return d.Err()
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *License) UnmarshalJSON(data []byte) error {
	return l.DecodeJSON(codec.Default(), data)
}

// MarshalJSON implements json.Marshaler.
func (l *License) MarshalJSON() ([]byte, error) {
	e := codec.NewObjectEncoder("License", licenseFields)
	e.Set("name", l.Name)
	e.String("url", l.URL)
	return e.Marshal(l.Extensions)
}

// DecodeJSON decodes an External Documentation object.
func (x *ExternalDocs) DecodeJSON(c *codec.Context, data []byte) error {
	*x = ExternalDocs{}
	d, err := c.Object(data, "ExternalDocs", externalDocsFields)
	if err != nil {
		return err
	}
	codec.Value(d, "description", codec.Optional, &x.Description)
	codec.Value(d, "url", codec.Required, &x.URL)
	x.Extensions = d.Extensions()
	return d.Err()
}

// UnmarshalJSON implements json.Unmarshaler.
func (x *ExternalDocs) UnmarshalJSON(data []byte) error {
	return x.DecodeJSON(codec.Default(), data)
}

// MarshalJSON implements json.Marshaler.
func (x *ExternalDocs) MarshalJSON() ([]byte, error) {
	e := codec.NewObjectEncoder("ExternalDocs", externalDocsFields)
	e.String("description", x.Description)
	e.Set("url", x.URL)
	return e.Marshal(x.Extensions)
}

// DecodeJSON decodes a Tag object.
func (t *Tag) DecodeJSON(c *codec.Context, data []byte) error {
	*t = Tag{}
	d, err := c.Object(data, "Tag", tagFields)
	if err != nil {
		return err
	}
	codec.Value(d, "name", codec.Required, &t.Name)
	codec.Value(d, "description", codec.Optional, &t.Description)
	codec.Object(d, "externalDocs", codec.Optional, &t.ExternalDocs)
	t.Extensions = d.Extensions()
	return d.Err()
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Tag) UnmarshalJSON(data []byte) error {
	return t.DecodeJSON(codec.Default(), data)
}

// MarshalJSON implements json.Marshaler.
func (t *Tag) MarshalJSON() ([]byte, error) {
	e := codec.NewObjectEncoder("Tag", tagFields)
	e.Set("name", t.Name)
	e.String("description", t.Description)
	codec.SetPtr(e, "externalDocs", t.ExternalDocs)
	return e.Marshal(t.Extensions)
}

// DecodeJSON decodes a Server object. "url" is required.
func (s *Server) DecodeJSON(c *codec.Context, data []byte) error {
	*s = Server{}
	d, err := c.Object(data, "Server", serverFields)
	if err != nil {
		return err
	}
	codec.Value(d, "url", codec.Required, &s.URL)
	codec.Value(d, "description", codec.Optional, &s.Description)
	codec.Map(d, "variables", codec.Optional, &s.Variables)
	s.Extensions = d.Extensions()
	return d.Err()
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Server) UnmarshalJSON(data []byte) error {
	return s.DecodeJSON(codec.Default(), data)
}

// MarshalJSON implements json.Marshaler.
func (s *Server) MarshalJSON() ([]byte, error) {
	e := codec.NewObjectEncoder("Server", serverFields)
	e.Set("url", s.URL)
	e.String("description", s.Description)
	codec.SetMap(e, "variables", s.Variables)
	return e.Marshal(s.Extensions)
}

// DecodeJSON decodes a Server Variable object. "default" is required.
func (v *ServerVariable) DecodeJSON(c *codec.Context, data []byte) error {
	*v = ServerVariable{}
	d, err := c.Object(data, "ServerVariable", serverVariableFields)
	if err != nil {
		return err
	}
	codec.Value(d, "enum", codec.Optional, &v.Enum)
	codec.Value(d, "default", codec.Required, &v.Default)
	codec.Value(d, "description", codec.Optional, &v.Description)
	v.Extensions = d.Extensions()
	return d.Err()
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *ServerVariable) UnmarshalJSON(data []byte) error {
	return v.DecodeJSON(codec.Default(), data)
}

// MarshalJSON implements json.Marshaler.
func (v *ServerVariable) MarshalJSON() ([]byte, error) {
	e := codec.NewObjectEncoder("ServerVariable", serverVariableFields)
	codec.SetSlice(e, "enum", v.Enum)
	e.Set("default", v.Default)
	e.String("description", v.Description)
	return e.Marshal(v.Extensions)
}

// DecodeJSON decodes an XML object.
func (x *XML) DecodeJSON(c *codec.Context, data []byte) error {
	*x = XML{}
	d, err := c.Object(data, "XML", xmlFields)
	if err != nil {
		return err
	}
	codec.Value(d, "name", codec.Optional, &x.Name)
	codec.Value(d, "namespace", codec.Optional, &x.Namespace)
	codec.Value(d, "prefix", codec.Optional, &x.Prefix)
	codec.Value(d, "attribute", codec.Optional, &x.Attribute)
	codec.Value(d, "wrapped", codec.Optional, &x.Wrapped)
	x.Extensions = d.Extensions()
	return d.Err()
}

// UnmarshalJSON implements json.Unmarshaler.
func (x *XML) UnmarshalJSON(data []byte) error {
	return x.DecodeJSON(codec.Default(), data)
}

// MarshalJSON implements json.Marshaler.
func (x *XML) MarshalJSON() ([]byte, error) {
	e := codec.NewObjectEncoder("XML", xmlFields)
	e.String("name", x.Name)
	e.String("namespace", x.Namespace)
	e.String("prefix", x.Prefix)
	e.Bool("attribute", x.Attribute)
	e.Bool("wrapped", x.Wrapped)
	return e.Marshal(x.Extensions)
}
