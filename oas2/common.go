package oas2

import "github.com/erraggy/oasbind/codec"

// Info provides metadata about the API.
type Info struct {
	Title          string // Required
	Description    string
	TermsOfService string
	Contact        *Contact
	License        *License
	Version        string
	Extensions     codec.Extensions
}

// Contact information for the exposed API.
type Contact struct {
	Name       string
	URL        string
	Email      string
	Extensions codec.Extensions
}

// License information for the exposed API.
type License struct {
	Name       string // Required
	URL        string
	Extensions codec.Extensions
}

// ExternalDocs points to additional documentation.
type ExternalDocs struct {
	Description string
	URL         string // Required
	Extensions  codec.Extensions
}

// Tag adds metadata to a tag used by operations.
type Tag struct {
	Name         string // Required
	Description  string
	ExternalDocs *ExternalDocs
	Extensions   codec.Extensions
}

// XML describes the XML representation of a schema property.
type XML struct {
	Name       string
	Namespace  string
	Prefix     string
	Attribute  bool
	Wrapped    bool
	Extensions codec.Extensions
}
