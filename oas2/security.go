package oas2

import "github.com/erraggy/oasbind/codec"

// SecurityScheme defines a security scheme usable by operations.
type SecurityScheme struct {
	Type             string // Required: "basic", "apiKey" or "oauth2"
	Description      string
	Name             string // apiKey
	In               string // apiKey: "query" or "header"
	Flow             string // oauth2: "implicit", "password", "application" or "accessCode"
	AuthorizationURL string // oauth2
	TokenURL         string // oauth2
	Scopes           map[string]string
	Extensions       codec.Extensions
}
