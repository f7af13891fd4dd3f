package oas3

import "github.com/erraggy/oasbind/codec"

// SecurityScheme defines a security scheme usable by operations.
type SecurityScheme struct {
	Type             string // Required: "apiKey", "http", "oauth2" or "openIdConnect"
	Description      string
	Name             string // apiKey
	In               string // apiKey: "query", "header" or "cookie"
	Scheme           string // http
	BearerFormat     string // http "bearer"
	Flows            *OAuthFlows
	OpenIDConnectURL string
	Extensions       codec.Extensions
}

// OAuthFlows lists the supported OAuth flows.
type OAuthFlows struct {
	Implicit          *OAuthFlow
	Password          *OAuthFlow
	ClientCredentials *OAuthFlow
	AuthorizationCode *OAuthFlow
	Extensions        codec.Extensions
}

// OAuthFlow configures a single OAuth flow.
type OAuthFlow struct {
	AuthorizationURL string
	TokenURL         string
	RefreshURL       string
	Scopes           map[string]string // Required
	Extensions       codec.Extensions
}
