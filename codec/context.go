package codec

import (
	"fmt"
	"strings"

	"github.com/erraggy/oasbind/oaserrors"
)

// Decoder is implemented by every graph type that decodes through a Context.
type Decoder interface {
	DecodeJSON(c *Context, data []byte) error
}

// Pointer constrains a type parameter to *T where *T is a Decoder. It lets the
// generic helpers allocate a T and decode into it.
type Pointer[T any] interface {
	*T
	Decoder
}

// ExtensionPolicy selects what an ObjectDecoder does with unknown keys.
type ExtensionPolicy int

const (
	// ExtensionsCaptureAll keeps every unknown key, whatever its name.
	ExtensionsCaptureAll ExtensionPolicy = iota
	// ExtensionsPrefixOnly keeps unknown keys starting with "x-" and silently
	// drops the rest.
	ExtensionsPrefixOnly
	// ExtensionsStrict keeps "x-" keys and rejects any other unknown key with
	// a shape mismatch.
	ExtensionsStrict
)

// String returns the policy's command-line name.
func (p ExtensionPolicy) String() string {
	switch p {
	case ExtensionsCaptureAll:
		return "all"
	case ExtensionsPrefixOnly:
		return "prefix"
	case ExtensionsStrict:
		return "strict"
	default:
		return fmt.Sprintf("ExtensionPolicy(%d)", int(p))
	}
}

// ParseExtensionPolicy parses "all", "prefix" or "strict" (case-insensitive).
func ParseExtensionPolicy(s string) (ExtensionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return ExtensionsCaptureAll, nil
	case "prefix":
		return ExtensionsPrefixOnly, nil
	case "strict":
		return ExtensionsStrict, nil
	default:
		return ExtensionsCaptureAll, &oaserrors.ConfigError{
			Option:  "extensions",
			Value:   s,
			Message: "must be one of: all, prefix, strict",
		}
	}
}

// Context carries decode settings down the graph. A Context is read-only once
// decoding starts and may be shared between goroutines.
type Context struct {
	ExtensionPolicy ExtensionPolicy
}

// Default returns a Context with default settings.
func Default() *Context {
	return &Context{}
}
