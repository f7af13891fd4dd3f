package parser

// OASVersion enumerates the published OpenAPI Specification versions this
// module knows about. See https://github.com/OAI/OpenAPI-Specification/releases
type OASVersion int

const (
	// Unknown represents an unknown or invalid OAS version
	Unknown OASVersion = iota
	// OASVersion20 OpenAPI Specification Version 2.0 (Swagger)
	OASVersion20
	// OASVersion300 OpenAPI Specification Version 3.0.0
	OASVersion300
	// OASVersion301 OpenAPI Specification Version 3.0.1
	OASVersion301
	// OASVersion302 OpenAPI Specification Version 3.0.2
	OASVersion302
	// OASVersion303 OpenAPI Specification Version 3.0.3
	OASVersion303
	// OASVersion304 OpenAPI Specification Version 3.0.4
	OASVersion304
	// OASVersion310 OpenAPI Specification Version 3.1.0
	OASVersion310
	// OASVersion311 OpenAPI Specification Version 3.1.1
	OASVersion311
	// OASVersion312 OpenAPI Specification Version 3.1.2
	OASVersion312
)

var versionNames = [...]string{
	Unknown:       "unknown",
	OASVersion20:  "2.0",
	OASVersion300: "3.0.0",
	OASVersion301: "3.0.1",
	OASVersion302: "3.0.2",
	OASVersion303: "3.0.3",
	OASVersion304: "3.0.4",
	OASVersion310: "3.1.0",
	OASVersion311: "3.1.1",
	OASVersion312: "3.1.2",
}

// seriesVersions lists the known releases of each "major.minor" series by patch.
var seriesVersions = map[string][]OASVersion{
	"2.0": {OASVersion20},
	"3.0": {OASVersion300, OASVersion301, OASVersion302, OASVersion303, OASVersion304},
	"3.1": {OASVersion310, OASVersion311, OASVersion312},
}

func (v OASVersion) String() string {
	if v > Unknown && int(v) < len(versionNames) {
		return versionNames[v]
	}
	return "unknown"
}

// IsValid returns true if this is a known version
func (v OASVersion) IsValid() bool {
	return v > Unknown && int(v) < len(versionNames)
}

// ParseVersion maps s to a known OASVersion and returns false if it cannot.
//
// A version in a known "major.minor" series maps to the highest known release
// that does not exceed it, so "3.0.7" maps to 3.0.4 and "3.1.0-rc1" to 3.1.0.
// "2.0" is the only 2.x version.
func ParseVersion(s string) (OASVersion, bool) {
	v, err := parseVersion(s)
	if err != nil {
		return Unknown, false
	}
	known, ok := seriesVersions[v.series()]
	if !ok {
		return Unknown, false
	}
	if v.patch >= len(known) {
		return known[len(known)-1], true
	}
	return known[v.patch], true
}
