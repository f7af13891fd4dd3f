package pathutil

import "strings"

// Document sections a local reference may point into.
const (
	SectionDefinitions         = "definitions"
	SectionParameters          = "parameters"
	SectionResponses           = "responses"
	SectionSecurityDefinitions = "securityDefinitions"

	SectionSchemas         = "components/schemas"
	SectionParameters3     = "components/parameters"
	SectionResponses3      = "components/responses"
	SectionExamples        = "components/examples"
	SectionRequestBodies   = "components/requestBodies"
	SectionHeaders         = "components/headers"
	SectionSecuritySchemes = "components/securitySchemes"
	SectionLinks           = "components/links"
	SectionCallbacks       = "components/callbacks"
	SectionPaths           = "paths"
)

var knownSections = []string{
	SectionDefinitions,
	SectionParameters,
	SectionResponses,
	SectionSecurityDefinitions,
	SectionSchemas,
	SectionParameters3,
	SectionResponses3,
	SectionExamples,
	SectionRequestBodies,
	SectionHeaders,
	SectionSecuritySchemes,
	SectionLinks,
	SectionCallbacks,
	SectionPaths,
}

// RefInfo describes where a reference string points, without following it.
type RefInfo struct {
	// Local is true for same-document references ("#/...").
	Local bool
	// Document is the external document part, empty for local references.
	Document string
	// Section is the known document section the pointer lands in, or empty.
	Section string
	// Name is the unescaped component name within Section, or empty.
	Name string
}

// ClassifyRef splits ref into its document, section and component name.
// Unknown pointer shapes yield a RefInfo with only Local and Document set.
func ClassifyRef(ref string) RefInfo {
	var info RefInfo
	doc, fragment, hasFragment := strings.Cut(ref, "#")
	info.Document = doc
	info.Local = doc == "" && hasFragment
	if !hasFragment || !strings.HasPrefix(fragment, "/") {
		return info
	}
	pointer := fragment[1:]
	for _, section := range knownSections {
		prefix := section + "/"
		if !strings.HasPrefix(pointer, prefix) {
			continue
		}
		name := pointer[len(prefix):]
		if name == "" || strings.Contains(name, "/") {
			continue
		}
		info.Section = section
		info.Name = UnescapePointerToken(name)
		return info
	}
	return info
}
