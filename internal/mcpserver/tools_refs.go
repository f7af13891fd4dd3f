package mcpserver

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/erraggy/oasbind/codec"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type refsInput struct {
	Spec    specInput `json:"spec"               jsonschema:"The OAS document to inspect"`
	As      string    `json:"as,omitempty"       jsonschema:"Force a document format instead of detecting it: auto (default), v2 or v3"`
	Target  string    `json:"target,omitempty"   jsonschema:"Filter by ref target (supports * and ? glob, e.g. *schemas/Pet or *responses/*)"`
	Section string    `json:"section,omitempty"  jsonschema:"Filter by target section, e.g. components/schemas or definitions"`
	Local   bool      `json:"local,omitempty"    jsonschema:"Only same-document references (starting with #)"`
	Detail  bool      `json:"detail,omitempty"   jsonschema:"Return individual reference sites instead of aggregated counts"`
	GroupBy string    `json:"group_by,omitempty" jsonschema:"Group results and return counts instead of individual items. Values: section, locality"`
	Limit   int       `json:"limit,omitempty"    jsonschema:"Maximum number of results to return (default 100)"`
	Offset  int       `json:"offset,omitempty"   jsonschema:"Skip the first N results (for pagination)"`
}

type refSummary struct {
	Ref   string `json:"ref"`
	Count int    `json:"count"`
}

// refsOutput holds results from refs. In summary mode, Total and Matched
// count unique ref targets. In detail and group_by modes, they count
// individual sites (a target referenced 3 times counts as 3).
type refsOutput struct {
	Total     int             `json:"total"`
	Matched   int             `json:"matched"`
	Returned  int             `json:"returned"`
	Summaries []refSummary    `json:"refs,omitempty"`
	Sites     []codec.RefSite `json:"sites,omitempty"`
	Groups    []groupCount    `json:"groups,omitempty"`
}

func handleRefs(_ context.Context, _ *mcp.CallToolRequest, input refsInput) (*mcp.CallToolResult, any, error) {
	if err := validateGlobPattern(input.Target); err != nil {
		return errResult(err), nil, nil
	}
	if err := validateGroupBy(input.GroupBy, input.Detail, []string{"section", "locality"}); err != nil {
		return errResult(err), nil, nil
	}
	extraOpts, err := kindOption(input.As)
	if err != nil {
		return errResult(err), nil, nil
	}

	result, err := input.Spec.resolve(extraOpts...)
	if err != nil {
		return errResult(err), nil, nil
	}

	all := result.Document.Refs()
	filtered := filterRefs(all, input)

	if input.GroupBy != "" {
		keyFn := sectionKey
		if strings.EqualFold(input.GroupBy, "locality") {
			keyFn = localityKey
		}
		paged := paginate(groupAndSort(filtered, keyFn), input.Offset, input.Limit)
		return nil, refsOutput{
			Total:    len(all),
			Matched:  len(filtered),
			Returned: len(paged),
			Groups:   paged,
		}, nil
	}

	if input.Detail {
		paged := paginate(filtered, input.Offset, input.Limit)
		return nil, refsOutput{
			Total:    len(all),
			Matched:  len(filtered),
			Returned: len(paged),
			Sites:    paged,
		}, nil
	}

	summaries := summarizeRefs(filtered)
	paged := paginate(summaries, input.Offset, input.Limit)
	return nil, refsOutput{
		Total:     countUniqueRefs(all),
		Matched:   len(summaries),
		Returned:  len(paged),
		Summaries: paged,
	}, nil
}

// filterRefs applies the target, section and local filters.
func filterRefs(sites []codec.RefSite, input refsInput) []codec.RefSite {
	if input.Target == "" && input.Section == "" && !input.Local {
		return sites
	}
	var filtered []codec.RefSite
	for _, s := range sites {
		if input.Target != "" && !matchRefGlob(s.Ref, input.Target) {
			continue
		}
		if input.Section != "" && !strings.EqualFold(s.Section, strings.Trim(input.Section, "#/")) {
			continue
		}
		if input.Local && !s.Local {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered
}

// summarizeRefs counts sites per target, most referenced first.
func summarizeRefs(sites []codec.RefSite) []refSummary {
	counts := make(map[string]int)
	for _, s := range sites {
		counts[s.Ref]++
	}
	summaries := make([]refSummary, 0, len(counts))
	for ref, count := range counts {
		summaries = append(summaries, refSummary{Ref: ref, Count: count})
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Count != summaries[j].Count {
			return summaries[i].Count > summaries[j].Count
		}
		return summaries[i].Ref < summaries[j].Ref
	})
	return summaries
}

func sectionKey(s codec.RefSite) string {
	if s.Section == "" {
		return "(none)"
	}
	return s.Section
}

func localityKey(s codec.RefSite) string {
	if s.Local {
		return "local"
	}
	return "external"
}

// countUniqueRefs returns the number of distinct ref targets.
func countUniqueRefs(sites []codec.RefSite) int {
	seen := make(map[string]struct{}, len(sites))
	for _, s := range sites {
		seen[s.Ref] = struct{}{}
	}
	return len(seen)
}

// matchRefGlob matches a $ref value against a glob pattern. * and ? may match
// across / separators in refs like "#/components/schemas/Pet"; slashes are
// replaced with a non-separator character before calling filepath.Match.
func matchRefGlob(ref, pattern string) bool {
	if !strings.ContainsAny(pattern, "*?") {
		return strings.EqualFold(ref, pattern)
	}
	normalizedRef := strings.ReplaceAll(strings.ToLower(ref), "/", ":")
	normalizedPattern := strings.ReplaceAll(strings.ToLower(pattern), "/", ":")
	matched, err := filepath.Match(normalizedPattern, normalizedRef)
	return err == nil && matched
}
