package parser

import (
	"github.com/erraggy/oasbind/oas2"
	"github.com/erraggy/oasbind/oas3"
)

// DocumentStats contains statistical information about a document
type DocumentStats struct {
	PathCount      int `json:"paths"`      // Number of paths defined
	OperationCount int `json:"operations"` // Total number of operations across all paths
	SchemaCount    int `json:"schemas"`    // Number of definitions / component schemas
	RefCount       int `json:"refs"`       // Number of "$ref" sites in the whole graph
}

// GetDocumentStats returns statistics for a decoded document
func GetDocumentStats(doc *Document) DocumentStats {
	stats := DocumentStats{}

	if v2, ok := doc.OAS2(); ok {
		stats.PathCount = len(v2.Paths)
		stats.OperationCount = countOAS2Operations(v2.Paths)
		stats.SchemaCount = len(v2.Definitions)
	}
	if v3, ok := doc.OAS3(); ok {
		stats.PathCount = len(v3.Paths)
		stats.OperationCount = countOAS3Operations(v3.Paths)
		if v3.Components != nil {
			stats.SchemaCount = len(v3.Components.Schemas)
		}
	}
	stats.RefCount = len(doc.Refs())

	return stats
}

// countOAS2Operations counts the total number of operations in OAS 2.0 paths
func countOAS2Operations(paths map[string]*oas2.PathItem) int {
	count := 0
	for _, pathItem := range paths {
		if pathItem != nil {
			count += len(pathItem.Operations())
		}
	}
	return count
}

// countOAS3Operations counts the total number of operations in OAS 3.x paths
func countOAS3Operations(paths map[string]*oas3.PathItem) int {
	count := 0
	for _, pathItem := range paths {
		if pathItem != nil {
			count += len(pathItem.Operations())
		}
	}
	return count
}
