// Package oas2 models OpenAPI 2.0 ("swagger") documents.
//
// Every object type decodes through a codec.Context so the extension policy
// applies throughout the graph, and encodes back with its extensions merged
// into the same object level. Positions that may hold either a "$ref" or an
// inline value use codec.RefOr.
//
// Most callers go through the parser package, which detects the format. Use
// this package directly when the input is known to be OAS 2.0:
//
//	var doc oas2.Document
//	if err := json.Unmarshal(data, &doc); err != nil {
//	    return err
//	}
//	fmt.Println(doc.Swagger, doc.Info.Title)
package oas2
