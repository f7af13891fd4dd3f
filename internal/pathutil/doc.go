// Package pathutil builds locations inside a decoded document graph and
// classifies the reference strings found there.
//
// The primary type is [PathBuilder], which uses push/pop semantics so a
// recursive walk can track where it is without allocating a string per level.
// The location is materialized only when something needs it, either in dotted
// form for messages or as a JSON Pointer:
//
//	path := pathutil.Get()
//	defer pathutil.Put(path)
//
//	path.Push("paths")
//	path.Push("/pets")
//	path.Push("parameters")
//	path.PushIndex(0)
//
//	path.String()  // "paths./pets.parameters[0]"
//	path.Pointer() // "#/paths/~1pets/parameters/0"
//
// # Reference Classification
//
// [ClassifyRef] splits a reference string into the document section it points
// into and the component name, without resolving it:
//
//	info := pathutil.ClassifyRef("#/components/schemas/Pet")
//	// info.Local == true, info.Section == "components/schemas", info.Name == "Pet"
package pathutil
