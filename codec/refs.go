package codec

import (
	"github.com/erraggy/oasbind/internal/maputil"
	"github.com/erraggy/oasbind/internal/pathutil"
)

// RefSite is one "$ref" found in a document graph.
type RefSite struct {
	// Path is the dotted location of the reference, e.g. "paths./pets.get.parameters[0]".
	Path string `json:"path"`
	// Pointer is the same location as a JSON Pointer fragment.
	Pointer string `json:"pointer"`
	// Ref is the reference string as written.
	Ref string `json:"ref"`
	// Local reports a same-document reference.
	Local bool `json:"local"`
	// Section is the document section the reference points into, when known
	// (e.g. "definitions", "components/schemas").
	Section string `json:"section,omitempty"`
	// Name is the component name within Section, when known.
	Name string `json:"name,omitempty"`
}

// RefWalker records reference sites while a graph is walked. It does not
// follow references.
type RefWalker struct {
	path  *pathutil.PathBuilder
	sites []RefSite
}

// NewRefWalker returns an empty walker. Call Sites to collect the result and
// release the walker.
func NewRefWalker() *RefWalker {
	return &RefWalker{path: pathutil.Get()}
}

// Push descends into key.
func (w *RefWalker) Push(key string) { w.path.Push(key) }

// PushIndex descends into array element i.
func (w *RefWalker) PushIndex(i int) { w.path.PushIndex(i) }

// Pop returns to the parent location.
func (w *RefWalker) Pop() { w.path.Pop() }

// Add records ref at the current location.
func (w *RefWalker) Add(ref string) {
	info := pathutil.ClassifyRef(ref)
	w.sites = append(w.sites, RefSite{
		Path:    w.path.String(),
		Pointer: w.path.Pointer(),
		Ref:     ref,
		Local:   info.Local,
		Section: info.Section,
		Name:    info.Name,
	})
}

// Sites returns the recorded sites in walk order and releases the walker.
func (w *RefWalker) Sites() []RefSite {
	pathutil.Put(w.path)
	w.path = nil
	return w.sites
}

// VisitRefOr records r under key when it is a reference, and calls inline
// with the value otherwise. inline may be nil for leaf types.
func VisitRefOr[T any](w *RefWalker, key string, r *RefOr[T], inline func(*T)) {
	if r == nil {
		return
	}
	w.Push(key)
	defer w.Pop()
	if r.IsRef() {
		w.Add(r.Ref)
		return
	}
	if inline != nil {
		inline(r.Value)
	}
}

// VisitRefOrMap visits each member of m in key order below key.
func VisitRefOrMap[T any](w *RefWalker, key string, m map[string]RefOr[T], inline func(*T)) {
	if len(m) == 0 {
		return
	}
	w.Push(key)
	defer w.Pop()
	for _, name := range maputil.SortedKeys(m) {
		r := m[name]
		VisitRefOr(w, name, &r, inline)
	}
}

// VisitRefOrSlice visits each element of s below key.
func VisitRefOrSlice[T any](w *RefWalker, key string, s []RefOr[T], inline func(*T)) {
	if len(s) == 0 {
		return
	}
	w.Push(key)
	defer w.Pop()
	for i := range s {
		w.PushIndex(i)
		if s[i].IsRef() {
			w.Add(s[i].Ref)
		} else if inline != nil {
			inline(s[i].Value)
		}
		w.Pop()
	}
}
