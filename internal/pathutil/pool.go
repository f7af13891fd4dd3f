package pathutil

import "sync"

const (
	defaultPathCap = 8  // most document locations are shallower than this
	maxPathCap     = 64 // deeper builders are left to the GC
)

var pathBuilderPool = sync.Pool{
	New: func() any {
		return &PathBuilder{
			segments: make([]string, 0, defaultPathCap),
		}
	},
}

// Get retrieves a PathBuilder from the pool, reset and ready to use.
func Get() *PathBuilder {
	p := pathBuilderPool.Get().(*PathBuilder)
	p.Reset()
	return p
}

// Put returns a PathBuilder to the pool unless it has grown oversized.
func Put(p *PathBuilder) {
	if p == nil || cap(p.segments) > maxPathCap {
		return
	}
	pathBuilderPool.Put(p)
}
