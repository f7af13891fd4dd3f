package pathutil

import (
	"strconv"
	"strings"
)

// PathBuilder provides incremental location tracking during a graph walk.
// Segments are pushed and popped as the walk descends and returns; nothing is
// rendered until String or Pointer is called.
type PathBuilder struct {
	segments []string
	length   int // rendered length of String(), for preallocation
}

// Push adds a key segment to the path.
func (p *PathBuilder) Push(segment string) {
	p.segments = append(p.segments, segment)
	if len(p.segments) > 1 {
		p.length++ // dot separator
	}
	p.length += len(segment)
}

// PushIndex adds an array index segment, rendered as "[i]".
func (p *PathBuilder) PushIndex(i int) {
	seg := "[" + strconv.Itoa(i) + "]"
	p.segments = append(p.segments, seg)
	p.length += len(seg)
}

// Pop removes the last segment. Popping an empty builder is a no-op.
func (p *PathBuilder) Pop() {
	if len(p.segments) == 0 {
		return
	}
	last := p.segments[len(p.segments)-1]
	p.segments = p.segments[:len(p.segments)-1]
	p.length -= len(last)
	if len(p.segments) > 0 && !isIndex(last) {
		p.length--
	}
}

// Reset clears the builder for reuse.
func (p *PathBuilder) Reset() {
	p.segments = p.segments[:0]
	p.length = 0
}

// Depth returns the number of segments currently pushed.
func (p *PathBuilder) Depth() int {
	return len(p.segments)
}

// Segments returns a copy of the current segments, outermost first.
func (p *PathBuilder) Segments() []string {
	out := make([]string, len(p.segments))
	copy(out, p.segments)
	return out
}

// String renders the path in dotted form, e.g. "paths./pets.parameters[0]".
func (p *PathBuilder) String() string {
	if len(p.segments) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(p.length)
	b.WriteString(p.segments[0])
	for _, seg := range p.segments[1:] {
		if !isIndex(seg) {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

// Pointer renders the path as a URI-fragment JSON Pointer (RFC 6901), e.g.
// "#/paths/~1pets/parameters/0". The empty path renders as "#".
func (p *PathBuilder) Pointer() string {
	var b strings.Builder
	b.Grow(p.length + len(p.segments) + 1)
	b.WriteByte('#')
	for _, seg := range p.segments {
		b.WriteByte('/')
		if isIndex(seg) {
			b.WriteString(seg[1 : len(seg)-1])
			continue
		}
		b.WriteString(EscapePointerToken(seg))
	}
	return b.String()
}

// EscapePointerToken escapes a single JSON Pointer reference token.
func EscapePointerToken(s string) string {
	if !strings.ContainsAny(s, "~/") {
		return s
	}
	return pointerEscaper.Replace(s)
}

// UnescapePointerToken reverses EscapePointerToken.
func UnescapePointerToken(s string) string {
	if !strings.Contains(s, "~") {
		return s
	}
	return pointerUnescaper.Replace(s)
}

var (
	pointerEscaper   = strings.NewReplacer("~", "~0", "/", "~1")
	pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")
)

func isIndex(seg string) bool {
	return len(seg) > 1 && seg[0] == '[' && seg[len(seg)-1] == ']'
}
