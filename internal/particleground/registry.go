package particleground

import "github.com/olivierh59500/particleground/internal/config"

// Registry maps elements to their active groups. It is owned by the caller
// and not safe for concurrent use.
type Registry struct {
	groups map[Element]*Group
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{groups: make(map[Element]*Group)}
}

// Attach creates, populates and starts a group on el. It returns the existing
// group if el is already attached, and nil if el has no canvas or scheduler.
// A nil *FrameQueue counts as no scheduler.
func (r *Registry) Attach(el Element, cfg config.Config, opts ...Option) *Group {
	if el == nil {
		return nil
	}
	if g, ok := r.groups[el]; ok {
		return g
	}
	canvas, frames := el.Canvas(), el.Frames()
	if canvas == nil || frames == nil {
		return nil
	}
	if q, ok := frames.(*FrameQueue); ok && q == nil {
		return nil
	}

	g := newGroup(r, el, canvas, frames, cfg, opts)
	r.groups[el] = g
	g.initialize()
	return g
}

// Lookup returns the group attached to el.
func (r *Registry) Lookup(el Element) (*Group, bool) {
	g, ok := r.groups[el]
	return g, ok
}

// Destroy destroys the group attached to el, if any.
func (r *Registry) Destroy(el Element) {
	if g, ok := r.groups[el]; ok {
		g.Destroy()
	}
}

// Len returns the number of attached groups.
func (r *Registry) Len() int {
	return len(r.groups)
}

func (r *Registry) remove(el Element, g *Group) {
	if cur, ok := r.groups[el]; ok && cur == g {
		delete(r.groups, el)
	}
}
