package particleground

// InputHub fans host input events out to subscribed groups. Hosts embed it
// to implement InputSource.
type InputHub struct {
	nextID  int
	pointer map[int]func(x, y float64)
	orient  map[int]func(beta, gamma float64)
}

// OnPointerMove subscribes fn to pointer positions.
func (h *InputHub) OnPointerMove(fn func(x, y float64)) func() {
	if h.pointer == nil {
		h.pointer = make(map[int]func(x, y float64))
	}
	h.nextID++
	id := h.nextID
	h.pointer[id] = fn
	return func() { delete(h.pointer, id) }
}

// OnOrientation subscribes fn to device angles.
func (h *InputHub) OnOrientation(fn func(beta, gamma float64)) func() {
	if h.orient == nil {
		h.orient = make(map[int]func(beta, gamma float64))
	}
	h.nextID++
	id := h.nextID
	h.orient[id] = fn
	return func() { delete(h.orient, id) }
}

// PointerMoved delivers a pointer position to every subscriber.
func (h *InputHub) PointerMoved(x, y float64) {
	for _, fn := range h.pointer {
		fn(x, y)
	}
}

// Oriented delivers device angles to every subscriber.
func (h *InputHub) Oriented(beta, gamma float64) {
	for _, fn := range h.orient {
		fn(beta, gamma)
	}
}

// Subscribers returns the number of pointer and orientation subscribers.
func (h *InputHub) Subscribers() (pointer, orient int) {
	return len(h.pointer), len(h.orient)
}
