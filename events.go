package backdrop

// HostEvents is where host window input is delivered.
//
// Host calls Dispatch* with plain values and listeners store them
// for the next frame. Everything runs on host's single ui thread.
type HostEvents struct {
	nextID int

	resizeListeners  map[int]func(width, height int)
	pointerListeners map[int]func(x, y float64)
}

func NewHostEvents() *HostEvents {
	return &HostEvents{
		resizeListeners:  make(map[int]func(int, int)),
		pointerListeners: make(map[int]func(float64, float64)),
	}
}

// OnResize registers fn and returns function that removes it.
func (he *HostEvents) OnResize(fn func(width, height int)) (remove func()) {
	he.nextID++
	id := he.nextID
	he.resizeListeners[id] = fn
	return func() {
		delete(he.resizeListeners, id)
	}
}

// OnPointerMove registers fn and returns function that removes it.
func (he *HostEvents) OnPointerMove(fn func(x, y float64)) (remove func()) {
	he.nextID++
	id := he.nextID
	he.pointerListeners[id] = fn
	return func() {
		delete(he.pointerListeners, id)
	}
}

func (he *HostEvents) DispatchResize(width, height int) {
	for _, fn := range he.resizeListeners {
		fn(width, height)
	}
}

func (he *HostEvents) DispatchPointerMove(x, y float64) {
	for _, fn := range he.pointerListeners {
		fn(x, y)
	}
}

func (he *HostEvents) ListenerCount() int {
	return len(he.resizeListeners) + len(he.pointerListeners)
}
