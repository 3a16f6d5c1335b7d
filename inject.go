package spotlight

// syntheticPointerEvent is a queued pointer sample in canvas coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a pointer press at (x, y). Queued events are consumed
// one per frame by PollInput, in place of the real mouse.
func (m *Mask) InjectPress(x, y float64) {
	m.injectQueue = append(m.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a move with the pointer held down.
func (m *Mask) InjectMove(x, y float64) {
	m.injectQueue = append(m.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at (x, y).
func (m *Mask) InjectRelease(x, y float64) {
	m.injectQueue = append(m.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectTap queues a press and a release at the same point. Consumes two
// frames.
func (m *Mask) InjectTap(x, y float64) {
	m.InjectPress(x, y)
	m.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), evenly spaced moves, and a
// release at (toX, toY), spread over frames frames (at least 2).
func (m *Mask) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	m.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		m.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	m.InjectRelease(toX, toY)
}

// Pending reports how many injected events have not been consumed yet.
func (m *Mask) Pending() int {
	return len(m.injectQueue)
}

// processInjectedInput feeds the oldest injected event to pointer 0.
// Returns true if an event was consumed.
func (m *Mask) processInjectedInput() bool {
	if len(m.injectQueue) == 0 {
		return false
	}
	evt := m.injectQueue[0]
	copy(m.injectQueue, m.injectQueue[1:])
	m.injectQueue = m.injectQueue[:len(m.injectQueue)-1]
	m.HandlePointer(0, evt.x, evt.y, evt.pressed)
	return true
}
