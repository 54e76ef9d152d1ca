package effect

// Completion is fulfilled when a one-shot effect's timeline finishes. It is
// fired from the clock's tick; other goroutines may wait on Done.
type Completion struct {
	done  chan struct{}
	fired bool
	then  []func()
}

func newCompletion() *Completion {
	return &Completion{done: make(chan struct{})}
}

func completed() *Completion {
	c := newCompletion()
	c.fire()
	return c
}

func (c *Completion) fire() {
	if c.fired {
		return
	}
	c.fired = true
	close(c.done)
	callbacks := c.then
	c.then = nil
	for _, fn := range callbacks {
		fn()
	}
}

// Done is closed once the effect has completed.
func (c *Completion) Done() <-chan struct{} {
	return c.done
}

func (c *Completion) Fired() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// Then runs fn on completion, or right away if already completed. Call it
// from the goroutine that ticks the clock.
func (c *Completion) Then(fn func()) {
	if fn == nil {
		return
	}
	if c.fired {
		fn()
		return
	}
	c.then = append(c.then, fn)
}
