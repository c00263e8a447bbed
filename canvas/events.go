// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"log/slog"

	"github.com/gogpu/checkers"
)

// Event names dispatched by the helpers below.
const (
	EventClick = "click"
	EventMove  = "mousemove"
)

// AddEventListener registers fn for events named event and returns an ID
// for RemoveEventListener. Listeners run in registration order.
func (c *Canvas) AddEventListener(event string, fn checkers.Listener) checkers.ListenerID {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	id := c.nextID
	c.listeners[event] = append(c.listeners[event], registration{id: id, fn: fn})
	return id
}

// RemoveEventListener unregisters the listener with the given id.
// Unknown ids are ignored.
func (c *Canvas) RemoveEventListener(event string, id checkers.ListenerID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	regs := c.listeners[event]
	for i, r := range regs {
		if r.id == id {
			c.listeners[event] = append(regs[:i:i], regs[i+1:]...)
			break
		}
	}
	if len(c.listeners[event]) == 0 {
		delete(c.listeners, event)
	}
}

// Dispatch delivers ev to the listeners registered for ev.Type and returns
// how many were called. Listeners may add or remove listeners; changes take
// effect from the next Dispatch.
func (c *Canvas) Dispatch(ev checkers.Event) int {
	c.mu.Lock()
	regs := c.listeners[ev.Type]
	snapshot := make([]registration, len(regs))
	copy(snapshot, regs)
	c.mu.Unlock()

	for _, r := range snapshot {
		r.fn(ev)
	}
	checkers.Logger().Debug("canvas: event dispatched",
		slog.String("type", ev.Type),
		slog.Int("listeners", len(snapshot)))
	return len(snapshot)
}

// Click dispatches a click at (x, y).
func (c *Canvas) Click(x, y float64) int {
	return c.Dispatch(checkers.Event{Type: EventClick, X: x, Y: y})
}
