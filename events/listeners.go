// Copyright (c) 2025, The Vispy Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Subscription identifies a registered listener so that it can be removed
// later. The zero value is not a valid subscription.
type Subscription struct {
	Typ Types
	ID  int
}

type listener struct {
	id int
	fn func(e *Event)
}

// Listeners registers lists of event listener functions to receive different
// event types. Listeners are called in reverse order of registration, so the
// most recent registration gets the first chance to handle an event.
type Listeners struct {
	items  map[Types][]listener
	nextID int
}

func (ls *Listeners) init() {
	if ls.items == nil {
		ls.items = map[Types][]listener{}
	}
}

// Add adds the given listener for the given event type and returns a
// [Subscription] that removes it when passed to [Listeners.Remove].
func (ls *Listeners) Add(typ Types, fn func(e *Event)) Subscription {
	ls.init()
	ls.nextID++
	ls.items[typ] = append(ls.items[typ], listener{id: ls.nextID, fn: fn})
	return Subscription{Typ: typ, ID: ls.nextID}
}

// Remove removes the listener identified by the given subscription.
// Removing an unknown or already removed subscription is a no-op.
func (ls *Listeners) Remove(sub Subscription) {
	lfs := ls.items[sub.Typ]
	for i, lf := range lfs {
		if lf.id == sub.ID {
			ls.items[sub.Typ] = append(lfs[:i:i], lfs[i+1:]...)
			return
		}
	}
}

// Call calls all listeners registered for the event's type, in reverse order
// of registration, stopping as soon as the event is marked handled.
func (ls *Listeners) Call(ev *Event) {
	lfs := ls.items[ev.Type()]
	for i := len(lfs) - 1; i >= 0; i-- {
		lfs[i].fn(ev)
		if ev.IsHandled() {
			return
		}
	}
}
