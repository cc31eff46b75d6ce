/*
	Copyright 2023 Google Inc.
	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at
		https://www.apache.org/licenses/LICENSE-2.0
	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

// Package arena provides the append-only handle store behind pages and plots.
//
// A page hands out long-lived, mutable *plot.Plot handles, and each plot hands
// out *series.Series handles; callers may hold and mutate any number of them,
// in any order, while more are being allocated.  An Arena records every
// allocation in order and never invalidates earlier handles.  All arenas
// belonging to one page share a single Guard; when the page is sealed, its
// arena is drained, the guard is sealed, and every later mutation through any
// handle panics with an ErrCodeSealed error.
package arena

import (
	"github.com/ilhamster/flotviz/errors"
)

// Guard is the seal flag shared by a page and everything allocated under it.
type Guard struct {
	sealed bool
}

// NewGuard returns a new, open Guard.
func NewGuard() *Guard {
	return &Guard{}
}

// Sealed returns true once the receiver has been sealed.
func (g *Guard) Sealed() bool {
	return g.sealed
}

// Seal seals the receiver.  Sealing is permanent.
func (g *Guard) Seal() {
	g.sealed = true
}

// Check panics with an ErrCodeSealed error naming op if the receiver is
// sealed.
func (g *Guard) Check(op string) {
	if g.sealed {
		panic(errors.New(errors.ErrCodeSealed, "%s called after the page was sealed", op))
	}
}

// Arena is an append-only store of *T handles.
type Arena[T any] struct {
	guard *Guard
	items []*T
}

// New returns a new, empty Arena governed by the provided Guard.
func New[T any](guard *Guard) *Arena[T] {
	return &Arena[T]{guard: guard}
}

// Guard returns the receiver's Guard.
func (a *Arena[T]) Guard() *Guard {
	return a.guard
}

// Alloc records item in the receiver and returns it as a handle.  It panics
// if the receiver's guard is sealed.
func (a *Arena[T]) Alloc(item *T) *T {
	a.guard.Check("Alloc")
	a.items = append(a.items, item)
	return item
}

// Len returns the number of allocated items.
func (a *Arena[T]) Len() int {
	return len(a.items)
}

// All returns the allocated items in allocation order.  The returned slice is
// a copy; the handles themselves are shared.
func (a *Arena[T]) All() []*T {
	return append([]*T(nil), a.items...)
}

// Drain seals the receiver's guard and returns the allocated items in
// allocation order, leaving the receiver empty.  Draining an already-sealed
// arena returns an ErrCodeSealed error.
func (a *Arena[T]) Drain() ([]*T, error) {
	if a.guard.Sealed() {
		return nil, errors.New(errors.ErrCodeSealed, "arena already drained")
	}
	a.guard.Seal()
	items := a.items
	a.items = nil
	return items, nil
}
