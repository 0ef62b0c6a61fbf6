// Copyright 2025 Magnus Pierre
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package order provides a keyed ordered list used for both the column order
// and the per-row cell order of a table.
package order

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrNotFound is returned when the item or the neighbor it is positioned against is absent.
	ErrNotFound = errors.New("key not found")

	// ErrAtBoundary is returned when an item has no previous or next sibling to swap with.
	ErrAtBoundary = errors.New("no sibling in that direction")

	// ErrSelfReference is returned when an item is positioned relative to itself.
	ErrSelfReference = errors.New("item positioned relative to itself")

	// ErrDuplicate is returned when appending a key that is already present.
	ErrDuplicate = errors.New("duplicate key")
)

// List is an ordered sequence of values addressed by a unique key.
// A failed operation never mutates the list.
type List[K comparable, V any] struct {
	keyOf func(V) K
	items []V
	index map[K]int
}

// New creates an empty list. keyOf extracts the identity of a value.
func New[K comparable, V any](keyOf func(V) K) *List[K, V] {
	return &List[K, V]{
		keyOf: keyOf,
		index: make(map[K]int),
	}
}

// Len returns the number of items.
func (l *List[K, V]) Len() int {
	return len(l.items)
}

// Index returns the position of key.
func (l *List[K, V]) Index(key K) (int, bool) {
	i, ok := l.index[key]
	return i, ok
}

// Has reports whether key is present.
func (l *List[K, V]) Has(key K) bool {
	_, ok := l.index[key]
	return ok
}

// Get returns the value stored under key.
func (l *List[K, V]) Get(key K) (V, bool) {
	i, ok := l.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return l.items[i], true
}

// At returns the value at position i. It panics if i is out of range.
func (l *List[K, V]) At(i int) V {
	return l.items[i]
}

// Previous returns the sibling before key.
func (l *List[K, V]) Previous(key K) (V, bool) {
	i, ok := l.index[key]
	if !ok || i == 0 {
		var zero V
		return zero, false
	}
	return l.items[i-1], true
}

// Next returns the sibling after key.
func (l *List[K, V]) Next(key K) (V, bool) {
	i, ok := l.index[key]
	if !ok || i == len(l.items)-1 {
		var zero V
		return zero, false
	}
	return l.items[i+1], true
}

// Values returns a copy of the values in order.
func (l *List[K, V]) Values() []V {
	return slices.Clone(l.items)
}

// Keys returns the keys in order.
func (l *List[K, V]) Keys() []K {
	keys := make([]K, len(l.items))
	for i, v := range l.items {
		keys[i] = l.keyOf(v)
	}
	return keys
}

// Append adds v at the end.
func (l *List[K, V]) Append(v V) error {
	k := l.keyOf(v)
	if _, ok := l.index[k]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicate, k)
	}
	l.items = append(l.items, v)
	l.index[k] = len(l.items) - 1
	return nil
}

// Remove deletes key and returns its value.
func (l *List[K, V]) Remove(key K) (V, bool) {
	i, ok := l.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	v := l.items[i]
	l.removeAt(i)
	return v, true
}

// Clear removes every item.
func (l *List[K, V]) Clear() {
	clear(l.items)
	l.items = l.items[:0]
	clear(l.index)
}

// InsertBefore places v directly before the item stored under before.
// If v is already in the list it is moved.
func (l *List[K, V]) InsertBefore(v V, before K) error {
	return l.insertRelative(v, before, 0)
}

// InsertAfter places v directly after the item stored under after.
// If v is already in the list it is moved.
func (l *List[K, V]) InsertAfter(v V, after K) error {
	return l.insertRelative(v, after, 1)
}

// MoveUp swaps key with its previous sibling.
func (l *List[K, V]) MoveUp(key K) error {
	i, ok := l.index[key]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, key)
	}
	if i == 0 {
		return fmt.Errorf("%w: %v is first", ErrAtBoundary, key)
	}
	l.swap(i, i-1)
	return nil
}

// MoveDown swaps key with its next sibling.
func (l *List[K, V]) MoveDown(key K) error {
	i, ok := l.index[key]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, key)
	}
	if i == len(l.items)-1 {
		return fmt.Errorf("%w: %v is last", ErrAtBoundary, key)
	}
	l.swap(i, i+1)
	return nil
}

func (l *List[K, V]) insertRelative(v V, neighbor K, offset int) error {
	k := l.keyOf(v)
	if k == neighbor {
		return fmt.Errorf("%w: %v", ErrSelfReference, k)
	}
	if _, ok := l.index[neighbor]; !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, neighbor)
	}

	if i, ok := l.index[k]; ok {
		l.removeAt(i)
	}

	at := l.index[neighbor] + offset
	l.items = slices.Insert(l.items, at, v)
	l.reindex(at)
	return nil
}

func (l *List[K, V]) removeAt(i int) {
	delete(l.index, l.keyOf(l.items[i]))
	l.items = slices.Delete(l.items, i, i+1)
	l.reindex(i)
}

func (l *List[K, V]) swap(i, j int) {
	l.items[i], l.items[j] = l.items[j], l.items[i]
	l.index[l.keyOf(l.items[i])] = i
	l.index[l.keyOf(l.items[j])] = j
}

func (l *List[K, V]) reindex(from int) {
	for i := from; i < len(l.items); i++ {
		l.index[l.keyOf(l.items[i])] = i
	}
}
