package livelist

import (
	"fmt"
	"reflect"
)

type sourceEntry[T any] struct {
	item T
	id   ID
}

// Source is a mutable list. Every mutation is delivered to each subscriber as
// exactly one event before the mutating call returns.
type Source[T any] struct {
	entries   []sourceEntry[T]
	observers observerSet[T]
}

func NewSource[T any](items ...T) *Source[T] {
	s := &Source[T]{}
	s.AddRange(items...)
	return s
}

func (s *Source[T]) Subscribe(observer Observer[T]) Subscription {
	if observer == nil {
		panic("livelist: nil observer")
	}
	previous := ID{}
	for _, e := range s.entries {
		observer(Event[T]{Type: Add, Item: e.item, ID: e.id, Previous: previous})
		previous = e.id
	}

	r := s.observers.add(observer)

	return NewSubscription(
		func(id ID) { s.refresh(r, id) },
		func() { s.observers.remove(r) },
	)
}

func (s *Source[T]) Len() int {
	return len(s.entries)
}

func (s *Source[T]) Get(index int) T {
	s.checkIndex(index, len(s.entries))
	return s.entries[index].item
}

func (s *Source[T]) Items() []T {
	items := make([]T, len(s.entries))
	for i, e := range s.entries {
		items[i] = e.item
	}
	return items
}

func (s *Source[T]) IDs() []ID {
	ids := make([]ID, len(s.entries))
	for i, e := range s.entries {
		ids[i] = e.id
	}
	return ids
}

// IndexOfID returns the index of the element with the given ID, or -1.
func (s *Source[T]) IndexOfID(id ID) int {
	for i, e := range s.entries {
		if e.id == id {
			return i
		}
	}
	return -1
}

func (s *Source[T]) Add(item T) ID {
	return s.Insert(len(s.entries), item)
}

func (s *Source[T]) AddRange(items ...T) {
	s.InsertRange(len(s.entries), items...)
}

func (s *Source[T]) InsertRange(index int, items ...T) {
	s.checkIndex(index, len(s.entries)+1)
	for i, item := range items {
		s.Insert(index+i, item)
	}
}

func (s *Source[T]) Insert(index int, item T) ID {
	s.checkIndex(index, len(s.entries)+1)
	if isNil(item) {
		panic("livelist: nil items are not allowed")
	}

	e := sourceEntry[T]{item: item, id: NewID()}
	previous := ID{}
	if index > 0 {
		previous = s.entries[index-1].id
	}

	s.entries = append(s.entries, sourceEntry[T]{})
	copy(s.entries[index+1:], s.entries[index:])
	s.entries[index] = e

	s.observers.emit(Event[T]{Type: Add, Item: item, ID: e.id, Previous: previous})
	return e.id
}

func (s *Source[T]) RemoveAt(index int) T {
	s.checkIndex(index, len(s.entries))

	e := s.entries[index]
	previous := ID{}
	if index > 0 {
		previous = s.entries[index-1].id
	}
	s.entries = append(s.entries[:index], s.entries[index+1:]...)

	s.observers.emit(Event[T]{Type: Remove, Item: e.item, ID: e.id, Previous: previous})
	return e.item
}

func (s *Source[T]) RemoveLast() T {
	return s.RemoveAt(len(s.entries) - 1)
}

// Set replaces the element at index. The replacement gets a new ID.
func (s *Source[T]) Set(index int, item T) ID {
	s.checkIndex(index, len(s.entries))
	if isNil(item) {
		panic("livelist: nil items are not allowed")
	}
	s.RemoveAt(index)
	return s.Insert(index, item)
}

// Clear removes every element, tail first.
func (s *Source[T]) Clear() {
	for len(s.entries) > 0 {
		s.RemoveLast()
	}
}

func (s *Source[T]) refresh(r *registration[T], id ID) {
	index := s.IndexOfID(id)
	if index < 0 {
		panic(fmt.Sprintf("livelist: refresh of unknown id %s", id))
	}
	e := s.entries[index]
	previous := ID{}
	if index > 0 {
		previous = s.entries[index-1].id
	}
	r.observer(Event[T]{Type: Remove, Item: e.item, ID: e.id, Previous: previous})
	if r.active {
		r.observer(Event[T]{Type: Add, Item: e.item, ID: e.id, Previous: previous})
	}
}

func (s *Source[T]) checkIndex(index, limit int) {
	if index < 0 || index >= limit {
		panic(fmt.Sprintf("livelist: index %d out of range [0, %d)", index, limit))
	}
}

func isNil(item any) bool {
	if item == nil {
		return true
	}
	v := reflect.ValueOf(item)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
