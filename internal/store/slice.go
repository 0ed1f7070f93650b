package store

import (
	"context"
	"slices"
	"sync"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
)

// SliceState is a copy of a list slice at one instant.
type SliceState[T any] struct {
	Items      []T                `json:"items"`
	Selected   *T                 `json:"selected,omitempty"`
	Pagination *entity.Pagination `json:"pagination,omitempty"`
	Loading    bool               `json:"loading"`
	Error      string             `json:"error,omitempty"`
}

// Slice holds one entity collection of the application state.
// Reads return copies; every write goes through a method.
type Slice[T any] struct {
	name   string
	mu     sync.RWMutex
	state  SliceState[T]
	notify func(name string, dataChanged bool)
}

func newSlice[T any](name string, notify func(string, bool)) *Slice[T] {
	return &Slice[T]{
		name:   name,
		state:  SliceState[T]{Items: []T{}},
		notify: notify,
	}
}

// Name returns the persistence key of the slice.
func (s *Slice[T]) Name() string {
	return s.name
}

// Snapshot returns a copy of the current state.
func (s *Slice[T]) Snapshot() SliceState[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.state
	out.Items = slices.Clone(s.state.Items)
	if s.state.Selected != nil {
		selected := *s.state.Selected
		out.Selected = &selected
	}
	if s.state.Pagination != nil {
		p := *s.state.Pagination
		out.Pagination = &p
	}

	return out
}

// Items returns a copy of the items.
func (s *Slice[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.state.Items)
}

// Begin marks a request as pending and clears the previous error.
func (s *Slice[T]) Begin() {
	s.mutate(false, func(st *SliceState[T]) {
		st.Loading = true
		st.Error = ""
	})
}

// Fail records err as the slice's human-readable error.
func (s *Slice[T]) Fail(err error) {
	s.mutate(false, func(st *SliceState[T]) {
		st.Loading = false
		st.Error = domainerrors.Message(err)
	})
}

// Succeed ends a request without touching the data.
func (s *Slice[T]) Succeed() {
	s.mutate(false, func(st *SliceState[T]) {
		st.Loading = false
		st.Error = ""
	})
}

// SetItems replaces the items. The last response to arrive wins.
func (s *Slice[T]) SetItems(items []T, pagination *entity.Pagination) {
	if items == nil {
		items = []T{}
	}

	s.mutate(true, func(st *SliceState[T]) {
		st.Items = slices.Clone(items)
		st.Pagination = pagination
		st.Loading = false
		st.Error = ""
	})
}

// Update applies fn to the items and ends the pending request.
func (s *Slice[T]) Update(fn func(items []T) []T) {
	s.mutate(true, func(st *SliceState[T]) {
		st.Items = fn(st.Items)
		if st.Items == nil {
			st.Items = []T{}
		}
		st.Loading = false
		st.Error = ""
	})
}

// Select sets the detail item; nil clears it.
func (s *Slice[T]) Select(item *T) {
	s.mutate(false, func(st *SliceState[T]) {
		if item == nil {
			st.Selected = nil

			return
		}
		selected := *item
		st.Selected = &selected
		st.Loading = false
		st.Error = ""
	})
}

// Reset returns the slice to its initial empty state.
func (s *Slice[T]) Reset() {
	s.mutate(true, func(st *SliceState[T]) {
		*st = SliceState[T]{Items: []T{}}
	})
}

func (s *Slice[T]) mutate(dataChanged bool, fn func(*SliceState[T])) {
	s.mu.Lock()
	fn(&s.state)
	s.mu.Unlock()

	if s.notify != nil {
		s.notify(s.name, dataChanged)
	}
}

func (s *Slice[T]) save(ctx context.Context, storage service.StateStorage) error {
	return storage.Save(ctx, s.name, s.Items())
}

func (s *Slice[T]) load(ctx context.Context, storage service.StateStorage) (bool, error) {
	var items []T
	found, err := storage.Load(ctx, s.name, &items)
	if err != nil || !found {
		return false, err
	}
	if items == nil {
		items = []T{}
	}

	s.mu.Lock()
	s.state.Items = items
	s.mu.Unlock()

	return true, nil
}

// ValueState is a copy of a single-object slice at one instant.
type ValueState[T any] struct {
	Data    *T     `json:"data,omitempty"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// Value holds one single-object entry of the application state (auth, stats, draft).
type Value[T any] struct {
	name   string
	mu     sync.RWMutex
	state  ValueState[T]
	notify func(name string, dataChanged bool)
}

func newValue[T any](name string, notify func(string, bool)) *Value[T] {
	return &Value[T]{name: name, notify: notify}
}

// Name returns the persistence key of the value.
func (v *Value[T]) Name() string {
	return v.name
}

// Snapshot returns a copy of the current state.
func (v *Value[T]) Snapshot() ValueState[T] {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := v.state
	if v.state.Data != nil {
		data := *v.state.Data
		out.Data = &data
	}

	return out
}

// Get returns a copy of the data, or nil.
func (v *Value[T]) Get() *T {
	return v.Snapshot().Data
}

// Begin marks a request as pending and clears the previous error.
func (v *Value[T]) Begin() {
	v.mutate(false, func(st *ValueState[T]) {
		st.Loading = true
		st.Error = ""
	})
}

// Fail records err as the human-readable error.
func (v *Value[T]) Fail(err error) {
	v.mutate(false, func(st *ValueState[T]) {
		st.Loading = false
		st.Error = domainerrors.Message(err)
	})
}

// Set replaces the data; nil clears it.
func (v *Value[T]) Set(data *T) {
	v.mutate(true, func(st *ValueState[T]) {
		if data == nil {
			st.Data = nil
		} else {
			d := *data
			st.Data = &d
		}
		st.Loading = false
		st.Error = ""
	})
}

// Reset clears data, loading flag and error.
func (v *Value[T]) Reset() {
	v.mutate(true, func(st *ValueState[T]) {
		*st = ValueState[T]{}
	})
}

func (v *Value[T]) mutate(dataChanged bool, fn func(*ValueState[T])) {
	v.mu.Lock()
	fn(&v.state)
	v.mu.Unlock()

	if v.notify != nil {
		v.notify(v.name, dataChanged)
	}
}

func (v *Value[T]) save(ctx context.Context, storage service.StateStorage) error {
	data := v.Get()
	if data == nil {
		return storage.Delete(ctx, v.name)
	}

	return storage.Save(ctx, v.name, data)
}

func (v *Value[T]) load(ctx context.Context, storage service.StateStorage) (bool, error) {
	data := new(T)
	found, err := storage.Load(ctx, v.name, data)
	if err != nil || !found {
		return false, err
	}

	v.mu.Lock()
	v.state.Data = data
	v.mu.Unlock()

	return true, nil
}
