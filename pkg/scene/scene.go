package scene

import (
	"image"
	"slices"
)

// Item is a scene entry: the caller's value plus the id the scene gave it.
type Item[T Spatial] struct {
	ID   int
	Data T
}

// Scene is an ordered set of items. Later items are drawn, and hit, on top.
type Scene[T Spatial] struct {
	items  map[int]*Item[T]
	order  []int
	nextID int
}

func New[T Spatial]() *Scene[T] {
	return &Scene[T]{items: make(map[int]*Item[T])}
}

// Add appends data and returns its id. Ids are never reused.
func (s *Scene[T]) Add(data T) int {
	id := s.nextID
	s.nextID++
	s.items[id] = &Item[T]{ID: id, Data: data}
	s.order = append(s.order, id)
	return id
}

// Get returns the item with id, or nil.
func (s *Scene[T]) Get(id int) *Item[T] {
	return s.items[id]
}

// Len is the number of items.
func (s *Scene[T]) Len() int { return len(s.order) }

// Items returns every item in insertion order.
func (s *Scene[T]) Items() []*Item[T] {
	out := make([]*Item[T], 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

// Remove deletes the item with id; unknown ids are ignored.
func (s *Scene[T]) Remove(id int) {
	if _, ok := s.items[id]; !ok {
		return
	}
	delete(s.items, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
}

// Move repositions item id through setPos.
func (s *Scene[T]) Move(id int, pos image.Point, setPos func(*T, image.Point)) {
	if it, ok := s.items[id]; ok {
		setPos(&it.Data, pos)
	}
}

// HitTest returns the topmost item covering pt, or nil.
func (s *Scene[T]) HitTest(pt image.Point) *Item[T] {
	for i := len(s.order) - 1; i >= 0; i-- {
		it := s.items[s.order[i]]
		if pt.In(BoundsOf(it.Data)) {
			return it
		}
	}
	return nil
}

// InRect returns, in insertion order, the items whose bounds overlap r.
func (s *Scene[T]) InRect(r image.Rectangle) []*Item[T] {
	var out []*Item[T]
	for _, id := range s.order {
		it := s.items[id]
		if BoundsOf(it.Data).Overlaps(r) {
			out = append(out, it)
		}
	}
	return out
}
