// Package store owns the packing list state: immutable Collection
// snapshots, the functional operations that derive new snapshots from old
// ones, and the metrics computed from a snapshot.
package store

import "github.com/Makepad-fr/packing/internal/model"

// Collection is an immutable, insertion-ordered snapshot of items.
// The zero value is the empty collection.
type Collection struct {
	items []model.Item
}

// NewCollection builds a snapshot from items, copying the slice.
// Later duplicates of an id and blank names are dropped, and quantities
// are coerced so the snapshot always satisfies the item invariants.
func NewCollection(items ...model.Item) Collection {
	out := make([]model.Item, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if it.ID == "" || seen[it.ID] || !model.ValidName(it.Name) {
			continue
		}
		seen[it.ID] = true
		it.Quantity = model.CoerceQuantity(it.Quantity)
		out = append(out, it)
	}
	return wrap(out)
}

func wrap(items []model.Item) Collection {
	if len(items) == 0 {
		return Collection{}
	}
	return Collection{items: items}
}

// Items returns a copy of the items in insertion order.
func (c Collection) Items() []model.Item {
	out := make([]model.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len is the number of items.
func (c Collection) Len() int { return len(c.items) }

// At returns the item at position i (0-based).
func (c Collection) At(i int) (model.Item, bool) {
	if i < 0 || i >= len(c.items) {
		return model.Item{}, false
	}
	return c.items[i], true
}

// Get looks an item up by id.
func (c Collection) Get(id string) (model.Item, bool) {
	i := c.index(id)
	if i < 0 {
		return model.Item{}, false
	}
	return c.items[i], true
}

func (c Collection) index(id string) int {
	for i, it := range c.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Add appends a new unpacked item. A blank name leaves c unchanged.
func Add(c Collection, ids model.IDGenerator, name string, quantity int) Collection {
	it, ok := model.NewItem(ids, name, quantity)
	if !ok {
		return c
	}
	for c.index(it.ID) >= 0 {
		it.ID = ids.NextID()
	}
	out := make([]model.Item, len(c.items), len(c.items)+1)
	copy(out, c.items)
	return wrap(append(out, it))
}

// Toggle flips the packed flag of the item with the given id.
// An unknown id leaves c unchanged.
func Toggle(c Collection, id string) Collection {
	i := c.index(id)
	if i < 0 {
		return c
	}
	out := c.Items()
	out[i] = out[i].Toggled()
	return wrap(out)
}

// Remove drops the item with the given id, keeping the order of the rest.
// An unknown id leaves c unchanged.
func Remove(c Collection, id string) Collection {
	i := c.index(id)
	if i < 0 {
		return c
	}
	out := make([]model.Item, 0, len(c.items)-1)
	out = append(out, c.items[:i]...)
	out = append(out, c.items[i+1:]...)
	return wrap(out)
}

// Edit replaces the name and quantity of the item with the given id.
// Id and packed flag are kept. A blank name or unknown id leaves c
// unchanged; quantity is coerced to at least 1.
func Edit(c Collection, id, name string, quantity int) Collection {
	i := c.index(id)
	if i < 0 || !model.ValidName(name) {
		return c
	}
	out := c.Items()
	out[i].Name = name
	out[i].Quantity = model.CoerceQuantity(quantity)
	return wrap(out)
}

// Clear always returns the empty collection. It never restores seed data.
func Clear(Collection) Collection {
	return Collection{}
}
