package store

import "github.com/Makepad-fr/packing/internal/model"

// demoItems is the starter list offered with -seed demo.
var demoItems = []struct {
	name     string
	quantity int
}{
	{"passport", 1},
	{"t-shirt", 3},
	{"toothbrush", 1},
	{"sunglasses", 2},
	{"phone charger", 1},
}

// Seed returns the demo collection, all items unpacked.
func Seed(ids model.IDGenerator) Collection {
	var c Collection
	for _, d := range demoItems {
		c = Add(c, ids, d.name, d.quantity)
	}
	return c
}
