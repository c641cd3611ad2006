package model

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator hands out collision-free item ids.
type IDGenerator interface {
	NextID() string
}

// UUIDs generates random (v4) UUIDs. It is the default generator.
type UUIDs struct{}

func (UUIDs) NextID() string { return uuid.NewString() }

// Counter generates "1", "2", ... in order. Handy for scripts and tests
// where ids should be predictable. Not safe for concurrent use.
type Counter struct {
	n uint64
}

func (c *Counter) NextID() string {
	c.n++
	return strconv.FormatUint(c.n, 10)
}
