package guard

import (
	"fmt"

	"github.com/mttstwrt/measurementtools/pkg/voxel"
)

// Collector accumulates voxels up to a hard cap. The first new voxel offered
// to a full collector stops it and marks it limited.
type Collector struct {
	voxels  voxel.Set
	max     int
	limited bool
	reason  string
}

// NewCollector returns a collector holding at most max voxels.
func NewCollector(max int) *Collector {
	return &Collector{voxels: make(voxel.Set), max: max}
}

// Add stores v. It returns false once the collector is full or has been
// stopped, which callers treat as the signal to stop enumerating.
func (c *Collector) Add(v voxel.Coord) bool {
	if c.limited {
		return false
	}
	if c.voxels.Len() >= c.max && !c.voxels.Has(v) {
		c.Stop(fmt.Sprintf("output capped at %d voxels", c.max))
		return false
	}
	c.voxels.Add(v)
	return true
}

// Stop marks the collection limited with reason. The first reason wins.
func (c *Collector) Stop(reason string) {
	if c.limited {
		return
	}
	c.limited, c.reason = true, reason
}

func (c *Collector) Voxels() voxel.Set { return c.voxels }
func (c *Collector) Limited() bool     { return c.limited }
func (c *Collector) Reason() string    { return c.reason }

// Budget counts visited voxels against a ceiling.
type Budget struct {
	max, used int
}

// NewBudget returns a budget allowing max visits.
func NewBudget(max int) *Budget {
	return &Budget{max: max}
}

// Spend records one visit and reports whether the budget still holds.
func (b *Budget) Spend() bool {
	b.used++
	return b.used <= b.max
}

// Used returns the number of visits recorded.
func (b *Budget) Used() int { return b.used }

// Reason describes an exhausted budget.
func (b *Budget) Reason() string {
	return fmt.Sprintf("volume limit reached, visited %d, max %d", b.used, b.max)
}
