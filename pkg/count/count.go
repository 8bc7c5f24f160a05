// Package count tallies the content of every voxel inside a filled shape.
package count

import (
	"cmp"
	"slices"

	"github.com/mttstwrt/measurementtools/pkg/grid"
	"github.com/mttstwrt/measurementtools/pkg/guard"
	"github.com/mttstwrt/measurementtools/pkg/shape"
	"github.com/mttstwrt/measurementtools/pkg/volume"
	"github.com/mttstwrt/measurementtools/pkg/voxel"
)

// Result is the tally of one shape.
type Result struct {
	// Counts maps content name to the number of voxels holding it.
	Counts map[string]int `json:"counts"`
	// Total is the number of non-empty voxels.
	Total int `json:"total"`
	// Volume is the number of member voxels visited, empty or not.
	Volume  int    `json:"volume"`
	Limited bool   `json:"limited"`
	Reason  string `json:"reason,omitempty"`
}

// Row is one line of a sorted tally.
type Row struct {
	Content string `json:"content"`
	Count   int    `json:"count"`
}

// Rows returns the tally sorted by count, largest first, then by name.
func (r Result) Rows() []Row {
	rows := make([]Row, 0, len(r.Counts))
	for content, n := range r.Counts {
		rows = append(rows, Row{Content: content, Count: n})
	}
	slices.SortFunc(rows, func(a, b Row) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Content, b.Content)
	})
	return rows
}

// CountFilledVolume enumerates the members of p and counts their non-empty
// content in g. Shapes whose estimated volume exceeds MaxVolume are refused;
// enumeration also stops after MaxVolume members, leaving a partial tally.
func CountFilledVolume(p shape.Params, g grid.Grid, limits guard.Limits) Result {
	res := Result{Counts: make(map[string]int)}
	limits = limits.Normalize()
	if v := limits.CheckVolume(p); v.Limited {
		res.Limited, res.Reason = true, v.Reason
		return res
	}

	budget := guard.NewBudget(limits.MaxVolume)
	volume.Enumerate(p, voxel.AllLayers, func(c voxel.Coord) bool {
		if !budget.Spend() {
			res.Limited, res.Reason = true, budget.Reason()
			return false
		}
		res.Volume++
		content, ok := g.ContentAt(c)
		if !ok || grid.IsEmpty(content) {
			return true
		}
		res.Counts[content]++
		res.Total++
		return true
	})
	return res
}
