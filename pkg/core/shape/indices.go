package shape

import (
	"slices"

	"github.com/matzehuels/stackchart/pkg/chart"
)

// Indices maps series ids to group indices.
type Indices struct {
	ByID map[string]int
	// Max is the largest index handed out, or -1 without targets.
	Max int
}

// Of returns the index of id, or 0 when id was not indexed.
func (ix Indices) Of(id string) int {
	return ix.ByID[id]
}

// Has reports whether id was indexed.
func (ix Indices) Has(id string) bool {
	_, ok := ix.ByID[id]
	return ok
}

// Count returns the number of distinct indices.
func (ix Indices) Count() int { return ix.Max + 1 }

// Members returns the ids of targets sharing index i, in target order.
func (ix Indices) Members(i int, targets []chart.Series) []string {
	var ids []string
	for _, s := range targets {
		if idx, ok := ix.ByID[s.ID]; ok && idx == i {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// ComputeIndices assigns group indices to targets.
//
// Targets are visited in order. Every declared group containing a target
// is consulted in declaration order, and the target takes the index of the
// first already indexed member of each; the last such group wins. A target
// with no indexed group mate takes the next unused index. Group members
// that are not among the targets are ignored.
func ComputeIndices(targets []chart.Series, groups [][]string) Indices {
	ix := Indices{ByID: make(map[string]int, len(targets))}
	next := 0

	for _, t := range targets {
		if _, done := ix.ByID[t.ID]; done {
			continue
		}
		for _, g := range groups {
			if !slices.Contains(g, t.ID) {
				continue
			}
			for _, member := range g {
				if idx, ok := ix.ByID[member]; ok {
					ix.ByID[t.ID] = idx
					break
				}
			}
		}
		if _, ok := ix.ByID[t.ID]; !ok {
			ix.ByID[t.ID] = next
			next++
		}
	}

	ix.Max = next - 1
	return ix
}
