package pareto

import (
	"math"
	"sort"
)

// nonDominated filters a set down to its front 0: no surviving member is
// dominated by any other member.
func nonDominated(in []scored) []scored {
	out := make([]scored, 0, len(in))
	for i, a := range in {
		dominated := false
		for j, b := range in {
			if i != j && Dominates(b.entry.Objectives, a.entry.Objectives) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, a)
		}
	}
	return out
}

// rankAndCrowd performs fast non-dominated sorting and computes crowding
// distances, both keyed by index into the pool.
func rankAndCrowd(pool []scored) (ranks []int, crowding []float64) {
	n := len(pool)
	ranks = make([]int, n)
	crowding = make([]float64, n)

	dominatedCount := make([]int, n)
	dominates := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if Dominates(pool[i].entry.Objectives, pool[j].entry.Objectives) {
				dominates[i] = append(dominates[i], j)
			} else if Dominates(pool[j].entry.Objectives, pool[i].entry.Objectives) {
				dominatedCount[i]++
			}
		}
	}

	var current []int
	for i := 0; i < n; i++ {
		if dominatedCount[i] == 0 {
			ranks[i] = 0
			current = append(current, i)
		}
	}

	rank := 0
	for len(current) > 0 {
		crowdFront(pool, current, crowding)
		var next []int
		for _, i := range current {
			for _, j := range dominates[i] {
				dominatedCount[j]--
				if dominatedCount[j] == 0 {
					ranks[j] = rank + 1
					next = append(next, j)
				}
			}
		}
		rank++
		current = next
	}
	return ranks, crowding
}

// crowdFront assigns the standard crowding distance within one front:
// boundary members get infinity, interior members the normalized gap to
// their neighbors summed across objectives. Larger means more room, and
// selection prefers room to preserve spread across the trade-off surface.
func crowdFront(pool []scored, front []int, crowding []float64) {
	if len(front) <= 2 {
		for _, i := range front {
			crowding[i] = math.Inf(1)
		}
		return
	}

	objectives := []func(Objectives) float64{
		func(o Objectives) float64 { return o.Cost },
		func(o Objectives) float64 { return o.Depth },
		func(o Objectives) float64 { return o.Carbon },
	}

	for _, value := range objectives {
		idx := append([]int(nil), front...)
		sort.Slice(idx, func(a, b int) bool {
			return value(pool[idx[a]].entry.Objectives) < value(pool[idx[b]].entry.Objectives)
		})

		lo := value(pool[idx[0]].entry.Objectives)
		hi := value(pool[idx[len(idx)-1]].entry.Objectives)
		crowding[idx[0]] = math.Inf(1)
		crowding[idx[len(idx)-1]] = math.Inf(1)
		if hi == lo {
			continue
		}
		for k := 1; k < len(idx)-1; k++ {
			prev := value(pool[idx[k-1]].entry.Objectives)
			next := value(pool[idx[k+1]].entry.Objectives)
			crowding[idx[k]] += (next - prev) / (hi - lo)
		}
	}
}
