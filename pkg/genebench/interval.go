package genebench

import "sort"

// IoU computes Intersection-over-Union between two intervals.
//
// Both measures use raw coordinate differences (end - start), matching the
// established benchmark convention, so a zero-length interval has measure 0
// and IoU 0 against anything. Two identical zero-length intervals give a
// union of 0, which is defined to return 0 rather than fail.
func IoU(a, b Interval) float64 {
	intersection := min(a.End, b.End) - max(a.Start, b.Start)
	if intersection < 0 {
		intersection = 0
	}
	union := max(a.End, b.End) - min(a.Start, b.Start)
	if union <= 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// mergeIntervals returns the disjoint sorted union of the inputs.
// Adjacent intervals ([1,5] and [6,9]) cover contiguous positions under
// inclusive coordinates and are coalesced. The input slice is not modified.
func mergeIntervals(ivs []Interval) []Interval {
	if len(ivs) == 0 {
		return nil
	}

	sorted := make([]Interval, len(ivs))
	copy(sorted, ivs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	merged := sorted[:1]
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if iv.Start <= last.End+1 {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// coveredLength returns the number of positions covered by a disjoint
// sorted interval set.
func coveredLength(merged []Interval) int {
	total := 0
	for _, iv := range merged {
		total += iv.Length()
	}
	return total
}

// intersectionLength returns the number of positions covered by both
// disjoint sorted interval sets, by a two-pointer sweep.
func intersectionLength(a, b []Interval) int {
	total := 0
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		lo := max(a[i].Start, b[j].Start)
		hi := min(a[i].End, b[j].End)
		if lo <= hi {
			total += hi - lo + 1
		}
		if a[i].End < b[j].End {
			i++
		} else {
			j++
		}
	}
	return total
}
