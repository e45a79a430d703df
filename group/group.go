// Package group buckets topologically labelled nodes into a contiguous,
// level-sorted table: one backing array of length N plus an offsets array
// delimiting each level's slice. This is the unit the sweep engine iterates.
package group

// Index counting-sorts node ids by level into backing/offsets such that
// Groups[l] == backing[offsets[l]:offsets[l+1]], each slice held in
// ascending node-id order. Level values are small dense integers in
// [0, sinkLevel], so a counting sort is linear and avoids a comparison sort
// entirely.
//
// Complexity: O(N + L) time and O(N + L) memory, L = sinkLevel+1.
func Index(level []int32, sinkLevel int32) (backing []int32, offsets []int32) {
	n := len(level)
	numGroups := int(sinkLevel) + 1

	offsets = make([]int32, numGroups+1)
	for _, l := range level {
		offsets[l+1]++
	}
	for l := 0; l < numGroups; l++ {
		offsets[l+1] += offsets[l]
	}

	backing = make([]int32, n)
	cursor := append([]int32(nil), offsets[:numGroups]...)
	for i, l := range level {
		backing[cursor[l]] = int32(i)
		cursor[l]++
	}

	return backing, offsets
}
