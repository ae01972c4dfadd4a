package boulder

// localHash computes H(kind, idx) = SplitMix64(flatSize*int(kind) + idx),
// the per-cell contribution to the incremental board hash. flatSize is
// rows*cols; kind is offset by one internally by the caller only when
// looking up elementTable, never here — the hash formula operates on the
// raw HiddenCellType value, including Null and negative values, exactly as
// to_local_hash() does in the reference implementation.
func localHash(flatSize int, kind HiddenCellType, idx int) uint64 {
	return SplitMix64(uint64(flatSize*int(kind) + idx))
}

// computeHash recomputes the whole-board hash from scratch by XORing every
// cell's localHash; used to build the initial hash and to verify the
// invariant in tests.
func computeHash(grid []HiddenCellType) uint64 {
	flatSize := len(grid)
	var h uint64
	for i, kind := range grid {
		h ^= localHash(flatSize, kind, i)
	}
	return h
}
