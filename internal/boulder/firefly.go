package boulder

// updateFirefly moves a firefly counter-clockwise-preferring along walls:
// explode if the agent or a blob is cardinally adjacent, else prefer
// turning left, else continue straight, else turn right in place.
func (s *State) updateFirefly(idx int, dir Direction) {
	if s.IsTypeAdjacent(idx, ElementOf(Agent)) || s.IsTypeAdjacent(idx, ElementOf(Blob)) {
		s.explode(idx, explosionProductFor(s.Grid[idx]), DirNoop)
		return
	}
	left := RotateLeft(dir)
	if s.IsType(idx, ElementOf(Empty), left) {
		s.SetItem(idx, fireflyByDir[left], DirNoop)
		s.MoveItem(idx, left)
		return
	}
	if s.IsType(idx, ElementOf(Empty), dir) {
		s.SetItem(idx, fireflyByDir[dir], DirNoop)
		s.MoveItem(idx, dir)
		return
	}
	s.SetItem(idx, fireflyByDir[RotateRight(dir)], DirNoop)
}

// updateButterfly mirrors updateFirefly but prefers turning right, and
// under ButterflyInstant it also moves on the same tick it turns in place —
// an intentional quirk of the reference implementation, preserved exactly.
func (s *State) updateButterfly(idx int, dir Direction) {
	if s.IsTypeAdjacent(idx, ElementOf(Agent)) || s.IsTypeAdjacent(idx, ElementOf(Blob)) {
		s.explode(idx, explosionProductFor(s.Grid[idx]), DirNoop)
		return
	}
	right := RotateRight(dir)
	if s.IsType(idx, ElementOf(Empty), right) {
		s.SetItem(idx, butterflyByDir[right], DirNoop)
		s.MoveItem(idx, right)
		return
	}
	if s.IsType(idx, ElementOf(Empty), dir) {
		s.SetItem(idx, butterflyByDir[dir], DirNoop)
		s.MoveItem(idx, dir)
		return
	}
	newDir := RotateLeft(dir)
	s.SetItem(idx, butterflyByDir[newDir], DirNoop)
	if s.ButterflyMoveVer == ButterflyInstant {
		s.MoveItem(idx, newDir)
	}
}
