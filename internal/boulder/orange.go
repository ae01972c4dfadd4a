package boulder

// updateOrange scurries forward while it can, explodes when it runs into
// the agent, and otherwise rerolls a new open cardinal direction using the
// shared xorshift RNG.
func (s *State) updateOrange(idx int, dir Direction) {
	if s.IsType(idx, ElementOf(Empty), dir) {
		s.MoveItem(idx, dir)
		return
	}
	if s.IsTypeAdjacent(idx, ElementOf(Agent)) {
		s.explode(idx, explosionProductFor(s.Grid[idx]), DirNoop)
		return
	}

	var openDirs []Direction
	for _, a := range AllActions {
		d := ActionToDirection(a)
		if !s.InBounds(idx, d) {
			continue
		}
		if s.IsType(idx, ElementOf(Empty), d) {
			openDirs = append(openDirs, d)
		}
	}
	if len(openDirs) == 0 {
		return
	}
	choice := Xorshift64(&s.RandomState) % uint64(len(openDirs))
	newDir := openDirs[choice]
	s.SetItem(idx, orangeByDir[newDir], DirNoop)
}
