package boulder

// explodeFrame is one call frame of the explosion work-queue: place element
// at the cell one step from idx in dir, then walk that placement's own
// neighbors in ascending direction order, resuming at nextDir once a pushed
// CanExplode child frame has fully unwound.
//
// The reference implementation expresses this as a recursive function that,
// for each direction in ascending order, either writes a Consumable
// neighbor immediately or fully resolves a CanExplode neighbor's own
// recursive subtree before moving to the next direction. Recursion depth
// there is bounded only by grid size, which is unsafe for large boards;
// here the same call/return order is simulated with an explicit stack of
// resumable frames (rather than one flat queue) so a pushed child's entire
// subtree runs — and interleaves its Consumable writes with the parent's
// later directions — before the parent's loop resumes, while keeping the
// recursion depth of the Go implementation O(1) regardless of how large a
// chain reaction gets.
type explodeFrame struct {
	idx     int
	element HiddenCellType
	dir     Direction

	placed  bool
	newIdx  int
	ex      HiddenCellType
	nextDir int
}

func (s *State) explode(idx int, element HiddenCellType, dir Direction) {
	stack := []explodeFrame{{idx: idx, element: element, dir: dir}}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]

		if !f.placed {
			f.newIdx = s.indexFromDirection(f.idx, f.dir)
			target := s.Grid[f.newIdx]
			f.ex = explosionProductFor(target)
			if target == Agent {
				s.IsAgentAlive = false
			}
			s.setCell(f.newIdx, f.element)
			s.hasUpdated[f.newIdx] = true
			f.placed = true
		}

		pushedChild := false
		for f.nextDir < int(NumDirections) {
			nd := Direction(f.nextDir)
			f.nextDir++
			if nd == DirNoop || !s.InBounds(f.newIdx, nd) {
				continue
			}
			if s.HasProperty(f.newIdx, CanExplode, nd) {
				stack = append(stack, explodeFrame{idx: f.newIdx, element: f.ex, dir: nd})
				pushedChild = true
				break
			}
			if s.HasProperty(f.newIdx, Consumable, nd) {
				s.SetItem(f.newIdx, f.ex, nd)
				if s.GetItem(f.newIdx, nd).CellType == Agent {
					s.IsAgentAlive = false
				}
			}
		}
		if !pushedChild {
			stack = stack[:len(stack)-1]
		}
	}
}

// updateExplosions resolves a settled Explosion* cell into its final
// element and folds the associated reward bit (if any) into the tick's
// reward signal.
func (s *State) updateExplosions(idx int) {
	kind := s.Grid[idx]
	if bit, ok := explosionToReward[kind]; ok {
		s.RewardSignal |= uint64(bit)
	}
	s.SetItem(idx, explosionToElement[kind], DirNoop)
}
