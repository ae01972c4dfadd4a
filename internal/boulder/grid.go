package boulder

// rowCol decomposes a flat index into (row, col) for the state's width.
func (s *State) rowCol(idx int) (row, col int) {
	col = idx % s.Cols
	row = (idx - col) / s.Cols
	return row, col
}

// indexFromDirection returns the flat index one step from idx in the given
// direction, without bounds checking — callers must check InBounds first
// when the result might wrap or fall outside the grid.
func (s *State) indexFromDirection(idx int, dir Direction) int {
	off := directionOffsets[dir]
	row, col := s.rowCol(idx)
	return (row+off[0])*s.Cols + (col + off[1])
}

// InBounds reports whether stepping from idx in dir stays on the grid.
func (s *State) InBounds(idx int, dir Direction) bool {
	off := directionOffsets[dir]
	row, col := s.rowCol(idx)
	nr, nc := row+off[0], col+off[1]
	return nr >= 0 && nr < s.Rows && nc >= 0 && nc < s.Cols
}

// GetItem returns the Element in direction dir from idx (Noop for idx
// itself). Caller must ensure InBounds(idx, dir).
func (s *State) GetItem(idx int, dir Direction) Element {
	n := s.indexFromDirection(idx, dir)
	return ElementOf(s.Grid[n])
}

// IsType reports whether the neighbor in direction dir from idx has the
// given element's hidden cell type. Out-of-bounds is never of any type.
func (s *State) IsType(idx int, e Element, dir Direction) bool {
	if !s.InBounds(idx, dir) {
		return false
	}
	n := s.indexFromDirection(idx, dir)
	return s.Grid[n] == e.CellType
}

// HasProperty reports whether the neighbor in direction dir from idx
// carries every bit in mask. Out-of-bounds never has any property.
func (s *State) HasProperty(idx int, mask Property, dir Direction) bool {
	if !s.InBounds(idx, dir) {
		return false
	}
	n := s.indexFromDirection(idx, dir)
	return ElementOf(s.Grid[n]).HasProperty(mask)
}

// IsTypeAdjacent reports whether any of the four cardinal neighbors of idx
// match the given element.
func (s *State) IsTypeAdjacent(idx int, e Element) bool {
	return s.IsType(idx, e, DirUp) || s.IsType(idx, e, DirLeft) ||
		s.IsType(idx, e, DirDown) || s.IsType(idx, e, DirRight)
}

// setCell writes kind into slot n, maintaining the incremental hash.
func (s *State) setCell(n int, kind HiddenCellType) {
	flat := s.FlatSize()
	s.Hash ^= localHash(flat, s.Grid[n], n)
	s.Grid[n] = kind
	s.Hash ^= localHash(flat, s.Grid[n], n)
}

// MoveItem relocates the item at idx one step in dir: the destination
// becomes idx's current kind, the source becomes Empty, and the
// destination is marked updated so the tick scan does not revisit it.
func (s *State) MoveItem(idx int, dir Direction) {
	n := s.indexFromDirection(idx, dir)
	s.setCell(n, s.Grid[idx])
	s.hasUpdated[n] = true
	s.setCell(idx, Empty)
}

// SetItem writes kind into the neighbor of idx in direction dir (Noop for
// idx itself) and marks that destination updated.
func (s *State) SetItem(idx int, kind HiddenCellType, dir Direction) {
	n := s.indexFromDirection(idx, dir)
	s.setCell(n, kind)
	s.hasUpdated[n] = true
}
