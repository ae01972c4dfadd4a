package boulder

// PositionToIndex converts a (row, col) pair to a flat grid index.
// Returns an ArgumentError if the position is outside the grid.
func (s *State) PositionToIndex(row, col int) (int, error) {
	if row < 0 || row >= s.Rows || col < 0 || col >= s.Cols {
		return 0, &ArgumentError{Reason: "position out of bounds"}
	}
	return row*s.Cols + col, nil
}

// IndexToPosition converts a flat grid index to its (row, col) pair.
// Returns an ArgumentError if the index is outside the grid.
func (s *State) IndexToPosition(idx int) (row, col int, err error) {
	if idx < 0 || idx >= s.Rows*s.Cols {
		return 0, 0, &ArgumentError{Reason: "index out of bounds"}
	}
	row, col = s.rowCol(idx)
	return row, col, nil
}

// IsPosInBounds reports whether (row, col) lies on the grid.
func (s *State) IsPosInBounds(row, col int) bool {
	return row >= 0 && row < s.Rows && col >= 0 && col < s.Cols
}

// GetHiddenItem returns the hidden cell type at idx, or an ArgumentError
// if idx is out of range.
func (s *State) GetHiddenItem(idx int) (HiddenCellType, error) {
	if idx < 0 || idx >= s.Rows*s.Cols {
		return Null, &ArgumentError{Reason: "index out of bounds"}
	}
	return s.Grid[idx], nil
}

// Position is a (row, col) grid coordinate.
type Position struct {
	Row, Col int
}

// GetPositions returns the (row, col) of every cell matching kind.
func (s *State) GetPositions(kind HiddenCellType) []Position {
	var out []Position
	for i, k := range s.Grid {
		if k == kind {
			row, col := s.rowCol(i)
			out = append(out, Position{Row: row, Col: col})
		}
	}
	return out
}

// GetIndices returns the flat index of every cell matching kind.
func (s *State) GetIndices(kind HiddenCellType) []int {
	var out []int
	for i, k := range s.Grid {
		if k == kind {
			out = append(out, i)
		}
	}
	return out
}

// AgentAlive reports whether the agent is currently alive.
func (s *State) AgentAlive() bool { return s.IsAgentAlive }

// AgentInExit reports whether the agent has walked into the exit.
func (s *State) AgentInExit() bool { return s.IsAgentInExit }

// GetAgentIndex returns the flat index of the agent's cell (or its last
// occupied cell, once dead or exited).
func (s *State) GetAgentIndex() int { return s.AgentIdx }
