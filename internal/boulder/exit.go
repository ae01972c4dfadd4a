package boulder

// updateExit opens the exit once enough gems have been collected.
func (s *State) updateExit(idx int) {
	if s.GemsCollected >= s.GemsRequired {
		s.SetItem(idx, ExitOpen, DirNoop)
	}
}

// openGate converts every closed gate of gateKind to its open counterpart
// across the whole board, matching a key collection's effect.
func (s *State) openGate(gateKind HiddenCellType) {
	for i := 0; i < s.Rows*s.Cols; i++ {
		if s.Grid[i] == gateKind {
			s.SetItem(i, gateOpenMap[s.Grid[i]], DirNoop)
		}
	}
}
