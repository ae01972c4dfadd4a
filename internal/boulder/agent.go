package boulder

func isDirectionHorizontal(dir Direction) bool {
	return dir == DirLeft || dir == DirRight
}

// updateAgent resolves the agent's action for this tick: movement,
// diamond pickup, pushing, key/gate interaction, or walking into the exit.
// A blocked or out-of-bounds action is a silent no-op — the tick still
// advances every other element.
func (s *State) updateAgent(idx int, dir Direction) {
	if !s.InBounds(idx, dir) {
		return
	}

	switch {
	case s.IsType(idx, ElementOf(Empty), dir) || s.IsType(idx, ElementOf(Dirt), dir):
		s.MoveItem(idx, dir)
		s.AgentIdx = s.indexFromDirection(idx, dir)

	case s.IsType(idx, ElementOf(Diamond), dir) || s.IsType(idx, ElementOf(DiamondFalling), dir):
		s.GemsCollected++
		s.RewardSignal |= uint64(RewardCollectDiamond)
		s.MoveItem(idx, dir)
		s.AgentIdx = s.indexFromDirection(idx, dir)

	case isDirectionHorizontal(dir) && s.HasProperty(idx, Pushable, dir):
		target := s.GetItem(idx, dir).CellType
		s.push(idx, target, toFalling[target], dir)

	case isKey(s.GetItem(idx, dir).CellType):
		keyType := s.GetItem(idx, dir).CellType
		s.openGate(keyToGateClosed[keyType])
		s.MoveItem(idx, dir)
		s.AgentIdx = s.indexFromDirection(idx, dir)
		s.RewardSignal |= uint64(RewardCollectKey)
		s.RewardSignal |= uint64(keyToRewardBit[keyType])

	case isOpenGate(s.GetItem(idx, dir).CellType):
		gateIdx := s.indexFromDirection(idx, dir)
		if s.HasProperty(gateIdx, Traversable, dir) {
			if s.IsType(gateIdx, ElementOf(Diamond), dir) || s.IsType(gateIdx, ElementOf(DiamondFalling), dir) {
				s.GemsCollected++
				s.RewardSignal |= uint64(RewardCollectDiamond)
			} else if isKey(s.GetItem(gateIdx, dir).CellType) {
				keyType := s.GetItem(gateIdx, dir).CellType
				s.openGate(keyToGateClosed[keyType])
				s.RewardSignal |= uint64(RewardCollectKey)
				s.RewardSignal |= uint64(keyToRewardBit[keyType])
			}
			s.SetItem(gateIdx, Agent, dir)
			s.setCell(idx, Empty)
			s.AgentIdx = s.indexFromDirection(gateIdx, dir)
			s.RewardSignal |= uint64(RewardWalkThroughGate)
			s.RewardSignal |= uint64(gateToRewardBit[s.Grid[gateIdx]])
		}

	case s.IsType(idx, ElementOf(ExitOpen), dir):
		s.MoveItem(idx, dir)
		s.SetItem(idx, AgentInExit, dir)
		s.AgentIdx = s.indexFromDirection(idx, dir)
		s.IsAgentInExit = true
		s.RewardSignal |= uint64(RewardWalkThroughExit)
	}
}

// push moves a horizontally-pushable object one step in dir, landing as
// its falling variant if the cell beneath its destination is Empty and as
// its stationary variant otherwise, then moves the agent into its place.
func (s *State) push(idx int, stationary, falling HiddenCellType, dir Direction) {
	newIdx := s.indexFromDirection(idx, dir)
	if !s.IsType(newIdx, ElementOf(Empty), dir) {
		return
	}
	nextIdx := s.indexFromDirection(newIdx, dir)
	isEmptyBelow := s.IsType(nextIdx, ElementOf(Empty), DirDown)
	s.MoveItem(newIdx, dir)
	if isEmptyBelow {
		s.setCell(nextIdx, falling)
	} else {
		s.setCell(nextIdx, stationary)
	}
	s.hasUpdated[nextIdx] = true
	s.MoveItem(idx, dir)
	s.AgentIdx = s.indexFromDirection(idx, dir)
}

func isKey(kind HiddenCellType) bool {
	_, ok := keyToGateClosed[kind]
	return ok
}

func isOpenGate(kind HiddenCellType) bool {
	switch kind {
	case GateRedOpen, GateBlueOpen, GateGreenOpen, GateYellowOpen:
		return true
	default:
		return false
	}
}
