package boulder

// canRollLeft/canRollRight report whether the object at idx can roll off
// the cell beneath it: the cell one step down from idx must be Rounded, and
// the side and the diagonal-down-that-side must both be Empty.
func (s *State) canRollLeft(idx int) bool {
	return s.HasProperty(idx, Rounded, DirDown) &&
		s.IsType(idx, ElementOf(Empty), DirLeft) && s.IsType(idx, ElementOf(Empty), DirDownLeft)
}

func (s *State) canRollRight(idx int) bool {
	return s.HasProperty(idx, Rounded, DirDown) &&
		s.IsType(idx, ElementOf(Empty), DirRight) && s.IsType(idx, ElementOf(Empty), DirDownRight)
}

func (s *State) rollLeft(idx int, kind HiddenCellType) {
	s.SetItem(idx, kind, DirNoop)
	s.MoveItem(idx, DirLeft)
}

func (s *State) rollRight(idx int, kind HiddenCellType) {
	s.SetItem(idx, kind, DirNoop)
	s.MoveItem(idx, DirRight)
}

// updateRestingRounded implements the shared skeleton of Stone/Diamond/
// Nut resting update: fall, else roll, else stay. Bomb reuses the fall/
// roll structure but keeps its own resting kind on the roll (see
// updateBomb) per the reference implementation's preserved quirk.
func (s *State) updateRestingRounded(idx int, falling HiddenCellType, fallUpdate func(int)) {
	if !s.Gravity {
		return
	}
	if s.IsType(idx, ElementOf(Empty), DirDown) {
		s.SetItem(idx, falling, DirNoop)
		fallUpdate(idx)
		return
	}
	if s.canRollLeft(idx) {
		s.rollLeft(idx, falling)
		return
	}
	if s.canRollRight(idx) {
		s.rollRight(idx, falling)
	}
}

func (s *State) updateStone(idx int) {
	s.updateRestingRounded(idx, StoneFalling, s.updateStoneFalling)
}

func (s *State) updateStoneFalling(idx int) {
	if s.IsType(idx, ElementOf(Empty), DirDown) {
		s.MoveItem(idx, DirDown)
		return
	}
	if s.ButterflyExplosionVer == ButterflyConvert && isButterfly(s.GetItem(idx, DirDown).CellType) {
		s.SetItem(idx, Empty, DirNoop)
		s.SetItem(idx, Diamond, DirDown)
		s.RewardSignal |= uint64(RewardButterflyToDiamond)
		return
	}
	if s.HasProperty(idx, CanExplode, DirDown) {
		below := s.GetItem(idx, DirDown).CellType
		s.explode(idx, explosionProductFor(below), DirDown)
		return
	}
	if s.IsType(idx, ElementOf(WallMagicOn), DirDown) || s.IsType(idx, ElementOf(WallMagicDormant), DirDown) {
		s.moveThroughMagic(idx, magicWallConversion[s.Grid[idx]])
		return
	}
	if s.IsType(idx, ElementOf(Nut), DirDown) {
		s.SetItem(idx, Empty, DirNoop)
		s.SetItem(idx, Diamond, DirDown)
		s.RewardSignal |= uint64(RewardNutToDiamond)
		return
	}
	if s.IsType(idx, ElementOf(Bomb), DirDown) {
		s.explode(idx, explosionProductFor(s.Grid[idx]), DirNoop)
		return
	}
	if s.canRollLeft(idx) {
		s.rollLeft(idx, StoneFalling)
		return
	}
	if s.canRollRight(idx) {
		s.rollRight(idx, StoneFalling)
		return
	}
	s.SetItem(idx, Stone, DirNoop)
}

func (s *State) updateDiamond(idx int) {
	s.updateRestingRounded(idx, DiamondFalling, s.updateDiamondFalling)
}

func (s *State) updateDiamondFalling(idx int) {
	if s.IsType(idx, ElementOf(Empty), DirDown) {
		s.MoveItem(idx, DirDown)
		return
	}
	if s.HasProperty(idx, CanExplode, DirDown) &&
		!s.IsType(idx, ElementOf(Bomb), DirDown) && !s.IsType(idx, ElementOf(BombFalling), DirDown) {
		below := s.GetItem(idx, DirDown).CellType
		s.explode(idx, explosionProductFor(below), DirDown)
		return
	}
	if s.IsType(idx, ElementOf(WallMagicOn), DirDown) || s.IsType(idx, ElementOf(WallMagicDormant), DirDown) {
		s.moveThroughMagic(idx, magicWallConversion[s.Grid[idx]])
		return
	}
	if s.canRollLeft(idx) {
		s.rollLeft(idx, DiamondFalling)
		return
	}
	if s.canRollRight(idx) {
		s.rollRight(idx, DiamondFalling)
		return
	}
	s.SetItem(idx, Diamond, DirNoop)
}

func (s *State) updateNut(idx int) {
	s.updateRestingRounded(idx, NutFalling, s.updateNutFalling)
}

func (s *State) updateNutFalling(idx int) {
	if s.IsType(idx, ElementOf(Empty), DirDown) {
		s.MoveItem(idx, DirDown)
		return
	}
	if s.canRollLeft(idx) {
		s.rollLeft(idx, NutFalling)
		return
	}
	if s.canRollRight(idx) {
		s.rollRight(idx, NutFalling)
		return
	}
	s.SetItem(idx, Nut, DirNoop)
}

// updateBomb is the resting Bomb rule. Unlike Stone/Diamond/Nut, rolling a
// resting bomb keeps it as Bomb rather than converting to BombFalling —
// preserved exactly as the reference implementation does it.
func (s *State) updateBomb(idx int) {
	if !s.Gravity {
		return
	}
	if s.IsType(idx, ElementOf(Empty), DirDown) {
		s.SetItem(idx, BombFalling, DirNoop)
		s.updateBombFalling(idx)
		return
	}
	if s.canRollLeft(idx) {
		s.rollLeft(idx, Bomb)
		return
	}
	if s.canRollRight(idx) {
		s.rollRight(idx, Bomb)
	}
}

func (s *State) updateBombFalling(idx int) {
	if s.IsType(idx, ElementOf(Empty), DirDown) {
		s.MoveItem(idx, DirDown)
		return
	}
	if s.canRollLeft(idx) {
		s.rollLeft(idx, BombFalling)
		return
	}
	if s.canRollRight(idx) {
		s.rollRight(idx, BombFalling)
		return
	}
	if !s.DisableExplosions {
		s.explode(idx, explosionProductFor(s.Grid[idx]), DirNoop)
	}
	// If explosions are disabled and the bomb is blocked, it silently
	// remains BombFalling — no else branch, matching the source.
}
