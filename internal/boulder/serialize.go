package boulder

// Snapshot is a flat, serializable copy of everything needed to
// reconstruct a State exactly, matching the field list of InternalState in
// the reference implementation. It is independent of Go's runtime
// representation so it can be written to disk or sent across a process
// boundary.
type Snapshot struct {
	MagicWallSteps        int
	BlobMaxSize           int
	ButterflyExplosionVer ButterflyExplosionVersion
	ButterflyMoveVer      ButterflyMoveVersion
	GemsCollected         int
	BlobSize              int
	Rows                  int
	Cols                  int
	AgentIdx              int
	GemsRequired          int
	RandomState           uint64
	RewardSignal          uint64
	Hash                  uint64
	BlobChance            uint8
	Gravity               bool
	DisableExplosions     bool
	MagicActive           bool
	BlobEnclosed          bool
	IsAgentAlive          bool
	IsAgentInExit         bool
	BlobSwap              HiddenCellType
	Grid                  []int8
	HasUpdated            []bool
}

// Pack captures the full state as a Snapshot.
func (s *State) Pack() Snapshot {
	grid := make([]int8, len(s.Grid))
	for i, k := range s.Grid {
		grid[i] = int8(k)
	}
	updated := make([]bool, len(s.hasUpdated))
	copy(updated, s.hasUpdated)

	return Snapshot{
		MagicWallSteps:        s.MagicWallSteps,
		BlobMaxSize:           s.BlobMaxSize,
		ButterflyExplosionVer: s.ButterflyExplosionVer,
		ButterflyMoveVer:      s.ButterflyMoveVer,
		GemsCollected:         s.GemsCollected,
		BlobSize:              s.BlobSize,
		Rows:                  s.Rows,
		Cols:                  s.Cols,
		AgentIdx:              s.AgentIdx,
		GemsRequired:          s.GemsRequired,
		RandomState:           s.RandomState,
		RewardSignal:          s.RewardSignal,
		Hash:                  s.Hash,
		BlobChance:            s.BlobChance,
		Gravity:               s.Gravity,
		DisableExplosions:     s.DisableExplosions,
		MagicActive:           s.MagicActive,
		BlobEnclosed:          s.BlobEnclosed,
		IsAgentAlive:          s.IsAgentAlive,
		IsAgentInExit:         s.IsAgentInExit,
		BlobSwap:              s.BlobSwap,
		Grid:                  grid,
		HasUpdated:            updated,
	}
}

// Unpack reconstructs a State from a Snapshot produced by Pack.
func Unpack(snap Snapshot) *State {
	grid := make([]HiddenCellType, len(snap.Grid))
	for i, k := range snap.Grid {
		grid[i] = HiddenCellType(k)
	}
	updated := make([]bool, len(snap.HasUpdated))
	copy(updated, snap.HasUpdated)

	return &State{
		Rows:                  snap.Rows,
		Cols:                  snap.Cols,
		Grid:                  grid,
		hasUpdated:            updated,
		AgentIdx:              snap.AgentIdx,
		GemsRequired:          snap.GemsRequired,
		GemsCollected:         snap.GemsCollected,
		MagicWallSteps:        snap.MagicWallSteps,
		MagicActive:           snap.MagicActive,
		BlobSize:              snap.BlobSize,
		BlobMaxSize:           snap.BlobMaxSize,
		BlobEnclosed:          snap.BlobEnclosed,
		BlobSwap:              snap.BlobSwap,
		BlobChance:            snap.BlobChance,
		Gravity:               snap.Gravity,
		DisableExplosions:     snap.DisableExplosions,
		ButterflyExplosionVer: snap.ButterflyExplosionVer,
		ButterflyMoveVer:      snap.ButterflyMoveVer,
		RandomState:           snap.RandomState,
		RewardSignal:          snap.RewardSignal,
		Hash:                  snap.Hash,
		IsAgentAlive:          snap.IsAgentAlive,
		IsAgentInExit:         snap.IsAgentInExit,
	}
}
