package boulder

// Config holds the tunable, immutable-for-the-life-of-a-state gameplay
// parameters, matching GameParameters in the reference implementation.
type Config struct {
	Gravity               bool
	MagicWallSteps        int
	BlobChance            uint8
	BlobMaxPercentage     float64
	DisableExplosions     bool
	ButterflyExplosionVer ButterflyExplosionVersion
	ButterflyMoveVer      ButterflyMoveVersion
}

// DefaultConfig returns the reference implementation's documented defaults.
func DefaultConfig() Config {
	return Config{
		Gravity:               false,
		MagicWallSteps:        140,
		BlobChance:            20,
		BlobMaxPercentage:     0.16,
		DisableExplosions:     false,
		ButterflyExplosionVer: ButterflyExplode,
		ButterflyMoveVer:      ButterflyDelay,
	}
}

// State is the full, cheaply-cloneable simulation state. Clone deep-copies
// the grid and has_updated slices in O(rows*cols) and nothing else needs
// special handling, since every other field is a plain scalar. A plain
// struct copy of a State shares those two slices with the original.
type State struct {
	Rows, Cols int
	Grid       []HiddenCellType
	hasUpdated []bool

	AgentIdx int

	GemsRequired  int
	GemsCollected int

	MagicWallSteps int
	MagicActive    bool

	BlobSize       int
	BlobMaxSize    int
	BlobEnclosed   bool
	BlobSwap       HiddenCellType // Null, Diamond, or Stone

	BlobChance            uint8
	Gravity               bool
	DisableExplosions     bool
	ButterflyExplosionVer ButterflyExplosionVersion
	ButterflyMoveVer      ButterflyMoveVersion

	RandomState uint64

	RewardSignal uint64
	Hash         uint64

	IsAgentAlive  bool
	IsAgentInExit bool
}

// FlatSize is rows*cols, the length of Grid and hasUpdated.
func (s *State) FlatSize() int { return s.Rows * s.Cols }

// Clone returns a deep, independent copy of the state.
func (s *State) Clone() *State {
	c := *s
	c.Grid = make([]HiddenCellType, len(s.Grid))
	copy(c.Grid, s.Grid)
	c.hasUpdated = make([]bool, len(s.hasUpdated))
	copy(c.hasUpdated, s.hasUpdated)
	return &c
}

// Equal reports whether two states are structurally identical, including
// the full grid contents and hash.
func (s *State) Equal(o *State) bool {
	if s.Rows != o.Rows || s.Cols != o.Cols || s.AgentIdx != o.AgentIdx ||
		s.GemsRequired != o.GemsRequired || s.GemsCollected != o.GemsCollected ||
		s.MagicWallSteps != o.MagicWallSteps || s.MagicActive != o.MagicActive ||
		s.BlobSize != o.BlobSize || s.BlobMaxSize != o.BlobMaxSize ||
		s.BlobEnclosed != o.BlobEnclosed || s.BlobSwap != o.BlobSwap ||
		s.BlobChance != o.BlobChance || s.Gravity != o.Gravity ||
		s.DisableExplosions != o.DisableExplosions ||
		s.ButterflyExplosionVer != o.ButterflyExplosionVer ||
		s.ButterflyMoveVer != o.ButterflyMoveVer ||
		s.RandomState != o.RandomState || s.RewardSignal != o.RewardSignal ||
		s.Hash != o.Hash || s.IsAgentAlive != o.IsAgentAlive ||
		s.IsAgentInExit != o.IsAgentInExit {
		return false
	}
	if len(s.Grid) != len(o.Grid) {
		return false
	}
	for i := range s.Grid {
		if s.Grid[i] != o.Grid[i] {
			return false
		}
	}
	return true
}

// New parses a level string and builds an initial State under the given
// configuration. It is the sole entry point that can return a ParseError.
func New(levelString string, cfg Config) (*State, error) {
	rows, cols, gemsRequired, grid, agentIdx, agentInExit, err := parseBoardString(levelString)
	if err != nil {
		return nil, err
	}

	s := &State{
		Rows:                  rows,
		Cols:                  cols,
		Grid:                  grid,
		hasUpdated:            make([]bool, rows*cols),
		AgentIdx:              agentIdx,
		GemsRequired:          gemsRequired,
		MagicWallSteps:        cfg.MagicWallSteps,
		BlobMaxSize:           int(float64(rows*cols) * cfg.BlobMaxPercentage),
		BlobEnclosed:          true,
		BlobSwap:              Null,
		BlobChance:            cfg.BlobChance,
		Gravity:               cfg.Gravity,
		DisableExplosions:     cfg.DisableExplosions,
		ButterflyExplosionVer: cfg.ButterflyExplosionVer,
		ButterflyMoveVer:      cfg.ButterflyMoveVer,
		RandomState:           SplitMix64(0),
		IsAgentAlive:          true,
		IsAgentInExit:         agentInExit,
	}
	s.Hash = computeHash(s.Grid)
	return s, nil
}
