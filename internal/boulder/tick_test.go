package boulder

import (
	"strconv"
	"testing"
)

func mustNew(t *testing.T, level string, cfg Config) *State {
	t.Helper()
	s, err := New(level, cfg)
	if err != nil {
		t.Fatalf("New(%q) failed: %v", level, err)
	}
	return s
}

func TestParseRejectsMalformedLevels(t *testing.T) {
	cases := []string{
		"3|3|0|1|1|1|1|0|1|1|1",    // wrong cell count
		"3|3|0|1|1|1|1|1|1|1|1|1",  // no agent
		"3|3|0|0|1|1|1|0|1|1|1|1",  // two agents
		"3|3|0|1|1|1|1|99|1|1|1|1", // bad cell code
		"not|a|level",
	}
	for _, lvl := range cases {
		if _, err := New(lvl, DefaultConfig()); err == nil {
			t.Errorf("New(%q) expected a ParseError, got nil", lvl)
		}
	}
}

func TestApplyActionTrivialMove(t *testing.T) {
	s := mustNew(t, "3|3|0|1|1|1|1|0|1|1|1|1", DefaultConfig())
	if err := s.ApplyAction(Right); err != nil {
		t.Fatalf("ApplyAction: %v", err)
	}
	if s.GetAgentIndex() != 5 {
		t.Errorf("agent index = %d, want 5", s.GetAgentIndex())
	}
	if s.Grid[4] != Empty {
		t.Errorf("vacated cell = %v, want Empty", s.Grid[4])
	}
	if s.GetRewardSignal() != 0 {
		t.Errorf("reward signal = %d, want 0", s.GetRewardSignal())
	}
}

func TestApplyActionCollectsDiamond(t *testing.T) {
	s := mustNew(t, "3|3|1|1|1|1|1|0|5|1|1|1", DefaultConfig())
	if err := s.ApplyAction(Right); err != nil {
		t.Fatalf("ApplyAction: %v", err)
	}
	if s.GemsCollected != 1 {
		t.Errorf("gems collected = %d, want 1", s.GemsCollected)
	}
	if s.GetRewardSignal()&uint64(RewardCollectDiamond) == 0 {
		t.Errorf("reward signal missing CollectDiamond bit: %d", s.GetRewardSignal())
	}
}

func TestApplyActionRejectsInvalidAction(t *testing.T) {
	s := mustNew(t, "3|3|0|1|1|1|1|0|1|1|1|1", DefaultConfig())
	if err := s.ApplyAction(Action(9)); err == nil {
		t.Errorf("ApplyAction(9) expected an ArgumentError, got nil")
	}
}

func TestHashInvariantHoldsAfterEveryTick(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gravity = true
	s := mustNew(t, "3|3|0|1|3|1|1|1|1|1|0|1", cfg)

	actions := []Action{Up, Down, Left, Right, Down, Down}
	for i, a := range actions {
		if err := s.ApplyAction(a); err != nil {
			t.Fatalf("step %d: ApplyAction: %v", i, err)
		}
		want := computeHash(s.Grid)
		if s.Hash != want {
			t.Fatalf("step %d: hash invariant broken: got %d, want %d", i, s.Hash, want)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := mustNew(t, "3|3|0|1|1|1|1|0|1|1|1|1", DefaultConfig())
	c := s.Clone()
	if err := s.ApplyAction(Right); err != nil {
		t.Fatalf("ApplyAction: %v", err)
	}
	if c.GetAgentIndex() != 4 {
		t.Errorf("clone was mutated: agent index = %d, want 4", c.GetAgentIndex())
	}
	if s.Equal(c) {
		t.Errorf("stepped state should no longer equal its clone")
	}
}

func TestPackUnpackRoundTrips(t *testing.T) {
	s := mustNew(t, "3|3|1|1|1|1|1|0|5|1|1|1", DefaultConfig())
	_ = s.ApplyAction(Right)

	snap := s.Pack()
	restored := Unpack(snap)

	if !s.Equal(restored) {
		t.Fatalf("Unpack(Pack(s)) is not equal to s")
	}
	if restored.GetHash() != s.GetHash() {
		t.Fatalf("hash mismatch after round-trip: got %d, want %d", restored.GetHash(), s.GetHash())
	}
}

// TestDeterminism mirrors the reference platform's snake game determinism
// test: two independently constructed states, given identical actions,
// must produce identical hash and reward trajectories.
func TestDeterminism(t *testing.T) {
	level := "5|5|0" +
		"|1|1|1|1|1" +
		"|1|3|1|1|1" +
		"|1|1|0|1|1" +
		"|1|1|1|3|1" +
		"|1|1|1|1|1"

	cfg := DefaultConfig()
	cfg.Gravity = true

	a := mustNew(t, level, cfg)
	b := mustNew(t, level, cfg)

	actions := []Action{Down, Down, Left, Right, Up, Down, Down, Left}
	for i, act := range actions {
		if err := a.ApplyAction(act); err != nil {
			t.Fatalf("run a step %d: %v", i, err)
		}
		if err := b.ApplyAction(act); err != nil {
			t.Fatalf("run b step %d: %v", i, err)
		}
		if a.GetHash() != b.GetHash() {
			t.Fatalf("step %d: hash diverged: %d vs %d", i, a.GetHash(), b.GetHash())
		}
		if a.GetRewardSignal() != b.GetRewardSignal() {
			t.Fatalf("step %d: reward signal diverged: %d vs %d", i, a.GetRewardSignal(), b.GetRewardSignal())
		}
	}
}

// TestBombChainLeavesEmptyNotStone covers spec scenario 5 (bomb chain): a
// falling stone lands on a bomb, exploding it; the explosion's diagonal
// reach also consumes an adjacent bomb. Both bombs, and the stone itself,
// must resolve to Empty once their Explosion* cells settle on the next
// tick — never Stone.
func TestBombChainLeavesEmptyNotStone(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gravity = true

	// 3x3: a falling stone directly above the left of two adjacent bombs.
	cells := []HiddenCellType{
		Dirt, StoneFalling, Dirt,
		Dirt, Bomb, Bomb,
		Agent, Dirt, Dirt,
	}
	level := "3|3|0"
	for _, c := range cells {
		level += "|" + strconv.Itoa(int(c))
	}
	st := mustNew(t, level, cfg)

	const stoneIdx, leftBombIdx, rightBombIdx = 1, 4, 5

	if err := st.ApplyAction(Up); err != nil {
		t.Fatalf("tick 1: %v", err)
	}
	for _, idx := range []int{stoneIdx, leftBombIdx, rightBombIdx} {
		if st.Grid[idx] != ExplosionEmpty {
			t.Fatalf("after tick 1, cell %d = %v, want ExplosionEmpty", idx, st.Grid[idx])
		}
	}

	if err := st.ApplyAction(Up); err != nil {
		t.Fatalf("tick 2: %v", err)
	}
	for _, idx := range []int{stoneIdx, leftBombIdx, rightBombIdx} {
		if st.Grid[idx] != Empty {
			t.Fatalf("after tick 2, cell %d = %v, want Empty", idx, st.Grid[idx])
		}
	}
}

func TestBlobSwapLatchesAfterGrowth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BlobChance = 255
	cfg.BlobMaxPercentage = 0.16

	// 5x5 all Dirt except one Blob and the agent tucked in a corner.
	cells := make([]HiddenCellType, 25)
	for i := range cells {
		cells[i] = Dirt
	}
	cells[0] = Agent
	cells[12] = Blob

	level := "5|5|0"
	for _, c := range cells {
		level += "|" + strconv.Itoa(int(c))
	}
	st := mustNew(t, level, cfg)

	if st.BlobMaxSize != 4 {
		t.Fatalf("blob max size = %d, want 4", st.BlobMaxSize)
	}

	for i := 0; i < 6; i++ {
		if err := st.ApplyAction(Up); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	if st.BlobSize <= st.BlobMaxSize && st.BlobSwap != Diamond && st.BlobSwap != Stone {
		t.Fatalf("expected blob_swap to latch after growth, got size=%d max=%d swap=%v", st.BlobSize, st.BlobMaxSize, st.BlobSwap)
	}
}
