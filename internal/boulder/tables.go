package boulder

// elementTable is the static catalog of every HiddenCellType's collapsed
// visible channel, physics properties, and glyph. Indexed by CellType+1 so
// that Null (-1) lands at slot 0, mirroring kCellTypeToElement's +1 offset
// trick in the reference implementation.
var elementTable [NumHiddenCellType + 1]Element

func el(kind HiddenCellType, visible VisibleCellType, props Property, glyph byte) Element {
	return Element{CellType: kind, VisibleType: visible, Properties: props, Glyph: glyph}
}

func init() {
	set := func(e Element) { elementTable[e.CellType+1] = e }

	set(el(Null, VNull, 0, ' '))
	set(el(Agent, VAgent, CanExplode, '@'))
	set(el(Empty, VEmpty, Traversable, ' '))
	set(el(Dirt, VDirt, Traversable|Consumable, '.'))
	set(el(Stone, VStone, Rounded|Pushable|Consumable, 'o'))
	set(el(StoneFalling, VStone, Consumable, 'o'))
	set(el(Diamond, VDiamond, Rounded|Traversable|Consumable, '*'))
	set(el(DiamondFalling, VDiamond, Traversable|Consumable, '*'))
	set(el(ExitClosed, VExitClosed, 0, 'X'))
	set(el(ExitOpen, VExitOpen, Traversable, 'X'))
	set(el(AgentInExit, VAgentInExit, 0, '@'))
	set(el(FireflyUp, VFirefly, Consumable, 'f'))
	set(el(FireflyLeft, VFirefly, Consumable, 'f'))
	set(el(FireflyDown, VFirefly, Consumable, 'f'))
	set(el(FireflyRight, VFirefly, Consumable, 'f'))
	set(el(ButterflyUp, VButterfly, Consumable, 'b'))
	set(el(ButterflyLeft, VButterfly, Consumable, 'b'))
	set(el(ButterflyDown, VButterfly, Consumable, 'b'))
	set(el(ButterflyRight, VButterfly, Consumable, 'b'))
	set(el(WallBrick, VWallBrick, Rounded|Consumable, '#'))
	set(el(WallSteel, VWallSteel, 0, 'W'))
	set(el(WallMagicDormant, VWallMagicOff, 0, 'M'))
	set(el(WallMagicOn, VWallMagicOn, 0, 'M'))
	set(el(WallMagicExpired, VWallMagicOff, 0, 'm'))
	set(el(Blob, VBlob, Consumable, 'c'))
	set(el(ExplosionDiamond, VExplosion, 0, 'E'))
	set(el(ExplosionBoulder, VExplosion, 0, 'E'))
	set(el(ExplosionEmpty, VExplosion, 0, 'E'))
	set(el(GateRedClosed, VGateRedClosed, 0, 'r'))
	set(el(GateRedOpen, VGateRedOpen, 0, 'R'))
	set(el(KeyRed, VKeyRed, Traversable|Consumable, 'k'))
	set(el(GateBlueClosed, VGateBlueClosed, 0, 'e'))
	set(el(GateBlueOpen, VGateBlueOpen, 0, 'E'))
	set(el(KeyBlue, VKeyBlue, Traversable|Consumable, 'y'))
	set(el(GateGreenClosed, VGateGreenClosed, 0, 'g'))
	set(el(GateGreenOpen, VGateGreenOpen, 0, 'G'))
	set(el(KeyGreen, VKeyGreen, Traversable|Consumable, 'n'))
	set(el(GateYellowClosed, VGateYellowClosed, 0, 'j'))
	set(el(GateYellowOpen, VGateYellowOpen, 0, 'J'))
	set(el(KeyYellow, VKeyYellow, Traversable|Consumable, 'z'))
	set(el(Nut, VNut, Rounded|Pushable|Consumable, 'u'))
	set(el(NutFalling, VNut, Consumable, 'u'))
	set(el(Bomb, VBomb, Rounded|Pushable|Consumable, 'v'))
	set(el(BombFalling, VBomb, CanExplode|Consumable, 'v'))
	set(el(OrangeUp, VOrange, Consumable, 'p'))
	set(el(OrangeLeft, VOrange, Consumable, 'p'))
	set(el(OrangeDown, VOrange, Consumable, 'p'))
	set(el(OrangeRight, VOrange, Consumable, 'p'))
	set(el(PebbleInDirt, VPebbleInDirt, Consumable, ','))
	set(el(StoneInDirt, VStoneInDirt, Consumable, 'q'))
	set(el(VoidInDirt, VVoidInDirt, Consumable, '_'))
}

// ElementOf returns the static Element record for a hidden cell kind.
func ElementOf(kind HiddenCellType) Element {
	return elementTable[kind+1]
}

// directionOffsets gives the (drow, dcol) delta for each Direction.
var directionOffsets = [NumDirections][2]int{
	DirUp:        {-1, 0},
	DirRight:     {0, 1},
	DirDown:      {1, 0},
	DirLeft:      {0, -1},
	DirNoop:      {0, 0},
	DirUpRight:   {-1, 1},
	DirDownRight: {1, 1},
	DirDownLeft:  {1, -1},
	DirUpLeft:    {-1, -1},
}

// rotateLeft/rotateRight give the next cardinal direction 90 degrees
// counter-clockwise/clockwise, used by firefly and butterfly AI.
var rotateLeft = [4]Direction{
	DirUp:    DirLeft,
	DirLeft:  DirDown,
	DirDown:  DirRight,
	DirRight: DirUp,
}

var rotateRight = [4]Direction{
	DirUp:    DirRight,
	DirRight: DirDown,
	DirDown:  DirLeft,
	DirLeft:  DirUp,
}

// RotateLeft/RotateRight rotate a cardinal direction 90 degrees.
func RotateLeft(d Direction) Direction  { return rotateLeft[d] }
func RotateRight(d Direction) Direction { return rotateRight[d] }

// toFalling maps a resting rounded kind to its falling variant.
var toFalling = map[HiddenCellType]HiddenCellType{
	Stone:   StoneFalling,
	Diamond: DiamondFalling,
	Nut:     NutFalling,
	Bomb:    BombFalling,
}

// fireflyByDir / butterflyByDir / orangeByDir map a facing direction to the
// corresponding directional HiddenCellType variant, and back.
var fireflyByDir = map[Direction]HiddenCellType{
	DirUp: FireflyUp, DirLeft: FireflyLeft, DirDown: FireflyDown, DirRight: FireflyRight,
}
var dirByFirefly = map[HiddenCellType]Direction{
	FireflyUp: DirUp, FireflyLeft: DirLeft, FireflyDown: DirDown, FireflyRight: DirRight,
}
var butterflyByDir = map[Direction]HiddenCellType{
	DirUp: ButterflyUp, DirLeft: ButterflyLeft, DirDown: ButterflyDown, DirRight: ButterflyRight,
}
var dirByButterfly = map[HiddenCellType]Direction{
	ButterflyUp: DirUp, ButterflyLeft: DirLeft, ButterflyDown: DirDown, ButterflyRight: DirRight,
}
var orangeByDir = map[Direction]HiddenCellType{
	DirUp: OrangeUp, DirLeft: OrangeLeft, DirDown: OrangeDown, DirRight: OrangeRight,
}
var dirByOrange = map[HiddenCellType]Direction{
	OrangeUp: DirUp, OrangeLeft: DirLeft, OrangeDown: DirDown, OrangeRight: DirRight,
}

func isFirefly(kind HiddenCellType) bool   { _, ok := dirByFirefly[kind]; return ok }
func isButterfly(kind HiddenCellType) bool { _, ok := dirByButterfly[kind]; return ok }
func isOrange(kind HiddenCellType) bool    { _, ok := dirByOrange[kind]; return ok }

// keyToGateClosed / gateOpenMap / keyToRewardBit / gateToRewardBit
// implement the colored key/gate relations.
var keyToGateClosed = map[HiddenCellType]HiddenCellType{
	KeyRed:    GateRedClosed,
	KeyBlue:   GateBlueClosed,
	KeyGreen:  GateGreenClosed,
	KeyYellow: GateYellowClosed,
}

var gateOpenMap = map[HiddenCellType]HiddenCellType{
	GateRedClosed:    GateRedOpen,
	GateBlueClosed:   GateBlueOpen,
	GateGreenClosed:  GateGreenOpen,
	GateYellowClosed: GateYellowOpen,
}

var keyToRewardBit = map[HiddenCellType]RewardCode{
	KeyRed:    RewardCollectKeyRed,
	KeyBlue:   RewardCollectKeyBlue,
	KeyGreen:  RewardCollectKeyGreen,
	KeyYellow: RewardCollectKeyYellow,
}

var gateToRewardBit = map[HiddenCellType]RewardCode{
	GateRedOpen:    RewardWalkThroughGateRed,
	GateBlueOpen:   RewardWalkThroughGateBlue,
	GateGreenOpen:  RewardWalkThroughGateGreen,
	GateYellowOpen: RewardWalkThroughGateYellow,
}

// magicWallConversion maps a falling item's kind to what it becomes when it
// passes through an active magic wall. Keyed by the falling item's own
// resting kind, matching kMagicWallConversion.at(GetItem(index)) in the
// reference implementation, which is invoked with the falling stone/diamond
// itself (not the wall) as the lookup key.
var magicWallConversion = map[HiddenCellType]HiddenCellType{
	Stone:          Diamond,
	StoneFalling:   Diamond,
	Diamond:        Stone,
	DiamondFalling: Stone,
}

// elementToExplosionProduct picks the explosion element that should be left
// behind at the site of whatever is being destroyed, keyed by the kind of
// the thing that did the destroying (or being destroyed). Stone and Bomb
// are deliberately absent: a stone or bomb detonation leaves ExplosionEmpty
// (the map default), not a boulder — only a Butterfly kill leaves a
// diamond behind.
var elementToExplosionProduct = map[HiddenCellType]HiddenCellType{
	ButterflyUp:    ExplosionDiamond,
	ButterflyLeft:  ExplosionDiamond,
	ButterflyDown:  ExplosionDiamond,
	ButterflyRight: ExplosionDiamond,
}

func explosionProductFor(kind HiddenCellType) HiddenCellType {
	if v, ok := elementToExplosionProduct[kind]; ok {
		return v
	}
	return ExplosionEmpty
}

// explosionToElement resolves an Explosion* cell into its final settled
// element on the tick it gets processed.
var explosionToElement = map[HiddenCellType]HiddenCellType{
	ExplosionDiamond: Diamond,
	ExplosionBoulder: Stone,
	ExplosionEmpty:   Empty,
}

// explosionToReward gives the reward bit (if any) an Explosion* cell should
// contribute when it settles.
var explosionToReward = map[HiddenCellType]RewardCode{
	ExplosionDiamond: RewardButterflyToDiamond,
}
