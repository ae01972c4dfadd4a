package boulder

const (
	spriteWidth    = 32
	spriteHeight   = 32
	spriteChannels = 3
)

// spriteTable holds one flat spriteHeight*spriteWidth*3 RGB tile per
// VisibleCellType. The reference implementation blits binary sprite art
// shipped in an asset include file that is not part of this codebase's
// lineage; in its place, each visible kind gets a procedurally generated
// solid tile with a contrasting one-pixel border, keyed by kind so every
// channel remains visually distinguishable in to_image() output.
var spriteTable [NumVisibleCellType][spriteWidth * spriteHeight * spriteChannels]byte

var spritePalette = map[VisibleCellType][3]byte{
	VAgent:            {255, 220, 0},
	VEmpty:            {20, 20, 20},
	VDirt:             {120, 80, 40},
	VStone:            {140, 140, 140},
	VDiamond:          {80, 220, 255},
	VExitClosed:       {160, 40, 40},
	VExitOpen:         {40, 200, 40},
	VAgentInExit:      {255, 255, 255},
	VFirefly:          {220, 40, 200},
	VButterfly:        {200, 60, 220},
	VWallBrick:        {180, 100, 60},
	VWallSteel:        {90, 90, 100},
	VWallMagicOff:     {90, 60, 160},
	VWallMagicOn:      {180, 120, 255},
	VBlob:             {200, 40, 40},
	VExplosion:        {255, 140, 0},
	VGateRedClosed:    {160, 0, 0},
	VGateRedOpen:      {255, 80, 80},
	VKeyRed:           {255, 0, 0},
	VGateBlueClosed:   {0, 0, 160},
	VGateBlueOpen:     {80, 80, 255},
	VKeyBlue:          {0, 0, 255},
	VGateGreenClosed:  {0, 160, 0},
	VGateGreenOpen:    {80, 255, 80},
	VKeyGreen:         {0, 255, 0},
	VGateYellowClosed: {160, 160, 0},
	VGateYellowOpen:   {255, 255, 80},
	VKeyYellow:        {255, 255, 0},
	VNut:              {210, 180, 100},
	VBomb:             {30, 30, 30},
	VOrange:           {255, 140, 20},
	VPebbleInDirt:     {150, 110, 70},
	VStoneInDirt:      {150, 130, 90},
	VVoidInDirt:       {60, 40, 20},
}

func init() {
	border := [3]byte{0, 0, 0}
	for kind, color := range spritePalette {
		tile := &spriteTable[kind]
		for y := 0; y < spriteHeight; y++ {
			for x := 0; x < spriteWidth; x++ {
				o := (y*spriteWidth + x) * spriteChannels
				c := color
				if x == 0 || y == 0 || x == spriteWidth-1 || y == spriteHeight-1 {
					c = border
				}
				tile[o], tile[o+1], tile[o+2] = c[0], c[1], c[2]
			}
		}
	}
}

// ImageShape returns (rows*32, cols*32, 3), the shape of ToImage's output.
func (s *State) ImageShape() (height, width, channels int) {
	return s.Rows * spriteHeight, s.Cols * spriteWidth, spriteChannels
}

// ToImage renders the board as a flat HWC uint8 RGB buffer by blitting each
// cell's 32x32 sprite into place.
func (s *State) ToImage() []byte {
	imgW := s.Cols * spriteWidth
	imgH := s.Rows * spriteHeight
	out := make([]byte, imgH*imgW*spriteChannels)

	for idx, kind := range s.Grid {
		row, col := s.rowCol(idx)
		visible := ElementOf(kind).VisibleType
		tile := &spriteTable[visible]
		baseY := row * spriteHeight
		baseX := col * spriteWidth
		for y := 0; y < spriteHeight; y++ {
			srcOff := y * spriteWidth * spriteChannels
			dstOff := ((baseY+y)*imgW + baseX) * spriteChannels
			copy(out[dstOff:dstOff+spriteWidth*spriteChannels], tile[srcOff:srcOff+spriteWidth*spriteChannels])
		}
	}
	return out
}
