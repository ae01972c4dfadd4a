package boulder

import "strings"

// RenderGlyphs renders the board as a bordered ASCII grid using each
// cell's static glyph, for quick terminal inspection by the CLI.
func (s *State) RenderGlyphs() string {
	var b strings.Builder
	b.WriteString("+")
	b.WriteString(strings.Repeat("-", s.Cols))
	b.WriteString("+\n")
	for r := 0; r < s.Rows; r++ {
		b.WriteByte('|')
		for c := 0; c < s.Cols; c++ {
			kind := s.Grid[r*s.Cols+c]
			b.WriteByte(ElementOf(kind).Glyph)
		}
		b.WriteString("|\n")
	}
	b.WriteString("+")
	b.WriteString(strings.Repeat("-", s.Cols))
	b.WriteString("+\n")
	return b.String()
}
