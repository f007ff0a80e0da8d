package color

// square is a colored square emoji and the color it renders as.
type square struct {
	emoji string
	c     ARGB
}

var squares = []square{
	{"🟥", ARGB{255, 221, 46, 68}},
	{"🟧", ARGB{255, 244, 144, 12}},
	{"🟨", ARGB{255, 253, 203, 88}},
	{"🟩", ARGB{255, 120, 177, 89}},
	{"🟦", ARGB{255, 0, 116, 216}},
	{"🟪", ARGB{255, 170, 142, 214}},
	{"🟫", ARGB{255, 193, 105, 79}},
	{"⬛", ARGB{255, 49, 55, 61}},
	{"⬜", ARGB{255, 230, 231, 232}},
}

// Square returns the colored square emoji closest to c.
// Mostly transparent colors map to the white square.
func Square(c ARGB) string {
	if c.A < 128 {
		return "⬜"
	}

	best, bestDist := squares[0].emoji, -1
	for _, sq := range squares {
		dr := int(c.R) - int(sq.c.R)
		dg := int(c.G) - int(sq.c.G)
		db := int(c.B) - int(sq.c.B)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = sq.emoji, d
		}
	}
	return best
}
