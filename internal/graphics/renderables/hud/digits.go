package hud

// Seven-segment digit geometry, drawn as GL_LINES the same way the cardinal
// direction letters are. Segments live in a cell 0.5 wide and 1.0 tall with
// the origin at the bottom-left.
//
//	 A
//	F B
//	 G
//	E C
//	 D

type segment struct {
	x1, y1, x2, y2 float32
}

var segments = [7]segment{
	{0, 1, 0.5, 1},     // A top
	{0.5, 1, 0.5, 0.5}, // B top-right
	{0.5, 0.5, 0.5, 0}, // C bottom-right
	{0, 0, 0.5, 0},     // D bottom
	{0, 0.5, 0, 0},     // E bottom-left
	{0, 1, 0, 0.5},     // F top-left
	{0, 0.5, 0.5, 0.5}, // G middle
}

// Bitmask per digit, bit i = segment i lit.
var digitSegments = [10]uint8{
	0x3F, // 0: ABCDEF
	0x06, // 1: BC
	0x5B, // 2: ABDEG
	0x4F, // 3: ABCDG
	0x66, // 4: BCFG
	0x6D, // 5: ACDFG
	0x7D, // 6: ACDEFG
	0x07, // 7: ABC
	0x7F, // 8: all
	0x6F, // 9: ABCDFG
}

const digitAdvance = 0.8

// BuildNumber returns 2D line vertices for a non-negative integer, scaled by
// scale, starting at the origin and advancing along +x. Negative values
// render as 0.
func BuildNumber(n int, scale float32) []float32 {
	if n < 0 {
		n = 0
	}

	digits := make([]int, 0, 4)
	for {
		digits = append([]int{n % 10}, digits...)
		n /= 10
		if n == 0 {
			break
		}
	}

	verts := make([]float32, 0, len(digits)*7*4)
	offset := float32(0)
	for _, d := range digits {
		mask := digitSegments[d]
		for i, seg := range segments {
			if mask&(1<<uint(i)) == 0 {
				continue
			}
			verts = append(verts,
				(seg.x1+offset)*scale, seg.y1*scale,
				(seg.x2+offset)*scale, seg.y2*scale,
			)
		}
		offset += digitAdvance
	}
	return verts
}
