package scad

// widthMultiplier approximates the average glyph advance relative to the
// font size for the catalog fonts.
const widthMultiplier = 0.57

// HoleOffset computes the lateral displacement of the hole tab from the
// text's center. The offset scales continuously with the label length: half
// the estimated text width plus a border margin that grows by 0.1 border
// widths per character, so there are no size-class jumps between adjacent
// lengths. nameLen = 0 is valid and reduces the offset to
// 1.8 * borderThickness.
func HoleOffset(nameLen int, widthOption, borderThickness float64) float64 {
	n := float64(nameLen)
	borderFactor := 2.0 + (n-2)*0.1
	return n*widthOption*widthMultiplier/2 + borderThickness*borderFactor
}
