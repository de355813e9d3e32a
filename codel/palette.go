package codel

// rgb is a raw 24-bit colour, used only as a lookup key into the
// fixed Piet palette.
type rgb struct {
	r, g, b uint8
}

// palette is the fixed 20-colour table: 6 hues × 3 lightnesses, plus
// white and black.
var palette = map[rgb]Cell{
	// light
	{0xFF, 0xC0, 0xC0}: NewColour(Red, Light),
	{0xFF, 0xFF, 0xC0}: NewColour(Yellow, Light),
	{0xC0, 0xFF, 0xC0}: NewColour(Green, Light),
	{0xC0, 0xFF, 0xFF}: NewColour(Cyan, Light),
	{0xC0, 0xC0, 0xFF}: NewColour(Blue, Light),
	{0xFF, 0xC0, 0xFF}: NewColour(Magenta, Light),
	// normal
	{0xFF, 0x00, 0x00}: NewColour(Red, Normal),
	{0xFF, 0xFF, 0x00}: NewColour(Yellow, Normal),
	{0x00, 0xFF, 0x00}: NewColour(Green, Normal),
	{0x00, 0xFF, 0xFF}: NewColour(Cyan, Normal),
	{0x00, 0x00, 0xFF}: NewColour(Blue, Normal),
	{0xFF, 0x00, 0xFF}: NewColour(Magenta, Normal),
	// dark
	{0xC0, 0x00, 0x00}: NewColour(Red, Dark),
	{0xC0, 0xC0, 0x00}: NewColour(Yellow, Dark),
	{0x00, 0xC0, 0x00}: NewColour(Green, Dark),
	{0x00, 0xC0, 0xC0}: NewColour(Cyan, Dark),
	{0x00, 0x00, 0xC0}: NewColour(Blue, Dark),
	{0xC0, 0x00, 0xC0}: NewColour(Magenta, Dark),
	// special
	{0xFF, 0xFF, 0xFF}: White(),
	{0x00, 0x00, 0x00}: Black(),
}

// Classify maps a raw RGB triple to its coded cell. Unrecognised
// colours yield Invalid().
func Classify(r, g, b uint8) Cell {
	if c, ok := palette[rgb{r, g, b}]; ok {
		return c
	}
	return Invalid()
}
