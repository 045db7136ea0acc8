package vm

import "math"

// packColor assembles four [0,1] channels into the packed representation
// used by `packcolor`/named color literals (spec §4.2): each channel is
// clamped, scaled to a byte, and the four bytes are laid out as the low 32
// bits of an IEEE-754 double's bit pattern (not its decimal value).
func packColor(r, g, b, a float64) LValue {
	packed := uint32(clampByte(r))<<24 | uint32(clampByte(g))<<16 | uint32(clampByte(b))<<8 | uint32(clampByte(a))
	return Number(math.Float64frombits(uint64(packed)))
}

func clampByte(c float64) byte {
	if c < 0 {
		c = 0
	}
	if c > 1 {
		c = 1
	}
	return byte(c * 255)
}

// unpackColor is packColor's inverse: extract the four bytes from the low
// 32 bits of num(packed)'s bit pattern and scale each back to [0,1].
func unpackColor(packed float64) (r, g, b, a float64) {
	bits := uint32(math.Float64bits(packed))
	r = float64(byte(bits>>24)) / 255
	g = float64(byte(bits>>16)) / 255
	b = float64(byte(bits>>8)) / 255
	a = float64(byte(bits)) / 255
	return
}

// defaultColors is the `%[name]` literal table (spec §6). Values are
// packed with packColor so that round-tripping through unpackcolor always
// reproduces the intended channel bytes exactly.
func defaultColors() map[string]LValue {
	rgba := map[string][4]byte{
		"white":   {0xff, 0xff, 0xff, 0xff},
		"black":   {0x00, 0x00, 0x00, 0xff},
		"red":     {0xff, 0x00, 0x00, 0xff},
		"green":   {0x00, 0xff, 0x00, 0xff},
		"blue":    {0x00, 0x00, 0xff, 0xff},
		"yellow":  {0xff, 0xff, 0x00, 0xff},
		"orange":  {0xff, 0xa5, 0x00, 0xff},
		"purple":  {0xa0, 0x20, 0xf0, 0xff},
		"pink":    {0xff, 0xc0, 0xcb, 0xff},
		"gray":    {0x80, 0x80, 0x80, 0xff},
		"grey":    {0x80, 0x80, 0x80, 0xff},
		"royal":   {0x41, 0x69, 0xe1, 0xff},
		"scarlet": {0xff, 0x34, 0x1c, 0xff},
		"clear":   {0x00, 0x00, 0x00, 0x00},
	}
	out := make(map[string]LValue, len(rgba))
	for name, c := range rgba {
		out[name] = packColor(float64(c[0])/255, float64(c[1])/255, float64(c[2])/255, float64(c[3])/255)
	}
	return out
}
