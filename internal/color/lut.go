package color

// decodeLUT maps every sRGB byte to its linear value.
var decodeLUT [256]float64

// encodeLUT maps linear values quantised to 12 bits back to sRGB bytes.
// 4096 entries keep the round trip within one step of 8-bit precision.
var encodeLUT [4096]uint8

func init() {
	for i := range decodeLUT {
		decodeLUT[i] = ToLinear(float64(i) / 255)
	}
	for i := range encodeLUT {
		encodeLUT[i] = quantize(FromLinear(float64(i) / 4095))
	}
}

// DecodeByte converts an sRGB byte to linear light using a lookup table.
func DecodeByte(s uint8) float64 {
	return decodeLUT[s]
}

// EncodeByte converts linear light to an sRGB byte using a lookup table.
// Input is clamped to [0, 1].
func EncodeByte(l float64) uint8 {
	if l <= 0 {
		return 0
	}
	if l >= 1 {
		return 255
	}
	return encodeLUT[int(l*4095+0.5)]
}

// EncodeByteExact is the math.Pow reference for EncodeByte.
func EncodeByteExact(l float64) uint8 {
	return quantize(FromLinear(l))
}

func quantize(s float64) uint8 {
	v := int(s*255 + 0.5)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
