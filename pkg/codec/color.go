package codec

import (
	"fmt"
	"strconv"
	"strings"
)

// OutfitColor is an index into the client's outfit palette.
type OutfitColor uint8

// outfitPalette maps OutfitColor indices to RGB values, in client order.
var outfitPalette = [...]uint32{
	0x2C1D1D, 0x2E2226, 0x574753, 0x959595, 0xCACACA, 0xE4E4E4,
	0x931317, 0xCD2627, 0xDA4E3D, 0x8C3612, 0xB0521C, 0xCB6C17,
	0xDE930D, 0xDDB818, 0xEFDC40, 0x3B971A, 0x6FB620, 0x9DD016,
	0x255C7A, 0x42B8D3, 0xA2D2DC, 0x252C7A, 0x656CCF, 0x7D8BF4,
	0x6C2191, 0xA630D4, 0xC267F2, 0x912174, 0xE320BD, 0xEC7BD9,
}

// OutfitColorCount is the number of palette entries.
const OutfitColorCount = len(outfitPalette)

// Valid reports whether c is a palette index.
func (c OutfitColor) Valid() bool {
	return int(c) < OutfitColorCount
}

// RGB returns the palette color, or false if c is out of range.
func (c OutfitColor) RGB() (uint32, bool) {
	if !c.Valid() {
		return 0, false
	}
	return outfitPalette[c], true
}

// Hex returns the color as "#RRGGBB", or "" for indices outside the palette.
func (c OutfitColor) Hex() string {
	rgb, ok := c.RGB()
	if !ok {
		return ""
	}
	return fmt.Sprintf("#%06X", rgb)
}

func (c OutfitColor) String() string {
	if hex := c.Hex(); hex != "" {
		return fmt.Sprintf("%d (%s)", uint8(c), hex)
	}
	return fmt.Sprintf("%d (unknown)", uint8(c))
}

// ParseOutfitColor accepts a palette index ("7") or an RGB value ("#CD2627", "cd2627").
func ParseOutfitColor(s string) (OutfitColor, error) {
	s = strings.TrimSpace(s)
	if len(s) <= 3 {
		idx, err := strconv.ParseUint(s, 10, 8)
		if err != nil || !OutfitColor(idx).Valid() {
			return 0, fmt.Errorf("%w: outfit color index %q out of range 0-%d", ErrInvalidValue, s, OutfitColorCount-1)
		}
		return OutfitColor(idx), nil
	}
	rgb, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: outfit color %q", ErrInvalidValue, s)
	}
	for i, v := range outfitPalette {
		if uint64(v) == rgb {
			return OutfitColor(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q is not a palette color", ErrInvalidValue, s)
}

// OutfitPart selects which garment an outfit color applies to.
type OutfitPart uint8

const (
	OutfitPoncho OutfitPart = iota
	OutfitShirt
	OutfitPants
)

func (p OutfitPart) String() string {
	switch p {
	case OutfitPoncho:
		return "poncho"
	case OutfitShirt:
		return "shirt"
	case OutfitPants:
		return "pants"
	default:
		return fmt.Sprintf("OutfitPart(%d)", uint8(p))
	}
}

// Sex is the character sex flag. Only SexMale and SexFemale are accepted by setters.
type Sex uint8

const (
	SexMale   Sex = 0
	SexFemale Sex = 1
)

func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

func (s Sex) String() string {
	switch s {
	case SexMale:
		return "male"
	case SexFemale:
		return "female"
	default:
		return fmt.Sprintf("Sex(%d)", uint8(s))
	}
}

// ParseSex accepts "male", "female", "0" or "1".
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m", "0":
		return SexMale, nil
	case "female", "f", "1":
		return SexFemale, nil
	}
	return 0, fmt.Errorf("%w: sex %q", ErrInvalidValue, s)
}
