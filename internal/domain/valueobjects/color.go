package valueobjects

import (
	"fmt"
	"math"
	"math/big"
	"strings"
	"unicode"
)

// Color is a CSS color string, normally "#RRGGBB". Free-text values are kept
// as entered; nothing validates them.
type Color string

// Swatches are the quick-pick colors offered for every slot.
var Swatches = []Color{
	"#000000", "#FFFFFF", "#FF0000", "#00FF00", "#0000FF",
	"#FFFF00", "#FF00FF", "#00FFFF", "#FFA500", "#800080",
	"#FFC0CB", "#A52A2A", "#808080", "#000080", "#008000",
}

func (c Color) String() string {
	return string(c)
}

func (c Color) IsEmpty() bool {
	return c == ""
}

// Equal compares two colors ignoring hex digit case.
func (c Color) Equal(other Color) bool {
	return strings.EqualFold(string(c), string(other))
}

// IsSwatch reports whether c is literally one of Swatches.
func IsSwatch(c Color) bool {
	for _, s := range Swatches {
		if s == c {
			return true
		}
	}
	return false
}

// AdjustBrightness adds amount to each RGB channel of c and clamps the result.
// The green channel is masked after the shift while red and blue are not;
// the output matches the web client byte for byte, lowercase hex included.
//
// c is read the way the client reads it: the first '#' is dropped, the
// leading run of hex digits is the number, and that number is wrapped to a
// signed 32-bit integer before shifting. Text with no leading hex digits
// reads as zero, so free-text colors never fail.
func AdjustBrightness(c Color, amount int) Color {
	n := int(hexPrefixInt32(strings.Replace(string(c), "#", "", 1)))
	r := clampChannel((n >> 16) + amount)
	g := clampChannel(((n >> 8) & 0x00FF) + amount)
	b := clampChannel((n & 0x0000FF) + amount)

	return Color(fmt.Sprintf("#%06x", (r<<16)|(g<<8)|b))
}

func clampChannel(v int) int {
	return max(0, min(255, v))
}

// hexPrefixInt32 parses an optional sign, an optional 0x and then as many
// hex digits as it finds, wrapping the value modulo 2^32. No digits, or a
// value too large for a float64, gives 0.
func hexPrefixInt32(s string) int32 {
	s = strings.TrimLeftFunc(s, func(r rune) bool { return unicode.IsSpace(r) || r == '\uFEFF' })

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}

	end := 0
	for end < len(s) && isHexDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0
	}

	v, ok := new(big.Int).SetString(s[:end], 16)
	if !ok {
		return 0
	}
	if negative {
		v.Neg(v)
	}
	f, _ := new(big.Float).SetInt(v).Float64()
	if math.IsInf(f, 0) {
		return 0
	}

	m := math.Mod(f, 1<<32)
	if m < 0 {
		m += 1 << 32
	}
	return int32(uint32(m))
}

func isHexDigit(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}
