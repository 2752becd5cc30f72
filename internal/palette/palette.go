package palette

// RGB is an opaque colour with 8-bit channels.
type RGB [3]uint8

// Pair is the two-colour set a burst draws its particles from.
type Pair [2]RGB

// Background is the pink the whole canvas is cleared with (#ffccd5).
var Background = RGB{255, 204, 213}

// Macaron is the ordered list of balloon colours. Order matters: the contrast
// search walks it by index.
var Macaron = []RGB{
	{255, 173, 173},
	{255, 214, 165},
	{253, 255, 182},
	{202, 255, 191},
	{155, 246, 255},
	{160, 196, 255},
	{189, 178, 255},
	{255, 198, 255},
	{255, 255, 252},
}

// DefaultContrastThreshold is the minimum squared RGB distance from the
// background for a colour to count as visible.
const DefaultContrastThreshold = 5000

// DistSq returns the squared Euclidean distance between two colours in RGB space.
func DistSq(a, b RGB) int {
	d := 0
	for i := range a {
		c := int(a[i]) - int(b[i])
		d += c * c
	}
	return d
}

// Inverse returns 255-channel for every channel.
func Inverse(c RGB) RGB {
	return RGB{255 - c[0], 255 - c[1], 255 - c[2]}
}

// Lighten adds amount to each channel, clamped at 255.
func Lighten(c RGB, amount int) RGB {
	var out RGB
	for i := range c {
		v := int(c[i]) + amount
		if v > 255 {
			v = 255
		}
		if v < 0 {
			v = 0
		}
		out[i] = uint8(v)
	}
	return out
}

// Fallback is the pair used when no palette colour stands out from bg: the
// inverse of bg and a lightened inverse.
func Fallback(bg RGB) Pair {
	inv := Inverse(bg)
	return Pair{inv, Lighten(inv, 30)}
}

// ChooseContrastingPair walks colors starting at the pair (base, second) and
// returns the first pair in which at least one colour is threshold or more
// away from bg. After each miss base moves one step forward and second becomes
// its right neighbour, both wrapping. At most len(colors) pairs are tried.
//
// The returned indexes are the last pair examined. ok is false when neither
// of those colours clears the threshold, in which case callers should use
// Fallback(bg).
func ChooseContrastingPair(colors []RGB, bg RGB, threshold, base, second int) (b, s int, ok bool) {
	n := len(colors)
	if n == 0 {
		return 0, 0, false
	}
	b, s = wrap(base, n), wrap(second, n)
	visible := func(i int) bool { return DistSq(colors[i], bg) >= threshold }
	for attempts := 0; attempts < n; attempts++ {
		if visible(b) || visible(s) {
			break
		}
		b = (b + 1) % n
		s = (b + 1) % n
	}
	return b, s, visible(b) || visible(s)
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
