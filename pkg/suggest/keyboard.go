package suggest

import "math"

// QWERTY grid used to weight substitutions. Both dictionaries are typed on
// the same physical layout, so one grid serves fr and en.
var keyboardRows = []string{
	"QWERTYUIOP",
	"ASDFGHJKL",
	"ZXCVBNM",
}

var keyPos = func() map[rune][2]int {
	m := make(map[rune][2]int)
	for r, row := range keyboardRows {
		for c, ch := range row {
			m[ch] = [2]int{r, c}
		}
	}
	return m
}()

func keyDistance(a, b rune) float64 {
	pa, oka := keyPos[a]
	pb, okb := keyPos[b]
	if !oka || !okb {
		return 2.5
	}
	dr := float64(pa[0] - pb[0])
	dc := float64(pa[1] - pb[1])
	return math.Sqrt(dr*dr + dc*dc)
}

// substitutionCost prices a typo by physical key distance: hitting a
// neighboring key is far more likely than one across the board.
func substitutionCost(a, b rune) float64 {
	if a == b {
		return 0
	}
	d := keyDistance(a, b)
	switch {
	case d <= 1.0:
		return 0.5
	case d <= 1.5:
		return 0.8
	case d <= 2.2:
		return 1.2
	}
	return 1.8
}

// isOneAdjacentSwap reports whether b is a with exactly one pair of
// neighboring letters transposed, the most common fast-typing slip.
func isOneAdjacentSwap(a, b []rune) bool {
	if len(a) != len(b) || len(a) < 2 {
		return false
	}
	diff := -1
	for i := range a {
		if a[i] != b[i] {
			diff = i
			break
		}
	}
	if diff == -1 || diff+1 >= len(a) {
		return false
	}
	if a[diff] != b[diff+1] || a[diff+1] != b[diff] {
		return false
	}
	for j := diff + 2; j < len(a); j++ {
		if a[j] != b[j] {
			return false
		}
	}
	return true
}
