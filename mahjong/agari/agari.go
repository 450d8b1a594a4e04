// Package agari decides whether a tile histogram is a complete hand and
// enumerates every standard decomposition into a head plus groups. It
// generalizes the teacher's boolean IsAgariNormal/canFormMelds
// (framework/game/engines/mahjong/searcher.go) into a full enumerator, the
// way original_source/mahjong/rules/agari.py's _find_all_mentsu walks
// every koutsu/shuntsu choice instead of stopping at the first solution.
package agari

import "riichi/mahjong/tile"

// GroupKind distinguishes the two standard-shape group shapes.
type GroupKind int

const (
	Sequence GroupKind = iota
	Triplet
)

// Group is one completed group: its shape and its base kind (lowest kind
// of a sequence, or the triplet's kind).
type Group struct {
	Kind GroupKind
	Base tile.Kind
}

// Decomposition is one way of reading a hand as one head plus N groups.
type Decomposition struct {
	Head   tile.Kind
	Groups []Group
}

// IsStandard reports whether h (sum mod 3 == 2) has at least one standard
// decomposition.
func IsStandard(h tile.Histogram34) bool {
	return len(DecomposeStandard(h)) > 0
}

// DecomposeStandard returns every standard decomposition of h: one pair
// plus (sum-2)/3 groups. h must already exclude any melded tiles.
func DecomposeStandard(h tile.Histogram34) []Decomposition {
	total := h.Sum()
	if total%3 != 2 {
		return nil
	}
	needed := (total - 2) / 3

	var out []Decomposition
	seen := map[string]bool{}
	for head := tile.Kind(0); int(head) < tile.NumKinds; head++ {
		if h[head] < 2 {
			continue
		}
		work := h
		work[head] -= 2
		var groups []Group
		findAllGroups(&work, 0, needed, groups, &out, head, seen)
	}
	return out
}

func findAllGroups(h *tile.Histogram34, start, needed int, current []Group, out *[]Decomposition, head tile.Kind, seen map[string]bool) {
	if needed == 0 {
		for _, c := range h {
			if c != 0 {
				return
			}
		}
		d := Decomposition{Head: head, Groups: append([]Group(nil), current...)}
		key := decompositionKey(d)
		if !seen[key] {
			seen[key] = true
			*out = append(*out, d)
		}
		return
	}

	idx := start
	for idx < tile.NumKinds && h[idx] == 0 {
		idx++
	}
	if idx >= tile.NumKinds {
		return
	}
	k := tile.Kind(idx)

	if h[idx] >= 3 {
		h[idx] -= 3
		findAllGroups(h, idx, needed-1, append(current, Group{Triplet, k}), out, head, seen)
		h[idx] += 3
	}

	if k.IsNumbered() && int(k)%9 <= 6 && h[idx] >= 1 && h[idx+1] >= 1 && h[idx+2] >= 1 {
		h[idx]--
		h[idx+1]--
		h[idx+2]--
		findAllGroups(h, idx, needed-1, append(current, Group{Sequence, k}), out, head, seen)
		h[idx]++
		h[idx+1]++
		h[idx+2]++
	}
}

// decompositionKey normalizes a decomposition to a sorted string so
// identical group sets found via different search orders are deduplicated.
func decompositionKey(d Decomposition) string {
	groups := append([]Group(nil), d.Groups...)
	for i := 1; i < len(groups); i++ {
		for j := i; j > 0 && less(groups[j], groups[j-1]); j-- {
			groups[j], groups[j-1] = groups[j-1], groups[j]
		}
	}
	buf := make([]byte, 0, 2+3*len(groups))
	buf = append(buf, byte(d.Head), byte(' '))
	for _, g := range groups {
		buf = append(buf, byte(g.Kind), byte(g.Base), byte(','))
	}
	return string(buf)
}

func less(a, b Group) bool {
	if a.Base != b.Base {
		return a.Base < b.Base
	}
	return a.Kind < b.Kind
}

// IsSevenPairs reports the seven-pairs complete shape: 14 tiles, exactly
// seven distinct kinds each with count 2 (four-of-a-kind never counts as
// two pairs).
func IsSevenPairs(h tile.Histogram34) bool {
	if h.Sum() != 14 {
		return false
	}
	pairs := 0
	for _, c := range h {
		if c == 2 {
			pairs++
		}
	}
	return pairs == 7
}

// IsThirteenOrphans reports the thirteen-orphans complete shape: all 13
// yaochu kinds present, one of them doubled, nothing else in hand.
func IsThirteenOrphans(h tile.Histogram34) bool {
	if h.Sum() != 14 {
		return false
	}
	hasPair := false
	yaochuSet := map[tile.Kind]bool{}
	for _, k := range tile.YaochuKinds {
		yaochuSet[k] = true
		if h[k] == 0 {
			return false
		}
		if h[k] == 2 {
			hasPair = true
		}
	}
	for i := 0; i < tile.NumKinds; i++ {
		k := tile.Kind(i)
		if !yaochuSet[k] && h[k] != 0 {
			return false
		}
	}
	return hasPair
}

// IsAgari is the disjunction over the three winning shapes.
func IsAgari(h tile.Histogram34) bool {
	return IsStandard(h) || IsSevenPairs(h) || IsThirteenOrphans(h)
}

// WaitingTiles returns, for a tenpai histogram (sum mod 3 == 1), every
// kind that completes the hand under any of the three shapes.
func WaitingTiles(h tile.Histogram34) []tile.Kind {
	if h.Sum()%3 != 1 {
		return nil
	}
	var waits []tile.Kind
	for i := 0; i < tile.NumKinds; i++ {
		k := tile.Kind(i)
		if h[k] >= 4 {
			continue
		}
		test := h
		test[k]++
		if IsAgari(test) {
			waits = append(waits, k)
		}
	}
	return waits
}
