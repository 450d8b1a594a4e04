// Package shanten computes tiles-away-from-tenpai over the three hand
// shapes (standard, seven pairs, thirteen orphans), directly grounded on
// the teacher's backtracking search in
// framework/game/engines/mahjong/searcher.go (dfsNormalShanten,
// ShantenChiitoi, ShantenKokushi), generalized to the full needed-group
// arithmetic and "no explicit head" pass spec.md §4.1 requires.
package shanten

import "riichi/mahjong/tile"

// Complete is the shanten value of a finished hand.
const Complete = -1

// Standard returns the standard-shape shanten for a closed-tile histogram
// with meldCount groups already locked away by calls. h holds
// 13-3*meldCount tiles (before a draw) or 14-3*meldCount (after one).
func Standard(h tile.Histogram34, meldCount int) int {
	needed := 4 - meldCount
	best := 8
	work := h
	dfs(&work, needed, 0, 0, 0, &best)
	return best
}

// dfs mirrors the teacher's dfsNormalShanten: m is groups formed so far
// (not counting meldCount, which is folded into needed via the caller),
// p is 0/1 for whether a head has been set aside, t is taatsu/partial-group
// count. needed is the total groups required (4 - meldCount).
func dfs(h *tile.Histogram34, needed, m, p, t int, best *int) {
	if m > needed {
		return
	}

	t2 := t
	if limit := needed - m; t2 > limit {
		t2 = limit
	}

	var sh int
	if p == 1 {
		sh = 2*(needed-m) - 1 - t2
	} else {
		sh = 2*(needed-m) - t2
	}
	if sh < *best {
		*best = sh
	}

	i := firstNonZero(h)
	if i == -1 {
		return
	}

	k := tile.Kind(i)

	// Triplet.
	if h[i] >= 3 {
		h[i] -= 3
		dfs(h, needed, m+1, p, t, best)
		h[i] += 3
	}

	// Sequence (numeric suits only, base must leave room for k+1,k+2 in suit).
	if k.IsNumbered() && int(k)%9 <= 6 && h[i] > 0 && h[i+1] > 0 && h[i+2] > 0 {
		h[i]--
		h[i+1]--
		h[i+2]--
		dfs(h, needed, m+1, p, t, best)
		h[i]++
		h[i+1]++
		h[i+2]++
	}

	// Pair as head, if no head chosen yet.
	if p == 0 && h[i] >= 2 {
		h[i] -= 2
		dfs(h, needed, m, 1, t, best)
		h[i] += 2
	}

	// Pair taatsu (k, k).
	if h[i] >= 2 {
		h[i] -= 2
		dfs(h, needed, m, p, t+1, best)
		h[i] += 2
	}

	// Adjacent taatsu (k, k+1).
	if k.IsNumbered() && int(k)%9 <= 7 && h[i] > 0 && h[i+1] > 0 {
		h[i]--
		h[i+1]--
		dfs(h, needed, m, p, t+1, best)
		h[i]++
		h[i+1]++
	}

	// Gap taatsu (k, k+2).
	if k.IsNumbered() && int(k)%9 <= 6 && h[i] > 0 && h[i+2] > 0 {
		h[i]--
		h[i+2]--
		dfs(h, needed, m, p, t+1, best)
		h[i]++
		h[i+2]++
	}

	// Skip this kind entirely.
	h[i]--
	dfs(h, needed, m, p, t, best)
	h[i]++
}

func firstNonZero(h *tile.Histogram34) int {
	for i := 0; i < tile.NumKinds; i++ {
		if h[i] > 0 {
			return i
		}
	}
	return -1
}

// SevenPairs returns the seven-pairs shanten, valid only when the hand
// totals 13 or 14 tiles and no melds have been called.
func SevenPairs(h tile.Histogram34) int {
	total := h.Sum()
	if total != 13 && total != 14 {
		return 99
	}
	pairs, kinds := 0, 0
	for _, c := range h {
		if c > 0 {
			kinds++
		}
		pairs += int(c) / 2
	}
	sh := 6 - pairs
	if kinds < 7 {
		sh += 7 - kinds
	}
	return sh
}

// ThirteenOrphans returns the thirteen-orphans shanten, valid only when
// the hand totals 13 or 14 tiles and no melds have been called.
func ThirteenOrphans(h tile.Histogram34) int {
	total := h.Sum()
	if total != 13 && total != 14 {
		return 99
	}
	types, hasPair := 0, false
	for _, k := range tile.YaochuKinds {
		if h[k] > 0 {
			types++
			if h[k] >= 2 {
				hasPair = true
			}
		}
	}
	sh := 13 - types
	if hasPair {
		sh--
	}
	return sh
}

// Min returns the minimum shanten across all three shapes. meldCount > 0
// disqualifies the two special shapes, which require a fully closed hand.
func Min(h tile.Histogram34, meldCount int) int {
	best := Standard(h, meldCount)
	if meldCount == 0 {
		if v := SevenPairs(h); v < best {
			best = v
		}
		if v := ThirteenOrphans(h); v < best {
			best = v
		}
	}
	return best
}
