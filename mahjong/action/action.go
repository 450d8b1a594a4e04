// Package action enumerates the legal choices at the two decision
// points a round stops at: after a seat draws, and after any seat
// discards. Grounded on the teacher's canHu/canPeng/canGang/canChi
// (runtime/game/engines/mahjong/checker.go) and getPengOptions/
// getGangOptions/getChiOptions/findChiCombinations (opt_selector.go) —
// all of which are stubs there (canHu/canChi return false unconditionally,
// findChiCombinations returns nil) — filled in against the completed
// agari/shanten/furiten packages.
package action

import (
	"riichi/mahjong/agari"
	"riichi/mahjong/furiten"
	"riichi/mahjong/hand"
	"riichi/mahjong/meld"
	"riichi/mahjong/shanten"
	"riichi/mahjong/tile"
)

// DrawKind distinguishes the choices available right after a self-draw.
type DrawKind int

const (
	Discard DrawKind = iota
	Tsumo
	Riichi
	Ankan
	Kakan
	KyuushuKyuuhai
	NorthDeclare
)

// DrawChoice is one legal post-draw action.
type DrawChoice struct {
	Kind DrawKind
	// Target names the kind a kan acts on; unused for Discard/Tsumo/Riichi/
	// KyuushuKyuuhai.
	Target tile.Kind
}

// DrawOptions enumerates every legal action after h has just drawn a
// tile. fs is not consulted (furiten never blocks a self-draw win);
// isFirstUninterruptedTurn gates the abortive
// nine-terminal draw; isSanma gates the north-tile (kita) declaration,
// which only exists in the three-player rule set.
func DrawOptions(h *hand.Hand, fs *furiten.State, isFirstUninterruptedTurn bool, isSanma bool) []DrawChoice {
	var out []DrawChoice

	all := h.ToHistogram34()
	if agari.IsAgari(all) {
		out = append(out, DrawChoice{Kind: Tsumo})
	}

	if h.IsMenzen() && !h.IsRiichi && hasTenpaiDiscard(all, h.MeldedKindCount()) {
		out = append(out, DrawChoice{Kind: Riichi})
	}

	for _, k := range ankanTargets(h) {
		out = append(out, DrawChoice{Kind: Ankan, Target: k})
	}
	for _, k := range kakanTargets(h) {
		out = append(out, DrawChoice{Kind: Kakan, Target: k})
	}

	if isSanma && all[tile.North] > 0 {
		out = append(out, DrawChoice{Kind: NorthDeclare})
	}

	if isFirstUninterruptedTurn && isKyuushuKyuuhai(all) {
		out = append(out, DrawChoice{Kind: KyuushuKyuuhai})
	}

	out = append(out, DrawChoice{Kind: Discard})
	return out
}

// hasTenpaiDiscard reports whether some single-tile discard from all
// leaves a tenpai (shanten 0) 13-tile hand — the riichi eligibility test.
func hasTenpaiDiscard(all tile.Histogram34, meldedGroups int) bool {
	for i := 0; i < tile.NumKinds; i++ {
		if all[i] == 0 {
			continue
		}
		all[i]--
		if shanten.Min(all, meldedGroups) == 0 {
			all[i]++
			return true
		}
		all[i]++
	}
	return false
}

func ankanTargets(h *hand.Hand) []tile.Kind {
	hist := h.ToHistogram34()
	var out []tile.Kind
	for i := 0; i < tile.NumKinds; i++ {
		if hist[i] < 4 {
			continue
		}
		k := tile.Kind(i)
		if (h.IsRiichi || h.IsDoubleRiichi) && !AnkanPreservesWait(h, k) {
			continue
		}
		out = append(out, k)
	}
	return out
}

// AnkanPreservesWait reports whether declaring a closed kan on k leaves
// the hand's wait set unchanged — the riichi restriction from spec.md
// §4.7, which only allows a riichi ankan that doesn't reshape the wait.
// It compares the wait set of the locked pre-draw 13-tile shape against
// the wait set of the 10-tile shape left once k's four copies move into
// the kan meld.
func AnkanPreservesWait(h *hand.Hand, k tile.Kind) bool {
	before14 := h.ToHistogram34()
	before13 := before14
	if h.Drawn != nil {
		before13[h.Drawn.Kind]--
	}
	after10 := before14
	after10[k] -= 4

	waitsBefore := agari.WaitingTiles(before13)
	waitsAfter := agari.WaitingTiles(after10)
	return sameKindSet(waitsBefore, waitsAfter)
}

func sameKindSet(a, b []tile.Kind) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[tile.Kind]int, len(a))
	for _, k := range a {
		seen[k]++
	}
	for _, k := range b {
		seen[k]--
	}
	for _, n := range seen {
		if n != 0 {
			return false
		}
	}
	return true
}

// kakanTargets finds existing open triplets that can be upgraded by the
// matching fourth tile currently in hand.
func kakanTargets(h *hand.Hand) []tile.Kind {
	hist := h.ToHistogram34()
	var out []tile.Kind
	for _, m := range h.Melds {
		if m.Variant == meld.Triplet && hist[m.BaseKind()] >= 1 {
			out = append(out, m.BaseKind())
		}
	}
	return out
}

// isKyuushuKyuuhai reports nine-or-more distinct yaochu kinds in hand,
// the abortive-draw threshold.
func isKyuushuKyuuhai(hist tile.Histogram34) bool {
	distinct := 0
	for _, k := range tile.YaochuKinds {
		if hist[k] > 0 {
			distinct++
		}
	}
	return distinct >= 9
}

// ReactionKind distinguishes the choices available when another seat
// discards.
type ReactionKind int

const (
	Pass ReactionKind = iota
	Ron
	Pon
	Daiminkan
	Chi
)

// ChiOption names a sequence shape by its lowest kind, e.g. Base=Man2
// covers the 2-3-4m chi on a discarded 2m, 3m, or 4m.
type ChiOption struct {
	Base tile.Kind
}

// Reactions is the full set of legal responses one seat has to another
// seat's discard.
type Reactions struct {
	CanRon      bool
	CanPon      bool
	CanKan      bool
	ChiOptions  []ChiOption
}

// Any reports whether the seat has any reaction beyond passing.
func (r Reactions) Any() bool {
	return r.CanRon || r.CanPon || r.CanKan || len(r.ChiOptions) > 0
}

// ReactionsTo enumerates what seat can do about discarded. isShimocha
// gates chi, which only the next seat in turn order may call. fs is the
// seat's furiten tracker, checked against its own wait set before
// allowing ron.
func ReactionsTo(h *hand.Hand, discarded tile.Kind, isShimocha bool, fs *furiten.State) Reactions {
	var r Reactions

	closed := h.ToHistogram34()
	count := closed[discarded]

	test := closed
	test[discarded]++
	if agari.IsAgari(test) {
		waits := agari.WaitingTiles(closed)
		if !fs.IsRonBlocked(waits) {
			r.CanRon = true
		}
	}

	if count >= 2 {
		r.CanPon = true
	}
	if count >= 3 {
		r.CanKan = true
	}

	if isShimocha && discarded.IsNumbered() {
		r.ChiOptions = chiOptions(closed, discarded)
	}

	return r
}

// chiOptions finds every sequence shape discarded can complete from the
// two tiles already in hand: low (XYZ where discarded=X), mid, high.
func chiOptions(closed tile.Histogram34, discarded tile.Kind) []ChiOption {
	var out []ChiOption
	offset := int(discarded) % 9
	try := func(base tile.Kind) {
		if int(base)%9 > 6 || int(base)%9 < 0 {
			return
		}
		if base.Suit() != discarded.Suit() {
			return
		}
		need := [3]tile.Kind{base, base + 1, base + 2}
		for _, n := range need {
			if n == discarded {
				continue
			}
			if closed[n] == 0 {
				return
			}
		}
		out = append(out, ChiOption{Base: base})
	}
	if offset >= 2 {
		try(discarded - 2)
	}
	if offset >= 1 && offset <= 7 {
		try(discarded - 1)
	}
	if offset <= 6 {
		try(discarded)
	}
	return out
}
