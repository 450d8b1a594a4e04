// Package hand models per-seat hand state: closed tiles, melds, discard
// pool, and the riichi/ippatsu flags, generalizing the teacher's
// PlayerImage (runtime/game/engines/mahjong/player_image.go) from its
// flat Tiles/DiscardPile/Melds fields into the richer shape spec.md §3
// requires (per-discard tsumogiri/claimed flags, riichi discard index).
package hand

import (
	"riichi/mahjong/meld"
	"riichi/mahjong/tile"
)

// Discard records one tile a seat has discarded, with the two flags
// furiten and call resolution need.
type Discard struct {
	Tile       tile.Tile
	Tsumogiri  bool // self-drawn and immediately discarded, not hand-selected
	Claimed    bool // taken by another seat's call
}

// Hand is the full per-seat state the round controller mutates.
type Hand struct {
	Closed []tile.Tile
	Melds  []meld.Meld

	Discards []Discard

	// Drawn is the tile currently held beyond the seat's normal count,
	// distinguished from the rest of Closed. Nil when no tile is drawn.
	Drawn *tile.Tile

	IsRiichi         bool
	IsDoubleRiichi   bool
	IsIppatsu        bool
	RiichiDiscardIdx int // index into Discards of the declaring discard; -1 if not riichi
}

func New() *Hand {
	return &Hand{
		Closed:           make([]tile.Tile, 0, 14),
		Discards:         make([]Discard, 0, 24),
		RiichiDiscardIdx: -1,
	}
}

// Draw appends a tile to Closed and marks it as the current Drawn tile.
func (h *Hand) Draw(t tile.Tile) {
	h.Closed = append(h.Closed, t)
	drawn := t
	h.Drawn = &drawn
}

// IsMenzen reports whether the hand has no open melds (closed kans do not
// break menzen).
func (h *Hand) IsMenzen() bool {
	for _, m := range h.Melds {
		if m.IsOpen() {
			return false
		}
	}
	return true
}

// RemoveOne removes the first matching tile (by kind and copy) from Closed.
// Used both for discards and for consuming tiles into a new meld.
func (h *Hand) RemoveOne(t tile.Tile) bool {
	for i := range h.Closed {
		if h.Closed[i].Kind == t.Kind && h.Closed[i].Copy == t.Copy {
			h.Closed = append(h.Closed[:i], h.Closed[i+1:]...)
			if h.Drawn != nil && h.Drawn.Kind == t.Kind && h.Drawn.Copy == t.Copy {
				h.Drawn = nil
			}
			return true
		}
	}
	return false
}

// Discard moves t from Closed into the discard pool. tsumogiri is true iff
// t is the currently drawn tile.
func (h *Hand) Discard(t tile.Tile) bool {
	tsumogiri := h.Drawn != nil && h.Drawn.Kind == t.Kind && h.Drawn.Copy == t.Copy
	if !h.RemoveOne(t) {
		return false
	}
	h.Discards = append(h.Discards, Discard{Tile: t, Tsumogiri: tsumogiri})
	return true
}

// ToHistogram34 returns the closed-tile histogram (melds excluded), the
// basis for shanten/agari/fu inputs.
func (h *Hand) ToHistogram34() tile.Histogram34 {
	return tile.FromTiles(h.Closed)
}

// AllTilesHistogram34 returns the histogram over closed tiles plus every
// meld's tiles — the basis for dora counting and yaku predicates that look
// at the whole hand (tanyao, honitsu, chinitsu, ...).
func (h *Hand) AllTilesHistogram34() tile.Histogram34 {
	all := append([]tile.Tile(nil), h.Closed...)
	for _, m := range h.Melds {
		all = append(all, m.Tiles...)
	}
	return tile.FromTiles(all)
}

// DiscardedKinds returns the set of kinds in the discard pool (the same
// set furiten.State.Discards tracks for the permanent check).
func (h *Hand) DiscardedKinds() map[tile.Kind]struct{} {
	out := make(map[tile.Kind]struct{}, len(h.Discards))
	for _, d := range h.Discards {
		out[d.Tile.Kind] = struct{}{}
	}
	return out
}

// MeldedKindCount returns how many groups are already locked in via melds
// (3 tiles per sequence/triplet, 4 per any kan counted as one group for
// the purposes of the "groups still needed" arithmetic in shanten/agari).
func (h *Hand) MeldedKindCount() int { return len(h.Melds) }
