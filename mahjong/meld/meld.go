// Package meld implements the frozen call record the teacher's material.go
// models loosely as {Type string, Tiles []Tile, From int}, generalized here
// to the five call variants a complete hand needs to distinguish.
package meld

import "riichi/mahjong/tile"

// Variant enumerates the five call shapes. Sequence/Triplet/OpenKan are
// open by definition; ClosedKan is the only melded group that still counts
// as part of a closed hand; AddedKan upgrades an existing open Triplet.
type Variant int

const (
	Sequence Variant = iota
	Triplet
	ClosedKan
	OpenKan
	AddedKan
)

func (v Variant) String() string {
	switch v {
	case Sequence:
		return "Sequence"
	case Triplet:
		return "Triplet"
	case ClosedKan:
		return "ClosedKan"
	case OpenKan:
		return "OpenKan"
	case AddedKan:
		return "AddedKan"
	default:
		return "Unknown"
	}
}

// Meld is a frozen call record.
type Meld struct {
	Variant Variant
	Tiles   []tile.Tile
	// Called is the tile taken from another seat. Zero value (HasCalled
	// false) for ClosedKan, which takes nothing from anyone.
	Called   tile.Tile
	HasCalled bool
	// FromSeat is the seat index of the discarder the Called tile came
	// from. Unused for ClosedKan.
	FromSeat int
}

// IsOpen reports whether the meld counts against a closed hand. Every
// variant does except ClosedKan.
func (m Meld) IsOpen() bool { return m.Variant != ClosedKan }

// BaseKind returns the lowest kind of the group: for a sequence this is the
// first tile of the run, for triplets/kans it's the triplet's kind.
func (m Meld) BaseKind() tile.Kind {
	base := m.Tiles[0].Kind
	for _, t := range m.Tiles {
		if t.Kind < base {
			base = t.Kind
		}
	}
	return base
}

// IsYaochu reports whether every tile in the meld is a terminal or honor
// (relevant for honroutou/chanta/fu calculations). For a sequence this can
// only be true of the impossible case of a run entirely of terminals, so it
// always reports false for sequences; callers needing "touches a yaochu"
// semantics should use TouchesYaochu instead.
func (m Meld) IsYaochu() bool {
	if m.Variant == Sequence {
		return false
	}
	return m.BaseKind().IsYaochu()
}

// TouchesYaochu reports whether any tile in the group is a terminal or
// honor — used by chanta/junchan, which only require a touch, not a pure
// group.
func (m Meld) TouchesYaochu() bool {
	if m.Variant != Sequence {
		return m.BaseKind().IsYaochu()
	}
	base := m.BaseKind()
	return base.IsYaochu() || (base + 2).IsYaochu()
}

// IsKan reports whether the meld is any of the three kan variants.
func (m Meld) IsKan() bool {
	return m.Variant == ClosedKan || m.Variant == OpenKan || m.Variant == AddedKan
}

// TileCount returns how many physical tiles this meld consumes from the
// hand's perspective (3 for sequence/triplet, 4 for any kan).
func (m Meld) TileCount() int {
	if m.IsKan() {
		return 4
	}
	return 3
}

// ContainsRedFive reports whether the meld carries a red-five copy.
func (m Meld) ContainsRedFive() bool {
	for _, t := range m.Tiles {
		if t.Red {
			return true
		}
	}
	return false
}
