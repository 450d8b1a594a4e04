package meld

import (
	"testing"

	"riichi/mahjong/tile"
)

func TestIsOpenIsFalseOnlyForClosedKan(t *testing.T) {
	m := Meld{Variant: ClosedKan, Tiles: []tile.Tile{{Kind: tile.Man5}, {Kind: tile.Man5}, {Kind: tile.Man5}, {Kind: tile.Man5}}}
	if m.IsOpen() {
		t.Fatalf("expected a closed kan to not count as open")
	}
	m.Variant = OpenKan
	if !m.IsOpen() {
		t.Fatalf("expected an open kan to count as open")
	}
}

func TestBaseKindPicksLowestTile(t *testing.T) {
	m := Meld{Variant: Sequence, Tiles: []tile.Tile{{Kind: tile.Man3}, {Kind: tile.Man1}, {Kind: tile.Man2}}}
	if m.BaseKind() != tile.Man1 {
		t.Fatalf("expected BaseKind to report the lowest tile, got %v", m.BaseKind())
	}
}

func TestTouchesYaochuOnSequenceChecksBothEnds(t *testing.T) {
	m := Meld{Variant: Sequence, Tiles: []tile.Tile{{Kind: tile.Man1}, {Kind: tile.Man2}, {Kind: tile.Man3}}}
	if !m.TouchesYaochu() {
		t.Fatalf("expected 1-2-3m to touch a terminal")
	}
	m = Meld{Variant: Sequence, Tiles: []tile.Tile{{Kind: tile.Man4}, {Kind: tile.Man5}, {Kind: tile.Man6}}}
	if m.TouchesYaochu() {
		t.Fatalf("expected 4-5-6m to not touch a terminal")
	}
}

func TestIsKanCoversAllThreeKanVariants(t *testing.T) {
	for _, v := range []Variant{ClosedKan, OpenKan, AddedKan} {
		if !(Meld{Variant: v}).IsKan() {
			t.Fatalf("expected variant %v to report as a kan", v)
		}
	}
	if (Meld{Variant: Triplet}).IsKan() {
		t.Fatalf("expected a triplet to not report as a kan")
	}
}

func TestContainsRedFiveDetectsARedTile(t *testing.T) {
	m := Meld{Variant: Triplet, Tiles: []tile.Tile{{Kind: tile.Man5}, {Kind: tile.Man5, Red: true}, {Kind: tile.Man5}}}
	if !m.ContainsRedFive() {
		t.Fatalf("expected a red five among the tiles to be detected")
	}
}
