package hand

import (
	"testing"

	"riichi/mahjong/tile"
)

func TestDrawAndDiscardTsumogiri(t *testing.T) {
	h := New()
	for i := 0; i < 13; i++ {
		h.Closed = append(h.Closed, tile.Tile{Kind: tile.Man1, Copy: i % 4})
	}
	drawn := tile.Tile{Kind: tile.Man2, Copy: 0}
	h.Draw(drawn)

	if h.Drawn == nil || h.Drawn.Kind != tile.Man2 {
		t.Fatalf("expected drawn tile to be tracked")
	}

	if !h.Discard(drawn) {
		t.Fatalf("discard of drawn tile should succeed")
	}
	if len(h.Discards) != 1 || !h.Discards[0].Tsumogiri {
		t.Fatalf("discard of the drawn tile must be tsumogiri")
	}
	if h.Drawn != nil {
		t.Fatalf("drawn pointer should clear after discarding the drawn tile")
	}
}

func TestDiscardHeldTileIsNotTsumogiri(t *testing.T) {
	h := New()
	held := tile.Tile{Kind: tile.Man1, Copy: 0}
	h.Closed = append(h.Closed, held)
	h.Draw(tile.Tile{Kind: tile.Man2, Copy: 0})

	if !h.Discard(held) {
		t.Fatalf("discard of held tile should succeed")
	}
	if h.Discards[0].Tsumogiri {
		t.Fatalf("discarding a held (non-drawn) tile must not be tsumogiri")
	}
	if h.Drawn == nil {
		t.Fatalf("drawn tile should remain tracked after discarding a different tile")
	}
}
