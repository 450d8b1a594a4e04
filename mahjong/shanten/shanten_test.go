package shanten

import (
	"testing"

	"riichi/mahjong/tile"
)

func histFromKinds(kinds ...tile.Kind) tile.Histogram34 {
	var h tile.Histogram34
	for _, k := range kinds {
		h[k]++
	}
	return h
}

func TestCompleteStandardHandIsShantenMinusOne(t *testing.T) {
	h := histFromKinds(
		tile.Man1, tile.Man2, tile.Man3,
		tile.Pin4, tile.Pin5, tile.Pin6,
		tile.So7, tile.So8, tile.So9,
		tile.East, tile.East, tile.East,
		tile.White, tile.White,
	)
	if got := Min(h, 0); got != Complete {
		t.Fatalf("Min() = %d, want %d", got, Complete)
	}
}

func TestTenpaiStandardHand(t *testing.T) {
	h := histFromKinds(
		tile.Man1, tile.Man2, tile.Man3,
		tile.Pin4, tile.Pin5, tile.Pin6,
		tile.So7, tile.So8, tile.So9,
		tile.East, tile.East,
		tile.White, tile.White,
	)
	if got := Min(h, 0); got != 0 {
		t.Fatalf("Min() = %d, want 0 (tenpai)", got)
	}
}

func TestSevenPairsComplete(t *testing.T) {
	h := histFromKinds(
		tile.Man1, tile.Man1, tile.Man9, tile.Man9,
		tile.Pin1, tile.Pin1, tile.Pin9, tile.Pin9,
		tile.So1, tile.So1, tile.So9, tile.So9,
		tile.East, tile.East,
	)
	if got := SevenPairs(h); got != Complete {
		t.Fatalf("SevenPairs() = %d, want %d", got, Complete)
	}
	if got := Min(h, 0); got != Complete {
		t.Fatalf("Min() = %d, want %d", got, Complete)
	}
}

func TestThirteenOrphansComplete(t *testing.T) {
	h := histFromKinds(
		tile.Man1, tile.Man9, tile.Pin1, tile.Pin9, tile.So1, tile.So9,
		tile.East, tile.South, tile.West, tile.North,
		tile.White, tile.Green, tile.Red, tile.Red,
	)
	if got := ThirteenOrphans(h); got != Complete {
		t.Fatalf("ThirteenOrphans() = %d, want %d", got, Complete)
	}
}

func TestThirteenOrphansInvalidOnWrongTotal(t *testing.T) {
	var h tile.Histogram34
	h[tile.Man1] = 10 // 10 tiles: not a valid 13/14 total
	if got := ThirteenOrphans(h); got != 99 {
		t.Fatalf("ThirteenOrphans() on a 10-tile hand = %d, want invalid(99)", got)
	}
}
