package fu

import (
	"testing"

	"riichi/mahjong/agari"
	"riichi/mahjong/tile"
)

func TestChiitoiIsFlat25(t *testing.T) {
	got := Calculate(Input{IsChiitoi: true})
	if got != 25 {
		t.Fatalf("Calculate() = %d, want 25", got)
	}
}

func TestPinfuTsumoFlat20RonFlat30(t *testing.T) {
	if got := Calculate(Input{IsPinfu: true, IsTsumo: true}); got != 20 {
		t.Fatalf("pinfu tsumo = %d, want 20", got)
	}
	if got := Calculate(Input{IsPinfu: true, IsTsumo: false}); got != 30 {
		t.Fatalf("pinfu ron = %d, want 30", got)
	}
}

func TestClosedTripletOfTerminalOnTsumoIsClosedRate(t *testing.T) {
	in := Input{
		Head:     tile.East,
		Groups:   []agari.Group{{Kind: agari.Triplet, Base: tile.Man1}},
		WinKind:  tile.Man1,
		IsTsumo:  true,
		IsMenzen: true,
		SeatWind: tile.South,
	}
	// 20 base + 8 (closed yaochu triplet) + 2 (tsumo) = 30
	if got := Calculate(in); got != 30 {
		t.Fatalf("Calculate() = %d, want 30", got)
	}
}

func TestRonOnTripletDowngradesToOpenRate(t *testing.T) {
	in := Input{
		Head:     tile.East,
		Groups:   []agari.Group{{Kind: agari.Triplet, Base: tile.Man1}},
		WinKind:  tile.Man1,
		IsTsumo:  false,
		IsMenzen: true,
		SeatWind: tile.South,
	}
	// 20 base + 4 (open yaochu triplet via ron) + 10 (closed ron) = 34 -> 40
	if got := Calculate(in); got != 40 {
		t.Fatalf("Calculate() = %d, want 40", got)
	}
}

func TestKanchanWaitAddsTwo(t *testing.T) {
	in := Input{
		Head:     tile.East,
		Groups:   []agari.Group{{Kind: agari.Sequence, Base: tile.Man1}},
		WinKind:  tile.Man2,
		IsTsumo:  false,
		IsMenzen: true,
		SeatWind: tile.South,
	}
	// 20 base + 0 (sequence) + 2 (kanchan) + 10 (closed ron) = 32 -> 40
	if got := Calculate(in); got != 40 {
		t.Fatalf("Calculate() = %d, want 40", got)
	}
}

func TestOpenHandLandingOnTwentyBumpsToThirty(t *testing.T) {
	in := Input{
		Head:     tile.East,
		Groups:   nil,
		Melds:    nil,
		WinKind:  tile.Man4,
		IsTsumo:  false,
		IsMenzen: false,
		SeatWind: tile.South,
	}
	if got := Calculate(in); got != 30 {
		t.Fatalf("Calculate() = %d, want 30 (bumped from 20)", got)
	}
}
