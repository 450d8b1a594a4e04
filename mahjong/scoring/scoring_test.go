package scoring

import (
	"testing"

	"riichi/mahjong/tile"
)

func hist(kinds ...tile.Kind) tile.Histogram34 {
	var h tile.Histogram34
	for _, k := range kinds {
		h[k]++
	}
	return h
}

func TestDoraAloneNeverWins(t *testing.T) {
	in := Input{
		ClosedTiles: hist(
			tile.Man1, tile.Man2, tile.Man3,
			tile.Pin2, tile.Pin4, tile.Pin6,
			tile.So1, tile.So2, tile.So3,
			tile.East, tile.East, tile.East,
			tile.White, tile.White,
		),
		WinKind:   tile.Pin4,
		SeatWind:  tile.South,
		RoundWind: tile.East,
		DoraCount: 5,
	}
	if _, err := Calculate(in); err != ErrNoYaku {
		t.Fatalf("expected ErrNoYaku for a hand with no real yaku, got err=%v", err)
	}
}

func TestRiichiTsumoDealerPaymentSplitsThreeWays(t *testing.T) {
	in := Input{
		ClosedTiles: hist(
			tile.Man2, tile.Man3, tile.Man4,
			tile.Pin2, tile.Pin3, tile.Pin4,
			tile.So2, tile.So3, tile.So4,
			tile.So5, tile.So6, tile.So7,
			tile.Pin8, tile.Pin8,
		),
		WinKind:   tile.So7,
		IsTsumo:   true,
		IsDealer:  true,
		IsRiichi:  true,
		SeatWind:  tile.East,
		RoundWind: tile.East,
	}
	res, err := Calculate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Payment.EachNonDealerPays == 0 {
		t.Fatalf("expected a nonzero per-seat tsumo payment")
	}
	if res.Payment.Total != res.Payment.EachNonDealerPays*3 {
		t.Fatalf("four-player dealer tsumo must split across exactly three non-dealers, got total=%d each=%d",
			res.Payment.Total, res.Payment.EachNonDealerPays)
	}
}

func TestSanmaTsumoNonDealerSplitsTwoWays(t *testing.T) {
	in := Input{
		ClosedTiles: hist(
			tile.Man2, tile.Man3, tile.Man4,
			tile.Pin2, tile.Pin3, tile.Pin4,
			tile.So2, tile.So3, tile.So4,
			tile.So5, tile.So6, tile.So7,
			tile.Pin8, tile.Pin8,
		),
		WinKind:   tile.So7,
		IsTsumo:   true,
		IsDealer:  false,
		IsRiichi:  true,
		IsSanma:   true,
		SeatWind:  tile.South,
		RoundWind: tile.East,
	}
	res, err := Calculate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := res.Payment.DealerPays + res.Payment.EachNonDealerPays*1
	if res.Payment.Total != want {
		t.Fatalf("sanma non-dealer tsumo must total dealer + exactly one other non-dealer, got %d want %d",
			res.Payment.Total, want)
	}
}

func TestSanmaRonHonbaUsesTwoHundredPerHonba(t *testing.T) {
	in := Input{
		ClosedTiles: hist(
			tile.Man1, tile.Man2, tile.Man3,
			tile.Pin2, tile.Pin3, tile.Pin4,
			tile.So2, tile.So3, tile.So4,
			tile.So5, tile.So6, tile.So7,
			tile.Pin8, tile.Pin8,
		),
		WinKind:   tile.Man3,
		IsTsumo:   false,
		IsDealer:  false,
		IsRiichi:  true,
		IsSanma:   true,
		SeatWind:  tile.South,
		RoundWind: tile.East,
		Honba:     2,
	}
	res, err := Calculate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	withoutHonba := in
	withoutHonba.Honba = 0
	base, err := Calculate(withoutHonba)
	if err != nil {
		t.Fatalf("unexpected error computing the honba-free baseline: %v", err)
	}

	want := base.Payment.RonPays + 2*200
	if res.Payment.RonPays != want {
		t.Fatalf("sanma non-dealer ron with 2 honba must add 400 (200/honba), got %d want %d",
			res.Payment.RonPays, want)
	}
}

func TestYakumanCapsBasePointsRegardlessOfFu(t *testing.T) {
	in := Input{
		ClosedTiles: hist(
			tile.Man1, tile.Man9, tile.Pin1, tile.Pin9, tile.So1, tile.So9,
			tile.East, tile.South, tile.West, tile.North,
			tile.White, tile.Green, tile.Red, tile.Red,
		),
		WinKind:   tile.Red,
		IsTsumo:   true,
		SeatWind:  tile.South,
		RoundWind: tile.East,
	}
	res, err := Calculate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsYakuman || res.BasePoints != 8000 {
		t.Fatalf("expected a single kokushi yakuman at base 8000, got %+v", res)
	}
}
