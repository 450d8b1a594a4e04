package round

import (
	"math/rand"
	"testing"

	"riichi/mahjong/meld"
	"riichi/mahjong/tile"
	"riichi/mahjong/wall"
)

func newTestRound(t *testing.T) *Round {
	t.Helper()
	w := wall.New(wall.Config{NumPlayers: 4, RedFives: 0}, rand.New(rand.NewSource(1)))
	return New(w, 0, 0, 0, tile.East, 4, 25000)
}

func TestDealGivesEverySeatThirteenTiles(t *testing.T) {
	r := newTestRound(t)
	if err := r.Deal(); err != nil {
		t.Fatalf("deal failed: %v", err)
	}
	for i, s := range r.Seats {
		if len(s.Hand.Closed) != 13 {
			t.Fatalf("seat %d: expected 13 tiles, got %d", i, len(s.Hand.Closed))
		}
	}
}

func TestDiscardAdvancesCurrentSeat(t *testing.T) {
	r := newTestRound(t)
	r.Deal()
	seat := r.Seats[r.Current]
	seat.Hand.Draw(tile.Tile{Kind: tile.Man1})

	if err := r.Discard(tile.Tile{Kind: tile.Man1}); err != nil {
		t.Fatalf("discard failed: %v", err)
	}
	if r.Current != 1 {
		t.Fatalf("expected turn to pass to seat 1, got %d", r.Current)
	}
	if len(r.Seats[0].Hand.Discards) != 1 {
		t.Fatalf("expected one discard recorded for seat 0")
	}
}

func TestDiscardRejectsTileNotInHand(t *testing.T) {
	r := newTestRound(t)
	r.Deal()
	if err := r.Discard(tile.Tile{Kind: tile.Red, Copy: 3}); err == nil {
		t.Fatalf("expected an error discarding a tile never drawn")
	}
}

func TestDeclareRiichiChargesStickAndFlagsIppatsu(t *testing.T) {
	r := newTestRound(t)
	r.Deal()
	seat := r.Seats[r.Current]
	seat.Hand.Closed = seat.Hand.Closed[:0]
	for _, k := range []tile.Kind{
		tile.Man1, tile.Man2, tile.Man3,
		tile.Pin4, tile.Pin5, tile.Pin6,
		tile.So7, tile.So8, tile.So9,
		tile.East, tile.East,
		tile.White, tile.White,
	} {
		seat.Hand.Closed = append(seat.Hand.Closed, tile.Tile{Kind: k})
	}
	seat.Hand.Draw(tile.Tile{Kind: tile.Green})

	if err := r.DeclareRiichi(false); err != nil {
		t.Fatalf("expected riichi to be legal on a tenpai hand: %v", err)
	}
	if seat.Score != 24000 {
		t.Fatalf("expected riichi stick deducted, score = %d", seat.Score)
	}
	if r.RiichiSticks != 1 {
		t.Fatalf("expected one riichi stick posted")
	}
	if !seat.Hand.IsIppatsu {
		t.Fatalf("expected ippatsu eligibility right after declaring riichi")
	}
}

func TestDeclareAnkanSetsRinshanFlagAndBreaksIppatsu(t *testing.T) {
	r := newTestRound(t)
	r.Deal()
	seat := r.Seats[r.Current]
	seat.Hand.IsIppatsu = true
	seat.Hand.Closed = nil
	for i := 0; i < 4; i++ {
		seat.Hand.Closed = append(seat.Hand.Closed, tile.Tile{Kind: tile.Man5, Copy: i})
	}

	if err := r.DeclareAnkan(tile.Man5); err != nil {
		t.Fatalf("expected ankan to succeed on four copies in hand: %v", err)
	}
	if !r.kanThisTurn {
		t.Fatalf("expected the next draw to be flagged as a rinshan draw")
	}
	if seat.Hand.IsIppatsu {
		t.Fatalf("expected ankan to break ippatsu")
	}
	if len(seat.Hand.Melds) != 1 || seat.Hand.Melds[0].Variant != meld.ClosedKan {
		t.Fatalf("expected one closed kan meld, got %+v", seat.Hand.Melds)
	}
}

func TestDiscardUnderRiichiRejectsAnyTileButDrawn(t *testing.T) {
	r := newTestRound(t)
	r.Deal()
	seat := r.Seats[r.Current]
	seat.Hand.IsRiichi = true
	seat.Hand.Draw(tile.Tile{Kind: tile.Man1})

	held := seat.Hand.Closed[0]
	if held.Kind == tile.Man1 {
		held = seat.Hand.Closed[1]
	}
	if err := r.Discard(held); err == nil {
		t.Fatalf("expected riichi to lock discards to the drawn tile")
	}
	if err := r.Discard(tile.Tile{Kind: tile.Man1}); err != nil {
		t.Fatalf("expected the drawn tile itself to remain a legal discard: %v", err)
	}
}

func TestDiscardRejectsOnceRoundFinished(t *testing.T) {
	r := newTestRound(t)
	r.Deal()
	r.DeclareAbortiveDraw("four_kan")

	if err := r.Discard(tile.Tile{Kind: tile.Man1}); err == nil {
		t.Fatalf("expected discard to be rejected once the round is finished")
	}
}

func TestFourRiichiAbortFiresAfterTriggeringDiscardIsLogged(t *testing.T) {
	r := newTestRound(t)
	r.Deal()
	// Three seats already riichi'd on prior turns; seat r.Current is about
	// to post the fourth. DeclareRiichi only marks intent — the abort
	// must not fire until the subsequent Discard.
	r.riichiCount = len(r.Seats) - 1
	seat := r.Seats[r.Current]
	seat.Hand.Closed = seat.Hand.Closed[:0]
	for _, k := range []tile.Kind{
		tile.Man2, tile.Man3, tile.Man4,
		tile.Pin2, tile.Pin3, tile.Pin4,
		tile.So2, tile.So3, tile.So4,
		tile.So5, tile.So6, tile.So7,
		tile.Pin8,
	} {
		seat.Hand.Closed = append(seat.Hand.Closed, tile.Tile{Kind: k})
	}
	seat.Hand.Draw(tile.Tile{Kind: tile.Man1})

	if err := r.DeclareRiichi(false); err != nil {
		t.Fatalf("expected the fourth riichi declaration itself to be legal: %v", err)
	}
	if r.Finished {
		t.Fatalf("declaring riichi must only mark intent, not end the round")
	}

	if err := r.Discard(tile.Tile{Kind: tile.Man1}); err != nil {
		t.Fatalf("expected the triggering discard to succeed: %v", err)
	}
	if !r.Finished {
		t.Fatalf("expected four-riichi to abort the round once the fourth discard is recorded")
	}
	if len(seat.Hand.Discards) != 1 {
		t.Fatalf("expected the triggering discard to be recorded before the abort")
	}
}

// TestDeclareAnkanUnderRiichiRejectsWaitChangingKan exercises the classic
// three-sided wait shape 4-5-6-6-6-7-8 (waiting on 3/6/9): pulling all
// four 6s into a kan collapses the remaining 4-5-7-8 into a shape with
// no wait at all, so the kan must be rejected while riichi is locked in.
func TestDeclareAnkanUnderRiichiRejectsWaitChangingKan(t *testing.T) {
	r := newTestRound(t)
	r.Deal()
	seat := r.Seats[r.Current]
	seat.Hand.IsRiichi = true
	seat.Hand.Closed = nil
	for _, k := range []tile.Kind{
		tile.Man1, tile.Man2, tile.Man3,
		tile.Pin4, tile.Pin5, tile.Pin6,
		tile.So4, tile.So5, tile.So7, tile.So8,
	} {
		seat.Hand.Closed = append(seat.Hand.Closed, tile.Tile{Kind: k})
	}
	for i := 0; i < 3; i++ {
		seat.Hand.Closed = append(seat.Hand.Closed, tile.Tile{Kind: tile.So6, Copy: i})
	}
	seat.Hand.Draw(tile.Tile{Kind: tile.So6, Copy: 3})

	if err := r.DeclareAnkan(tile.So6); err == nil {
		t.Fatalf("expected ankan that destroys the tenpai wait to be rejected under riichi")
	}
}

func TestDeclareTsumoRejectsIncompleteHand(t *testing.T) {
	r := newTestRound(t)
	r.Deal()
	seat := r.Seats[r.Current]
	seat.Hand.Closed = nil
	for _, k := range []tile.Kind{
		tile.Man1, tile.Man2, tile.Man4,
		tile.Pin4, tile.Pin5, tile.Pin6,
		tile.So7, tile.So8, tile.So9,
		tile.East, tile.East, tile.East,
		tile.White, tile.Green,
	} {
		seat.Hand.Closed = append(seat.Hand.Closed, tile.Tile{Kind: k})
	}

	if _, err := r.DeclareTsumo(0, 0, 0); err == nil {
		t.Fatalf("expected tsumo to be rejected on a non-winning hand")
	}
}

func TestDeclareTsumoDealerSplitsPaymentThreeWays(t *testing.T) {
	r := newTestRound(t)
	r.Deal()
	seat := r.Seats[r.Current] // seat 0, the dealer
	seat.Hand.IsRiichi = true
	seat.Hand.Closed = nil
	for _, k := range []tile.Kind{
		tile.Man2, tile.Man3, tile.Man4,
		tile.Pin2, tile.Pin3, tile.Pin4,
		tile.So2, tile.So3, tile.So4,
		tile.So5, tile.So6, tile.So7,
		tile.White,
	} {
		seat.Hand.Closed = append(seat.Hand.Closed, tile.Tile{Kind: k})
	}
	seat.Hand.Draw(tile.Tile{Kind: tile.White})

	res, err := r.DeclareTsumo(0, 0, 0)
	if err != nil {
		t.Fatalf("expected riichi+menzen_tsumo to be a valid win: %v", err)
	}
	if res.Score.Payment.EachNonDealerPays == 0 {
		t.Fatalf("expected a nonzero per-seat tsumo payment")
	}
	for i := 1; i < len(r.Seats); i++ {
		if r.Seats[i].Score != 25000-res.Score.Payment.EachNonDealerPays {
			t.Fatalf("seat %d score not debited correctly: %d", i, r.Seats[i].Score)
		}
	}
}

func TestDeclarePonMovesMeldAndHandsTurnToCaller(t *testing.T) {
	r := newTestRound(t)
	r.Deal()
	discarder := r.Seats[r.Current]
	discarder.Hand.Closed = append(discarder.Hand.Closed, tile.Tile{Kind: tile.Man5})
	if err := r.Discard(tile.Tile{Kind: tile.Man5}); err != nil {
		t.Fatalf("discard failed: %v", err)
	}

	caller := 2
	r.Seats[caller].Hand.Closed = append(r.Seats[caller].Hand.Closed,
		tile.Tile{Kind: tile.Man5, Copy: 1}, tile.Tile{Kind: tile.Man5, Copy: 2})

	if err := r.DeclarePon(caller); err != nil {
		t.Fatalf("expected pon to succeed: %v", err)
	}
	if r.Current != caller {
		t.Fatalf("expected turn to move to the caller, got seat %d", r.Current)
	}
	if len(r.Seats[caller].Hand.Melds) != 1 || r.Seats[caller].Hand.Melds[0].Variant != meld.Triplet {
		t.Fatalf("expected one open triplet meld, got %+v", r.Seats[caller].Hand.Melds)
	}
}

func TestDeclareKyuushuKyuuhaiEndsRoundAbortive(t *testing.T) {
	r := newTestRound(t)
	r.Deal()
	seat := r.Seats[r.Current]
	seat.Hand.Closed = seat.Hand.Closed[:0]
	for _, k := range []tile.Kind{
		tile.Man1, tile.Man9, tile.Pin1, tile.Pin9,
		tile.So1, tile.So9, tile.East, tile.South,
		tile.West, tile.White, tile.Green, tile.Red,
	} {
		seat.Hand.Closed = append(seat.Hand.Closed, tile.Tile{Kind: k})
	}
	seat.Hand.Draw(tile.Tile{Kind: tile.Man1, Copy: 1})

	res, err := r.DeclareKyuushuKyuuhai()
	if err != nil {
		t.Fatalf("expected nine-terminals abort to be legal: %v", err)
	}
	if !res.IsAbortive || res.AbortiveKind != "kyuushu_kyuuhai" {
		t.Fatalf("expected a kyuushu_kyuuhai abortive result, got %+v", res)
	}
	if !r.Finished {
		t.Fatalf("expected the round to be finished after an abortive draw")
	}
}

func TestDeclareKitaSetsAsideNorthTileInSanma(t *testing.T) {
	w := wall.New(wall.Config{NumPlayers: 3, RedFives: 0}, rand.New(rand.NewSource(1)))
	r := New(w, 0, 0, 0, tile.East, 3, 25000)
	r.Deal()
	seat := r.Seats[r.Current]
	seat.Hand.Draw(tile.Tile{Kind: tile.North})

	if err := r.DeclareKita(); err != nil {
		t.Fatalf("expected kita to succeed: %v", err)
	}
	if len(seat.NorthTiles) != 1 {
		t.Fatalf("expected one north tile set aside, got %d", len(seat.NorthTiles))
	}
	if !r.pendingReplacement {
		t.Fatalf("expected the next draw to come from the dead wall")
	}
}

func TestDeclareChiRejectsNonShimochaCaller(t *testing.T) {
	r := newTestRound(t)
	r.Deal()
	discarder := r.Seats[r.Current]
	discarder.Hand.Closed = append(discarder.Hand.Closed, tile.Tile{Kind: tile.Man3})
	if err := r.Discard(tile.Tile{Kind: tile.Man3}); err != nil {
		t.Fatalf("discard failed: %v", err)
	}

	farSeat := 2
	if err := r.DeclareChi(farSeat, tile.Man3); err == nil {
		t.Fatalf("expected chi to be rejected from a non-shimocha seat")
	}
}
