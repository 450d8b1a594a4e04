// Package view derives the per-seat read-only projection a client gets
// to see: its own hand in full, every opponent reduced to public fields
// only. Grounded on the teacher's PlayerImage visibility split
// (runtime/game/engines/mahjong/player_image.go keeps a public
// GetDiscardPile/GetMelds alongside the private tile list), generalized
// into a single pure function instead of per-field getters.
package view

import (
	"riichi/mahjong/hand"
	"riichi/mahjong/meld"
	"riichi/mahjong/round"
	"riichi/mahjong/tile"
)

// OwnHand is the full view a seat has of its own hand.
type OwnHand struct {
	Closed           []tile.Tile
	Melds            []meld.Meld
	Discards         []hand.Discard
	Drawn            *tile.Tile
	IsRiichi         bool
	IsDoubleRiichi   bool
	IsIppatsu        bool
	RiichiDiscardIdx int
}

// OpponentHand is what any other seat can see of a hand that isn't its
// own: everything public, nothing concealed.
type OpponentHand struct {
	Score          int
	Melds          []meld.Meld
	Discards       []hand.Discard
	IsRiichi       bool
	ClosedCount    int
	RiichiDiscard  int
}

// GameView is one seat's complete, self-contained read-only snapshot.
type GameView struct {
	Seat         int
	Own          OwnHand
	Opponents    map[int]OpponentHand
	RoundWind    tile.Kind
	Honba        int
	RiichiSticks int
	CurrentActor int
	DoraIndicators []tile.Kind
}

// For derives seat's view of r. The derivation is total (never errors)
// and side-effect-free: it reads r but mutates nothing.
func For(r *round.Round, seat int, doraIndicators []tile.Kind) GameView {
	self := r.Seats[seat]
	v := GameView{
		Seat: seat,
		Own: OwnHand{
			Closed:           append([]tile.Tile(nil), self.Hand.Closed...),
			Melds:            append([]meld.Meld(nil), self.Hand.Melds...),
			Discards:         append([]hand.Discard(nil), self.Hand.Discards...),
			Drawn:            self.Hand.Drawn,
			IsRiichi:         self.Hand.IsRiichi,
			IsDoubleRiichi:   self.Hand.IsDoubleRiichi,
			IsIppatsu:        self.Hand.IsIppatsu,
			RiichiDiscardIdx: self.Hand.RiichiDiscardIdx,
		},
		Opponents:      make(map[int]OpponentHand, len(r.Seats)-1),
		RoundWind:      r.RoundWind,
		Honba:          r.Honba,
		RiichiSticks:   r.RiichiSticks,
		CurrentActor:   r.Current,
		DoraIndicators: append([]tile.Kind(nil), doraIndicators...),
	}

	for i, s := range r.Seats {
		if i == seat {
			continue
		}
		v.Opponents[i] = OpponentHand{
			Score:         s.Score,
			Melds:         append([]meld.Meld(nil), s.Hand.Melds...),
			Discards:      append([]hand.Discard(nil), s.Hand.Discards...),
			IsRiichi:      s.Hand.IsRiichi,
			ClosedCount:   len(s.Hand.Closed),
			RiichiDiscard: s.Hand.RiichiDiscardIdx,
		}
	}

	return v
}
