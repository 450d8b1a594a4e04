// Package furiten tracks the three furiten flavors that disable a ron
// win: permanent (any of your own discards satisfy your current wait),
// temporary (you passed up a winning tile this go-around), and
// riichi-locked (you passed one up after declaring riichi, which can
// never clear). Grounded on the teacher's PlayerImage.HasDiscardedTile/
// TenpaiWaitState (runtime/game/engines/mahjong/player_image.go), filled
// in against original_source/mahjong/rules/furiten.py, which the teacher
// never ported.
package furiten

import "riichi/mahjong/tile"

// State is the furiten bookkeeping the round controller keeps per seat.
type State struct {
	// Discards is the seat's own discard pool (by kind), checked against
	// the current wait set for permanent furiten.
	Discards map[tile.Kind]bool
	// MissedThisGo is cleared at the start of the seat's own next draw;
	// it's set whenever a winning tile passes (discard or another seat's
	// call) without being claimed.
	MissedThisGo bool
	// MissedSinceRiichi never clears once set after riichi is declared.
	MissedSinceRiichi bool
}

// NewState returns an empty furiten tracker.
func NewState() *State {
	return &State{Discards: map[tile.Kind]bool{}}
}

// RecordDiscard adds a self-discarded kind to the permanent-furiten pool.
func (s *State) RecordDiscard(k tile.Kind) {
	s.Discards[k] = true
}

// RecordPassedWait marks that a winning tile went by without being
// claimed. isRiichi locks the riichi-furiten flag permanently once set.
func (s *State) RecordPassedWait(isRiichi bool) {
	s.MissedThisGo = true
	if isRiichi {
		s.MissedSinceRiichi = true
	}
}

// ClearTurnFlag resets the temporary (this-go-around) furiten flag; call
// this at the start of the seat's own draw.
func (s *State) ClearTurnFlag() {
	s.MissedThisGo = false
}

// IsDiscardFuriten reports permanent furiten: any of the seat's own
// discards is in its current wait set.
func IsDiscardFuriten(discards map[tile.Kind]bool, waits []tile.Kind) bool {
	for _, w := range waits {
		if discards[w] {
			return true
		}
	}
	return false
}

// IsTemporaryFuriten reports whether a wait was missed this go-around.
func IsTemporaryFuriten(missedThisGo bool) bool {
	return missedThisGo
}

// IsRiichiFuriten reports whether a wait was missed at any point since
// riichi was declared — unlike temporary furiten, this never clears.
func IsRiichiFuriten(missedSinceRiichi bool) bool {
	return missedSinceRiichi
}

// IsRonBlocked is the full disjunction a ron attempt must clear.
func (s *State) IsRonBlocked(waits []tile.Kind) bool {
	return IsDiscardFuriten(s.Discards, waits) ||
		IsTemporaryFuriten(s.MissedThisGo) ||
		IsRiichiFuriten(s.MissedSinceRiichi)
}
